package markup

import (
	"bytes"
	"context"
	"testing"
)

func TestWriterEscapesTextAndAttributes(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	w.Element("p", `<b>"hi"</b>`, A("title", `a"b`), Opt("class", ""), Flag("hidden", true), Flag("disabled", false))

	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `<p title="a&#34;b" hidden>&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</p>`
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestAttrsAreSortedAndSkipReserved(t *testing.T) {
	attrs := Attrs(map[string]any{
		"name":         "ignored",
		"autocomplete": "off",
		"required":     true,
		"maxlength":    12,
	}, "name")

	var buf bytes.Buffer
	NewWriter(&buf).Void("input", attrs...)

	expected := `<input autocomplete="off" maxlength="12" required>`
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestComponentRendersThroughTempl(t *testing.T) {
	c := Component(func(ctx context.Context, w *Writer) {
		w.Element("span", "ok")
	})

	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "<span>ok</span>" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
