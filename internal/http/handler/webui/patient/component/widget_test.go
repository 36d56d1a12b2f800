package component

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/form"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("could not render component: %v", err)
	}

	return buf.String()
}

func TestRadioGroup(t *testing.T) {
	options := []form.SelectOption{
		{Value: "male", Label: "Male"},
		{Value: "female", Label: "Female"},
	}

	state := form.FieldState{
		Name:     "gender",
		Value:    "female",
		OnChange: &form.Callback{URL: "/validate?field=gender", Target: "#field-gender-item"},
	}

	html := render(t, RadioGroup(options)(state))

	expected := []string{
		`<div id="field-gender" class="field-radio-group" role="radiogroup" hx-post="/validate?field=gender" hx-trigger="change"`,
		`<input type="radio" id="field-gender-male" name="gender" value="male">Male`,
		`<input type="radio" id="field-gender-female" name="gender" value="female" checked>Female`,
	}
	for _, e := range expected {
		if !strings.Contains(html, e) {
			t.Errorf("expected %q in:\n%s", e, html)
		}
	}

	if strings.Count(html, `type="radio"`) != len(options) {
		t.Errorf("expected one radio per option, got:\n%s", html)
	}
}

func TestFileUpload(t *testing.T) {
	html := render(t, FileUpload([]string{"image/png", "application/pdf"})(form.FieldState{
		Name:  "document",
		Error: "too large",
	}))

	expected := []string{
		`type="file"`,
		`accept="image/png,application/pdf"`,
		`id="field-document"`,
		`name="document"`,
		`aria-invalid="true"`,
	}
	for _, e := range expected {
		if !strings.Contains(html, e) {
			t.Errorf("expected %q in:\n%s", e, html)
		}
	}
}
