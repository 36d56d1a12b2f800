package locale

import (
	"context"
	"strings"
	"testing"

	"github.com/invopop/ctxi18n"
)

func TestTFallsBackToDefaultLanguage(t *testing.T) {
	got := T(context.Background(), "form.errors.required")
	if got != "This field is required" {
		t.Errorf("unexpected translation %q", got)
	}
}

func TestTUsesContextLocale(t *testing.T) {
	ctx, err := ctxi18n.WithLocale(context.Background(), "fr")
	if err != nil {
		t.Fatalf("could not set locale: %v", err)
	}

	got := T(ctx, "form.errors.min_length", M{"min": 3})
	if got != "La longueur minimale est de 3 caractères" {
		t.Errorf("unexpected translation %q", got)
	}
}

func TestUnsupportedMessageHasNoEscapes(t *testing.T) {
	for _, lang := range []string{"en", "fr"} {
		ctx, err := ctxi18n.WithLocale(context.Background(), lang)
		if err != nil {
			t.Fatalf("could not set locale %s: %v", lang, err)
		}

		got := T(ctx, "form.unsupported", M{"kind": "unknownKind"})
		if strings.Contains(got, `\`) {
			t.Errorf("[%s] unexpected backslash in %q", lang, got)
		}

		if !strings.Contains(got, `"unknownKind"`) {
			t.Errorf("[%s] expected quoted kind in %q", lang, got)
		}
	}
}
