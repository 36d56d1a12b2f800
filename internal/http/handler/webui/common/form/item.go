package form

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

// FormItem wraps a rendered control with its label, its description and
// its error slot. The error slot is always present, empty when the field
// is valid.
func FormItem(field Field, state FieldState, content templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		class := "field-item"
		if state.HasError() {
			class += " field-item--invalid"
		}

		w.Open("div",
			markup.A("id", ItemID(state.Name)),
			markup.A("class", class),
			markup.A("data-kind", string(field.Kind)),
		)

		if ShouldRenderLabel(field) {
			w.Open("label", markup.A("for", FieldID(state.Name)), markup.A("class", "field-label"))
			w.Text(field.Label)
			if field.Required {
				w.Element("span", "*", markup.A("class", "field-required"))
			}
			w.Close("label")
		}

		w.Component(ctx, content)

		if description := strings.TrimSpace(field.Description); description != "" {
			w.Open("div", markup.A("class", "field-description"))
			if html, err := renderMarkdown(description); err != nil {
				w.Text(description)
			} else {
				w.Raw(html)
			}
			w.Close("div")
		}

		w.Element("p", state.Error,
			markup.A("id", ErrorID(state.Name)),
			markup.A("class", "field-error"),
		)

		w.Close("div")
	})
}

// ShouldRenderLabel reports whether the item renders the field label.
// Checkboxes carry their own inline label.
func ShouldRenderLabel(field Field) bool {
	return strings.TrimSpace(field.Label) != "" && field.Kind != KindCheckbox
}

var (
	markdownOnce   sync.Once
	markdown       goldmark.Markdown
	markdownPolicy *bluemonday.Policy
)

func renderMarkdown(source string) (string, error) {
	markdownOnce.Do(func() {
		markdown = goldmark.New()
		markdownPolicy = bluemonday.UGCPolicy()
	})

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(markdownPolicy.Sanitize(buf.String())), nil
}
