package component

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/form"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
)

// RadioGroup renders one radio button per option, the state value being
// checked
func RadioGroup(options []form.SelectOption) func(state form.FieldState) templ.Component {
	return func(state form.FieldState) templ.Component {
		return markup.Component(func(ctx context.Context, w *markup.Writer) {
			attrs := []markup.Attr{
				markup.A("id", form.FieldID(state.Name)),
				markup.A("class", "field-radio-group"),
				markup.A("role", "radiogroup"),
			}
			attrs = append(attrs, form.CallbackAttrs(state)...)

			w.Open("div", attrs...)

			for _, o := range options {
				id := form.FieldID(state.Name) + "-" + o.Value

				w.Open("label", markup.A("class", "field-radio"), markup.A("for", id))
				w.Void("input",
					markup.A("type", "radio"),
					markup.A("id", id),
					markup.A("name", state.Name),
					markup.A("value", o.Value),
					markup.Flag("checked", state.Value == o.Value),
				)
				w.Text(o.Label)
				w.Close("label")
			}

			w.Close("div")
		})
	}
}

// FileUpload renders a file input restricted to the given mime types
func FileUpload(mimeTypes []string) func(state form.FieldState) templ.Component {
	return func(state form.FieldState) templ.Component {
		return markup.Component(func(ctx context.Context, w *markup.Writer) {
			attrs := []markup.Attr{
				markup.A("type", "file"),
				markup.A("class", "field-input field-file"),
				markup.Opt("accept", strings.Join(mimeTypes, ",")),
			}
			attrs = append(attrs, form.BindingAttrs(state, form.Field{Name: state.Name})...)

			w.Void("input", attrs...)
		})
	}
}
