package form

import (
	"context"
	"io"
	"log/slog"

	"github.com/a-h/templ"
)

// FieldRenderer describes a component that can render a single field
type FieldRenderer interface {
	RenderField(state FieldState, field Field) templ.Component
}

// FieldRendererFunc adapts a function into a FieldRenderer
type FieldRendererFunc func(state FieldState, field Field) templ.Component

func (fn FieldRendererFunc) RenderField(state FieldState, field Field) templ.Component {
	return fn(state, field)
}

// DefaultFieldRenderer renders the built-in widget matching the field kind
type DefaultFieldRenderer struct {
	// PhoneRegion is the region used for national phone numbers
	PhoneRegion string
}

// RenderField renders the control bound to state
func (r *DefaultFieldRenderer) RenderField(state FieldState, field Field) templ.Component {
	switch field.Kind {
	case KindText:
		return TextInput(state, field)
	case KindMultilineText:
		return Textarea(state, field)
	case KindPhoneNumber:
		return PhoneInput(state, field, r.PhoneRegion)
	case KindCheckbox:
		return Checkbox(state, field)
	case KindDate:
		return DatePicker(state, field)
	case KindSelect:
		return Select(state, field)
	case KindCustom:
		if field.Render == nil {
			return templ.NopComponent
		}
		return field.Render(state)
	default:
		return unsupported(field)
	}
}

func unsupported(field Field) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		slog.WarnContext(ctx, "unsupported field kind", slog.String("field", field.Name), slog.String("kind", string(field.Kind)))
		return Unsupported(field).Render(ctx, w)
	})
}

var _ FieldRenderer = &DefaultFieldRenderer{}
