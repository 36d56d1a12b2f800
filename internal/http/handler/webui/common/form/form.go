package form

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/a-h/templ"
	httpURL "github.com/bornholm/intake/internal/http/url"
	"github.com/pkg/errors"
)

// FieldQueryParam names the field being validated on the validation URL
const FieldQueryParam = "field"

// Form represents a form with fields defined at runtime. It owns the
// submitted values and the validation errors of its fields.
type Form struct {
	Fields  []Field
	Values  map[string]string
	Files   map[string][]*multipart.FileHeader
	Errors  map[string]string
	options *FormOptions
}

// New creates a form from field definitions
func New(fields []Field, funcs ...FormOptionFunc) *Form {
	options := NewFormOptions(funcs...)

	form := &Form{
		Fields:  fields,
		Values:  make(map[string]string),
		Errors:  make(map[string]string),
		Files:   make(map[string][]*multipart.FileHeader),
		options: options,
	}

	return form
}

func (f *Form) Handle(r *http.Request) error {
	if hasFileFields(f.Fields) {
		err := r.ParseMultipartForm(f.options.MaxMemory)
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			if err := r.ParseForm(); err != nil {
				return errors.Wrap(err, "failed to parse form")
			}
		case err != nil:
			return errors.Wrap(err, "failed to parse multipart form")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return errors.Wrap(err, "failed to parse form")
		}
	}

	for _, field := range f.Fields {
		if !field.IsFile() {
			f.Values[field.Name] = r.FormValue(field.Name)
			continue
		}

		if r.MultipartForm == nil {
			continue
		}

		fileHeaders, exists := r.MultipartForm.File[field.Name]
		if !exists || len(fileHeaders) == 0 {
			continue
		}

		f.Files[field.Name] = fileHeaders
		f.Values[field.Name] = fileHeaders[0].Filename
	}

	return nil
}

// IsValid validates all fields in the dynamic form
func (f *Form) IsValid(ctx context.Context) bool {
	f.Errors = make(map[string]string)

	for _, field := range f.Fields {
		for _, rule := range field.Validation {
			if err := rule.Validate(ctx, f, field); err != nil {
				f.Errors[field.Name] = err.Error()
				break
			}
		}
	}

	return len(f.Errors) == 0
}

// ValidateField validates a specific field
func (f *Form) ValidateField(ctx context.Context, fieldName string) bool {
	delete(f.Errors, fieldName)

	field := f.field(fieldName)
	if field == nil {
		return false
	}

	for _, rule := range field.Validation {
		if err := rule.Validate(ctx, f, *field); err != nil {
			f.Errors[fieldName] = err.Error()
			return false
		}
	}

	return true
}

// Field returns the declaration of the named field
func (f *Form) Field(fieldName string) (Field, bool) {
	field := f.field(fieldName)
	if field == nil {
		return Field{}, false
	}

	return *field, true
}

// FieldState returns the binding of the named field
func (f *Form) FieldState(fieldName string) (FieldState, error) {
	field := f.field(fieldName)
	if field == nil {
		return FieldState{}, errors.Errorf("field %s not found", fieldName)
	}

	state := FieldState{
		Name:  field.Name,
		Value: f.Values[field.Name],
		Error: f.Errors[field.Name],
	}

	if f.options.ValidationURL != "" {
		callback, err := f.validationCallback(field.Name)
		if err != nil {
			return FieldState{}, errors.WithStack(err)
		}

		state.OnChange = callback
		if f.options.ValidateOnBlur {
			state.OnBlur = callback
		}
	}

	return state, nil
}

// RenderField renders a specific field, wrapped with its label and error
// slot, using the configured renderer
func (f *Form) RenderField(fieldName string) (templ.Component, error) {
	state, err := f.FieldState(fieldName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	field := f.field(fieldName)

	renderer := f.findRenderer(field.Name, field.Kind)

	return FormItem(*field, state, renderer.RenderField(state, *field)), nil
}

// GetFieldNames returns all field names
func (f *Form) GetFieldNames() []string {
	names := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Name
	}
	return names
}

func (f *Form) field(fieldName string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == fieldName {
			return &f.Fields[i]
		}
	}

	return nil
}

func (f *Form) validationCallback(fieldName string) (*Callback, error) {
	validationURL, err := httpURL.Parse(f.options.ValidationURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid validation url '%s'", f.options.ValidationURL)
	}

	validationURL = httpURL.Mutate(validationURL, httpURL.WithValues(FieldQueryParam, fieldName))

	return &Callback{
		URL:    validationURL.String(),
		Target: "#" + ItemID(fieldName),
	}, nil
}

// findRenderer finds the appropriate renderer for a field
func (f *Form) findRenderer(fieldName string, kind Kind) FieldRenderer {
	if renderer, exists := f.options.FieldRenderers[fieldName]; exists {
		return renderer
	}

	if renderer, exists := f.options.FieldRenderers[string(kind)]; exists {
		return renderer
	}

	return f.options.DefaultRenderer
}
