package form

// FormOptions holds configuration for form behavior and rendering
type FormOptions struct {
	// FieldRenderers maps field names or kinds to custom renderers
	FieldRenderers map[string]FieldRenderer
	// DefaultRenderer is used when no specific renderer is found
	DefaultRenderer FieldRenderer
	// MaxMemory is the max memory allocated to the parsing of a multipart form
	MaxMemory int64
	// ValidationURL receives the field values when a control changes
	ValidationURL string
	// ValidateOnBlur also reports values when a control loses focus
	ValidateOnBlur bool
}

type FormOptionFunc func(opts *FormOptions)

func NewFormOptions(funcs ...FormOptionFunc) *FormOptions {
	opts := &FormOptions{
		FieldRenderers:  make(map[string]FieldRenderer),
		DefaultRenderer: &DefaultFieldRenderer{},
		MaxMemory:       32 << 20,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithFieldRenderer overrides the renderer of a field, by name or by kind
func WithFieldRenderer(nameOrKind string, renderer FieldRenderer) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.FieldRenderers[nameOrKind] = renderer
	}
}

func WithDefaultRenderer(renderer FieldRenderer) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.DefaultRenderer = renderer
	}
}

func WithMaxMemory(maxMemory int64) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.MaxMemory = maxMemory
	}
}

func WithValidationURL(url string, onBlur bool) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.ValidationURL = url
		opts.ValidateOnBlur = onBlur
	}
}
