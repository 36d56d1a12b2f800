package form

import (
	"slices"

	"github.com/a-h/templ"
)

// Kind selects the widget used to render a field
type Kind string

const (
	KindText          Kind = "input"
	KindMultilineText Kind = "textarea"
	KindPhoneNumber   Kind = "phoneInput"
	KindCheckbox      Kind = "checkbox"
	KindDate          Kind = "datePicker"
	KindSelect        Kind = "select"
	KindCustom        Kind = "skeleton"
)

var kinds = []Kind{
	KindText,
	KindMultilineText,
	KindPhoneNumber,
	KindCheckbox,
	KindDate,
	KindSelect,
	KindCustom,
}

// Kinds returns every supported field kind
func Kinds() []Kind {
	return slices.Clone(kinds)
}

func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// SelectOption represents an option in a select dropdown
type SelectOption struct {
	Value string
	Label string
}

// Field represents a form field declaration
type Field struct {
	Kind        Kind
	Name        string
	Label       string
	Placeholder string

	// IconSrc is prefixed to text inputs when set
	IconSrc string
	IconAlt string

	Disabled bool

	// DateFormat uses unicode date patterns (ex: MM/dd/yyyy)
	DateFormat string
	ShowTime   bool

	// Options are the entries of a select field
	Options []SelectOption

	// Render is the renderer of KindCustom fields
	Render func(state FieldState) templ.Component

	// Description is a markdown help text displayed under the control
	Description string

	Required bool

	// Multipart marks fields receiving uploaded files
	Multipart bool

	Validation []ValidationRule
	Attributes map[string]any
}

func (f Field) IsFile() bool {
	return f.Multipart
}

// Callback is where a control reports its value when it changes
type Callback struct {
	URL    string
	Target string
}

// FieldState is the binding of a field to the form owning its value.
// Renderers read it and forward it, they never modify it.
type FieldState struct {
	Name  string
	Value string
	Error string

	OnChange *Callback
	OnBlur   *Callback
}

func (s FieldState) HasError() bool {
	return s.Error != ""
}

// FieldID returns the id attribute of the control bound to the named field
func FieldID(name string) string {
	return "field-" + name
}

// ItemID returns the id attribute of the item wrapping the named field
func ItemID(name string) string {
	return FieldID(name) + "-item"
}

// ErrorID returns the id attribute of the error slot of the named field
func ErrorID(name string) string {
	return FieldID(name) + "-error"
}
