package form

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/intake/internal/http/handler/webui/common/markup"
	"github.com/bornholm/intake/internal/locale"
)

const (
	iconSize = "24"

	defaultIconAlt = "icon"
	timeInputLabel = "Time:"
)

// CalendarIconSrc is the icon prefixed to date pickers
var CalendarIconSrc = "/assets/icons/calendar.svg"

// attributes owned by the field state, never overridden by Field.Attributes
var reservedAttributes = []string{"id", "name", "value", "type", "class"}

// TextInput renders a single line input, optionally prefixed by an icon
func TextInput(state FieldState, field Field) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Open("div", markup.A("class", "field-control field-control--bordered"))

		if field.IconSrc != "" {
			iconAlt := field.IconAlt
			if iconAlt == "" {
				iconAlt = defaultIconAlt
			}
			w.Void("img", iconAttrs(field.IconSrc, iconAlt)...)
		}

		attrs := []markup.Attr{
			markup.A("type", inputType(field, "text")),
			markup.A("class", className("field-input", field)),
		}
		attrs = append(attrs, BindingAttrs(state, field)...)
		attrs = append(attrs,
			markup.A("value", state.Value),
			markup.Opt("placeholder", field.Placeholder),
		)
		attrs = append(attrs, markup.Attrs(field.Attributes, reservedAttributes...)...)

		w.Void("input", attrs...)

		w.Close("div")
	})
}

// Textarea renders a multiline text input
func Textarea(state FieldState, field Field) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		attrs := []markup.Attr{
			markup.A("class", className("field-textarea", field)),
		}
		attrs = append(attrs, BindingAttrs(state, field)...)
		attrs = append(attrs, markup.Opt("placeholder", field.Placeholder))
		attrs = append(attrs, markup.Attrs(field.Attributes, reservedAttributes...)...)

		w.Element("textarea", state.Value, attrs...)
	})
}

// PhoneInput renders a phone number input. National numbers are resolved
// against region and the value is displayed in international format.
func PhoneInput(state FieldState, field Field, region string) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		display, e164 := internationalPhoneNumber(state.Value, region)

		w.Open("div",
			markup.A("class", "field-phone"),
			markup.A("data-default-country", regionOrDefault(region)),
			markup.A("data-international", "true"),
			markup.A("data-with-country-calling-code", "true"),
		)

		if code := countryCallingCode(region); code != "" {
			w.Element("span", code, markup.A("class", "field-phone-calling-code"))
		}

		attrs := []markup.Attr{
			markup.A("type", "tel"),
			markup.A("class", className("field-input input-phone", field)),
		}
		attrs = append(attrs, BindingAttrs(state, field)...)
		attrs = append(attrs,
			markup.A("value", display),
			markup.Opt("data-e164", e164),
			markup.Opt("placeholder", field.Placeholder),
			markup.A("autocomplete", "tel"),
		)
		attrs = append(attrs, markup.Attrs(field.Attributes, append(reservedAttributes, "autocomplete")...)...)

		w.Void("input", attrs...)

		w.Close("div")
	})
}

// DatePicker renders a date (or date and time) input prefixed by a calendar icon
func DatePicker(state FieldState, field Field) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		format := dateFormatOrDefault(field.DateFormat)

		w.Open("div", markup.A("class", "field-control field-control--bordered"))

		w.Void("img", iconAttrs(CalendarIconSrc, "calendar")...)

		kind := "date"
		if field.ShowTime {
			kind = "datetime-local"
		}

		attrs := []markup.Attr{
			markup.A("type", kind),
			markup.A("class", className("field-input date-picker", field)),
		}
		attrs = append(attrs, BindingAttrs(state, field)...)
		attrs = append(attrs,
			markup.A("value", inputDateValue(state.Value, format, field.ShowTime)),
			markup.A("data-date-format", format),
			markup.A("data-show-time", strconv.FormatBool(field.ShowTime)),
			markup.A("data-time-input-label", timeInputLabel),
		)
		attrs = append(attrs, markup.Attrs(field.Attributes, reservedAttributes...)...)

		w.Void("input", attrs...)

		w.Close("div")
	})
}

// Select renders a dropdown whose content is exactly field.Options
func Select(state FieldState, field Field) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		attrs := []markup.Attr{
			markup.A("class", className("field-select", field)),
		}
		attrs = append(attrs, BindingAttrs(state, field)...)
		attrs = append(attrs, markup.Attrs(field.Attributes, reservedAttributes...)...)

		w.Open("select", attrs...)

		hasSelection := slices.ContainsFunc(field.Options, func(o SelectOption) bool {
			return o.Value == state.Value
		})

		switch {
		case field.Placeholder != "":
			w.Element("option", field.Placeholder,
				markup.A("value", ""),
				markup.Flag("disabled", true),
				markup.Flag("selected", !hasSelection),
			)
		case !hasSelection:
			// Without it the browser would display, and submit, the first option
			w.Element("option", "",
				markup.A("value", ""),
				markup.Flag("disabled", true),
				markup.Flag("selected", true),
				markup.Flag("hidden", true),
			)
		}

		for _, o := range field.Options {
			w.Element("option", o.Label,
				markup.A("value", o.Value),
				markup.Flag("selected", o.Value == state.Value),
			)
		}

		w.Close("select")
	})
}

// Checkbox renders a checkbox with its own inline label
func Checkbox(state FieldState, field Field) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Open("div", markup.A("class", "field-checkbox"))

		attrs := []markup.Attr{
			markup.A("type", "checkbox"),
			markup.A("class", className("field-checkbox-input", field)),
		}
		attrs = append(attrs, BindingAttrs(state, field)...)
		attrs = append(attrs,
			markup.A("value", "on"),
			markup.Flag("checked", IsChecked(state.Value)),
		)
		attrs = append(attrs, markup.Attrs(field.Attributes, append(reservedAttributes, "checked")...)...)

		w.Void("input", attrs...)

		if field.Label != "" {
			w.Element("label", field.Label,
				markup.A("for", FieldID(state.Name)),
				markup.A("class", "field-checkbox-label"),
			)
		}

		w.Close("div")
	})
}

// Unsupported renders a visible, non interactive placeholder for fields
// whose kind has no widget
func Unsupported(field Field) templ.Component {
	return markup.Component(func(ctx context.Context, w *markup.Writer) {
		w.Element("div", locale.T(ctx, "form.unsupported", locale.M{"kind": string(field.Kind)}),
			markup.A("class", "field-unsupported"),
			markup.A("role", "note"),
			markup.A("data-kind", string(field.Kind)),
		)
	})
}

// IsChecked reports whether a submitted checkbox value means "checked"
func IsChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// BindingAttrs returns the attributes binding a control to its field state
func BindingAttrs(state FieldState, field Field) []markup.Attr {
	attrs := []markup.Attr{
		markup.A("id", FieldID(state.Name)),
		markup.A("name", state.Name),
		markup.Flag("disabled", field.Disabled),
	}

	if state.HasError() {
		attrs = append(attrs, markup.A("aria-invalid", "true"))
	}

	return append(attrs, CallbackAttrs(state)...)
}

// CallbackAttrs wires the change and blur callbacks of the state with htmx.
// Both events report to the same endpoint, the change callback taking
// precedence.
func CallbackAttrs(state FieldState) []markup.Attr {
	callback := state.OnChange
	triggers := make([]string, 0, 2)

	if state.OnChange != nil {
		triggers = append(triggers, "change")
	}

	if state.OnBlur != nil {
		if callback == nil {
			callback = state.OnBlur
		}
		triggers = append(triggers, "blur")
	}

	if callback == nil || callback.URL == "" {
		return nil
	}

	return []markup.Attr{
		markup.A("hx-post", callback.URL),
		markup.A("hx-trigger", strings.Join(triggers, ", ")),
		markup.Opt("hx-target", callback.Target),
		markup.A("hx-swap", "outerHTML"),
	}
}

func iconAttrs(src string, alt string) []markup.Attr {
	return []markup.Attr{
		markup.A("src", string(templ.URL(src))),
		markup.A("width", iconSize),
		markup.A("height", iconSize),
		markup.A("alt", alt),
		markup.A("class", "field-icon"),
	}
}

func inputType(field Field, defaultType string) string {
	if t, ok := field.Attributes["type"].(string); ok && t != "" {
		return t
	}
	return defaultType
}

func className(base string, field Field) string {
	if extra, ok := field.Attributes["class"].(string); ok && extra != "" {
		return base + " " + extra
	}
	return base
}
