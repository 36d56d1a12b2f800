package markup

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute. Boolean attributes are written without a value.
type Attr struct {
	Key   string
	Value string

	boolean bool
	omit    bool
}

func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Opt is written only when value is not empty
func Opt(key, value string) Attr {
	return Attr{Key: key, Value: value, omit: value == ""}
}

// Flag is a boolean attribute, written only when on is true
func Flag(key string, on bool) Attr {
	return Attr{Key: key, boolean: true, omit: !on}
}

// Attrs converts a free-form attribute map into a sorted attribute list,
// ignoring the given reserved keys.
func Attrs(attributes map[string]any, reserved ...string) []Attr {
	if len(attributes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attributes))
	for k := range attributes {
		if slices.Contains(reserved, k) {
			continue
		}
		keys = append(keys, k)
	}

	slices.Sort(keys)

	attrs := make([]Attr, 0, len(keys))
	for _, k := range keys {
		switch v := attributes[k].(type) {
		case nil:
			continue
		case bool:
			attrs = append(attrs, Flag(k, v))
		case string:
			attrs = append(attrs, A(k, v))
		default:
			attrs = append(attrs, A(k, fmt.Sprint(v)))
		}
	}

	return attrs
}

// Writer writes escaped HTML and keeps the first error it encounters
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Err() error {
	return w.err
}

// Fail records err unless an error was already recorded
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}

	_, w.err = io.WriteString(w.w, s)
}

func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

func (w *Writer) Open(tag string, attrs ...Attr) {
	w.Raw("<" + tag)
	w.attrs(attrs)
	w.Raw(">")
}

// Void writes an element without closing tag (input, img...)
func (w *Writer) Void(tag string, attrs ...Attr) {
	w.Open(tag, attrs...)
}

func (w *Writer) Close(tag string) {
	w.Raw("</" + tag + ">")
}

// Element writes a complete element with escaped text content
func (w *Writer) Element(tag string, text string, attrs ...Attr) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close(tag)
}

func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}

	w.err = c.Render(ctx, w.w)
}

func (w *Writer) attrs(attrs []Attr) {
	for _, a := range attrs {
		if a.omit {
			continue
		}

		if a.boolean {
			w.Raw(" " + a.Key)
			continue
		}

		w.Raw(" " + a.Key + `="`)
		w.Text(a.Value)
		w.Raw(`"`)
	}
}

// Component adapts a writing function into a templ.Component
func Component(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		fn(ctx, w)
		return w.Err()
	})
}
