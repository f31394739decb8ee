package value

import (
	"cmp"
	"io"

	"github.com/creachadair/jfix/internal/escape"

	"go4.org/mem"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text written once per level of nesting.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string { return cmp.Or(f.Indent, "  ") }

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString renders a pretty-printed representation of v as a string
// with default settings.
func FormatToString(v Value) string {
	var f Formatter
	return string(f.appendValue(nil, v, ""))
}

// Format renders a pretty-printed representation of v to w using the settings
// from f.
//
// Each member of an object and each element of an array is written on its
// own line, indented one level deeper than its container. Empty objects and
// arrays are written as {} and [].
func (f Formatter) Format(w io.Writer, v Value) error {
	_, err := w.Write(f.appendValue(nil, v, ""))
	return err
}

// appendValue appends a representation of v to buf, where indent is the
// indentation of the line on which v begins.
func (f Formatter) appendValue(buf []byte, v Value, indent string) []byte {
	switch t := v.(type) {
	case *Object:
		if len(t.Members) == 0 {
			return append(buf, "{}"...)
		}
		mdent := indent + f.indent()
		buf = append(buf, '{')
		for i, m := range t.Members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(append(buf, '\n'), mdent...)
			buf = escape.AppendQuote(buf, mem.S(m.Key))
			buf = append(buf, ": "...)
			buf = f.appendValue(buf, m.Value, mdent)
		}
		buf = append(append(buf, '\n'), indent...)
		return append(buf, '}')

	case *Array:
		if len(t.Values) == 0 {
			return append(buf, "[]"...)
		}
		adent := indent + f.indent()
		buf = append(buf, '[')
		for i, elt := range t.Values {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = append(append(buf, '\n'), adent...)
			buf = f.appendValue(buf, elt, adent)
		}
		buf = append(append(buf, '\n'), indent...)
		return append(buf, ']')

	default:
		return appendJSON(buf, v)
	}
}
