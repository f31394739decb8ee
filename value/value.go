// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package value defines the JSON values produced by parsing, and renders them
// back to text in compact or indented form.
//
// Objects preserve the order in which their keys first appeared in the source.
package value

import (
	"strconv"

	"github.com/creachadair/jfix/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value. The concrete type is one of *Object,
// *Array, String, Number, Bool, or Null.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

// An Object is a collection of key-value members in source order.
type Object struct {
	Members []*Member
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set sets the value of key in o. If o already has a member with that key,
// its value is replaced in place; otherwise a new member is appended.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

func (o *Object) JSON() string { return string(appendJSON(nil, o)) }

func (o *Object) MarshalJSON() ([]byte, error) { return appendJSON(nil, o), nil }

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) JSON() string { return string(appendJSON(nil, a)) }

func (a *Array) MarshalJSON() ([]byte, error) { return appendJSON(nil, a), nil }

// A String is a decoded string value.
type String string

func (s String) JSON() string { return escape.Quote(mem.S(string(s))) }

func (s String) MarshalJSON() ([]byte, error) { return appendJSON(nil, s), nil }

// A Number is a numeric value, retaining its source text.
type Number string

func (n Number) JSON() string { return string(n) }

func (n Number) MarshalJSON() ([]byte, error) { return []byte(n), nil }

// Float64 returns n as a floating-point value.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Int64 returns n as an integer. It reports an error if n has a fraction or
// exponent, or is out of range.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) MarshalJSON() ([]byte, error) { return []byte(b.JSON()), nil }

// Null represents the null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// appendJSON appends the compact encoding of v to buf.
func appendJSON(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case *Object:
		buf = append(buf, '{')
		for i, m := range t.Members {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = escape.AppendQuote(buf, mem.S(m.Key))
			buf = append(buf, ':')
			buf = appendJSON(buf, m.Value)
		}
		return append(buf, '}')
	case *Array:
		buf = append(buf, '[')
		for i, elt := range t.Values {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, elt)
		}
		return append(buf, ']')
	case String:
		return escape.AppendQuote(buf, mem.S(string(t)))
	case nil:
		return append(buf, "null"...)
	default:
		return append(buf, v.JSON()...)
	}
}

// Interface converts v into plain Go values: objects become map[string]any,
// arrays become []any, numbers become float64, and Null becomes nil. Key
// order is not preserved by the result.
func Interface(v Value) any {
	switch t := v.(type) {
	case *Object:
		out := make(map[string]any, len(t.Members))
		for _, m := range t.Members {
			out[m.Key] = Interface(m.Value)
		}
		return out
	case *Array:
		out := make([]any, len(t.Values))
		for i, elt := range t.Values {
			out[i] = Interface(elt)
		}
		return out
	case String:
		return string(t)
	case Number:
		f, _ := t.Float64()
		return f
	case Bool:
		return bool(t)
	default:
		return nil
	}
}
