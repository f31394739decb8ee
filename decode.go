// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfix

import (
	"fmt"

	"github.com/creachadair/jfix/value"
	"github.com/creachadair/mds/stack"
)

// ParseValue strictly parses text as a single JSON value. It does not attempt
// any repair. In case of a syntax error, the returned error has concrete type
// [*SyntaxError].
//
// Object members keep the order in which their keys first appear. When a key
// is repeated, the last value wins but the member keeps its first position.
func ParseValue(text string) (value.Value, error) {
	d := &decoder{stk: stack.New[*frame]()}
	if err := NewStream(text).Parse(d); err != nil {
		return nil, err
	}
	return d.root, nil
}

// A decoder implements the Handler interface to construct value trees.
type decoder struct {
	stk  *stack.Stack[*frame]
	root value.Value
}

// A frame is an object or array under construction.
type frame struct {
	obj  *value.Object
	arr  *value.Array
	key  string         // the key of the current member (obj only)
	seen map[string]int // key to member index (obj only)
}

func (f *frame) value() value.Value {
	if f.obj != nil {
		return f.obj
	}
	return f.arr
}

// add attaches v to the innermost open container, or makes it the root.
func (d *decoder) add(v value.Value) {
	f, ok := d.stk.Peek(0)
	if !ok {
		d.root = v
		return
	}
	if f.arr != nil {
		f.arr.Values = append(f.arr.Values, v)
		return
	}
	if i, ok := f.seen[f.key]; ok {
		f.obj.Members[i].Value = v
		return
	}
	f.seen[f.key] = len(f.obj.Members)
	f.obj.Members = append(f.obj.Members, &value.Member{Key: f.key, Value: v})
}

func (d *decoder) end() error {
	f, ok := d.stk.Pop()
	if !ok {
		return fmt.Errorf("unbalanced close")
	}
	d.add(f.value())
	return nil
}

func (d *decoder) BeginObject(Anchor) error {
	d.stk.Push(&frame{obj: new(value.Object), seen: make(map[string]int)})
	return nil
}

func (d *decoder) EndObject(Anchor) error { return d.end() }

func (d *decoder) BeginArray(Anchor) error {
	d.stk.Push(&frame{arr: new(value.Array)})
	return nil
}

func (d *decoder) EndArray(Anchor) error { return d.end() }

func (d *decoder) BeginMember(loc Anchor) error {
	key, err := Unquote(loc.Text())
	if err != nil {
		return err
	}
	f, _ := d.stk.Peek(0)
	f.key = key
	return nil
}

func (d *decoder) EndMember(Anchor) error { return nil }

func (d *decoder) Value(loc Anchor) error {
	switch loc.Token() {
	case String:
		s, err := Unquote(loc.Text())
		if err != nil {
			return err
		}
		d.add(value.String(s))
	case Integer, Number:
		d.add(value.Number(loc.Text()))
	case True, False:
		d.add(value.Bool(loc.Token() == True))
	case Null:
		d.add(value.Null{})
	default:
		return fmt.Errorf("unknown value %v", loc.Token())
	}
	return nil
}
