// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfix

import (
	"fmt"
	"strings"

	"github.com/creachadair/jfix/fix"
	"github.com/creachadair/jfix/value"
)

// Status reports the outcome of a call to Parse.
type Status byte

const (
	OK     Status = iota // the input was valid JSON
	Fixed                // the input was valid JSON after repair
	Failed               // the input could not be parsed
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Fixed:
		return "fixed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", byte(s))
	}
}

// Result is the outcome of parsing a document with Parse.
type Result struct {
	Status Status
	Value  value.Value // nil if Status == Failed

	// Text is the text that was parsed successfully: the input itself if
	// Status == OK, or the repaired text if Status == Fixed.
	Text string

	// Fixes lists the repairs applied, in pipeline order. It is empty unless
	// Status == Fixed.
	Fixes []fix.Record

	Err error // non-nil, with concrete type *Error, iff Status == Failed
}

// Descriptions returns the descriptions of the fixes in r, in order.
func (r Result) Descriptions() []string {
	return fix.Result{Fixes: r.Fixes}.Descriptions()
}

// Parse parses text as JSON. If text is not valid JSON, Parse runs the
// default repair pipeline over it once and parses the result. If that also
// fails, the error reported is the one from the original text.
//
// Parse never panics.
func Parse(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Status: Failed, Err: &Error{Kind: EmptyInput, Message: "Empty input"}}
	}
	v, err := ParseValue(text)
	if err == nil {
		return Result{Status: OK, Value: v, Text: text}
	}

	fixed, ok := repair(text)
	if ok {
		if v, ferr := ParseValue(fixed.Text); ferr == nil {
			return Result{Status: Fixed, Value: v, Text: fixed.Text, Fixes: fixed.Fixes}
		}
	}
	return Result{
		Status: Failed,
		Err:    &Error{Kind: Unrecoverable, Message: err.Error(), Err: err},
	}
}

// repair runs the default pipeline over text, reporting false if a stage
// panicked.
func repair(text string) (res fix.Result, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fix.Repair(text), true
}

// Info is a summary of the result of parsing a document, suitable for
// encoding as JSON.
type Info struct {
	Data     value.Value `json:"data,omitempty"`
	WasFixed bool        `json:"was_fixed"`
	Fixes    []string    `json:"fixes,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// ParseWithFixInfo parses text as Parse does and summarizes the result.
func ParseWithFixInfo(text string) Info {
	r := Parse(text)
	if r.Status == Failed {
		return Info{Error: r.Err.Error()}
	}
	return Info{
		Data:     r.Value,
		WasFixed: r.Status == Fixed,
		Fixes:    r.Descriptions(),
	}
}

// Format parses text as Parse does, and renders the value indented by two
// spaces per level. It reports the same error as Parse on failure.
func Format(text string) (string, error) {
	r := Parse(text)
	if r.Err != nil {
		return "", r.Err
	}
	return value.FormatToString(r.Value), nil
}

// Compact parses text as Parse does, and renders the value with no
// insignificant whitespace. It reports the same error as Parse on failure.
func Compact(text string) (string, error) {
	r := Parse(text)
	if r.Err != nil {
		return "", r.Err
	}
	return r.Value.JSON(), nil
}
