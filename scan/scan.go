// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package scan classifies the bytes of JSON-like text according to whether
// they lie inside a double-quoted string literal.
//
// Structural rewrites of malformed JSON must not touch the contents of string
// literals. The classification here is the guard: a rewrite acts only on
// bytes whose class is Code.
//
// Only the double quotation mark delimits strings. A backslash inside a string
// escapes the byte after it, so a quote preceded by an odd run of
// backslashes does not close the string. Backslashes outside strings have no
// special meaning. All the bytes of interest are ASCII, so multi-byte UTF-8
// sequences never change the state.
package scan

import "iter"

// A Class describes the role of a single byte of input.
type Class byte

// Constants defining the valid Class values.
const (
	Code    Class = iota // outside any string literal
	Open                 // the quotation mark that opens a string
	Close                // the quotation mark that closes a string
	Text                 // string content, including escape backslashes
	Escaped              // the byte following an escape backslash
)

var classStr = [...]string{
	Code:    "code",
	Open:    "open",
	Close:   "close",
	Text:    "text",
	Escaped: "escaped",
}

func (c Class) String() string {
	if int(c) >= len(classStr) {
		return "invalid"
	}
	return classStr[c]
}

// InString reports whether c belongs to a string literal, including its
// delimiters.
func (c Class) InString() bool { return c != Code }

// State is the state of a scan between bytes. A zero State is outside any
// string.
//
// EscapeNext is true only while InString is true and the previous byte was an
// unescaped backslash. InString changes only at an unescaped quotation mark.
type State struct {
	InString   bool
	EscapeNext bool
}

// Step advances s past the byte b and returns the class of b.
func (s *State) Step(b byte) Class {
	switch {
	case !s.InString:
		if b == '"' {
			s.InString = true
			return Open
		}
		return Code
	case s.EscapeNext:
		s.EscapeNext = false
		return Escaped
	case b == '\\':
		s.EscapeNext = true
		return Text
	case b == '"':
		s.InString = false
		return Close
	default:
		return Text
	}
}

// Classify returns the class of each byte of text.
func Classify(text string) []Class {
	var s State
	cls := make([]Class, len(text))
	for i := 0; i < len(text); i++ {
		cls[i] = s.Step(text[i])
	}
	return cls
}

// Final returns the state after scanning all of text. If the result reports
// InString, text ends inside an unterminated string.
func Final(text string) State {
	var s State
	for i := 0; i < len(text); i++ {
		s.Step(text[i])
	}
	return s
}

// Outside returns a sequence of the offsets and values of the bytes of text
// that lie outside any string literal.
func Outside(text string) iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		var s State
		for i := 0; i < len(text); i++ {
			if s.Step(text[i]) == Code && !yield(i, text[i]) {
				return
			}
		}
	}
}

// Balance reports the net number of open braces and open brackets in text,
// counting only bytes outside strings. A negative value means there are more
// closers than openers of that kind.
func Balance(text string) (braces, brackets int) {
	for _, b := range Outside(text) {
		switch b {
		case '{':
			braces++
		case '}':
			braces--
		case '[':
			brackets++
		case ']':
			brackets--
		}
	}
	return
}

// KeyAt reports whether the string opening at offset i of text is an object
// key, that is, a complete string followed by optional whitespace and a colon.
// If so, it returns the offset just past the colon. The classes must be those
// reported by Classify for text.
func KeyAt(text string, cls []Class, i int) (end int, ok bool) {
	if i >= len(cls) || cls[i] != Open {
		return 0, false
	}
	j := i + 1
	for j < len(cls) && cls[j] != Close {
		j++
	}
	if j == len(cls) {
		return 0, false // unterminated
	}
	j++
	for j < len(text) && IsSpace(text[j]) {
		j++
	}
	if j < len(text) && text[j] == ':' {
		return j + 1, true
	}
	return 0, false
}

// IsSpace reports whether b is JSON insignificant whitespace.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
