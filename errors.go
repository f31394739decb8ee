// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jfix

// ErrorKind classifies the errors reported by Parse. An ErrorKind is itself
// an error, so that callers may write:
//
//	if errors.Is(err, jfix.EmptyInput) { ... }
type ErrorKind byte

const (
	// EmptyInput means the input was empty or contained only whitespace.
	EmptyInput ErrorKind = iota + 1

	// Unrecoverable means the input could not be parsed either before or
	// after repair.
	Unrecoverable
)

var kindStr = [...]string{"", "empty input", "unrecoverable input"}

func (k ErrorKind) Error() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return "unknown error"
}

// Error is the concrete type of errors reported by Parse and the functions
// built on it.
type Error struct {
	Kind    ErrorKind
	Message string // the human-readable diagnostic
	Err     error  // for Unrecoverable, the syntax error from the original input
}

// Error satisfies the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}
