// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jfix implements a tolerant JSON parser.
//
// # Parsing
//
// The Parse function first parses its input as strict JSON. If that fails, it
// applies a fixed sequence of text repairs (see package fix) exactly once, and
// parses the result. The Result reports which repairs were applied:
//
//	r := jfix.Parse(`{name: 'alice', tags: ["a" "b"],}`)
//	switch r.Status {
//	case jfix.OK:
//	   // the input was valid as given
//	case jfix.Fixed:
//	   log.Printf("Repaired: %q", r.Descriptions())
//	case jfix.Failed:
//	   log.Fatalf("Parse failed: %v", r.Err)
//	}
//
// When repair does not produce valid JSON, the error reported is the one from
// the original input, not from the repaired text. Errors have concrete type
// *Error, and can be classified with errors.Is:
//
//	if errors.Is(r.Err, jfix.EmptyInput) { ... }
//
// The Format and Compact functions parse as Parse does, and render the result
// indented or minified respectively. ParseWithFixInfo returns a summary
// suitable for encoding as JSON.
//
// # Scanning
//
// The Scanner type implements a strict lexical scanner for JSON. Construct a
// scanner from a string and call its Next method to iterate over the input.
// Next advances to the next input token and returns nil, or reports an error:
//
//	s := jfix.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates a lexical error in the input.
//
// # Streaming
//
// The Stream type implements an event-driven strict parser for a single JSON
// value. The parser works by calling methods on a Handler value to report the
// structure of the input. In case of error, parsing is terminated and an error
// of concrete type *jfix.SyntaxError is returned.
//
//	s := jfix.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The methods of a Handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//
// ParseValue uses a Stream to construct a value.Value.
package jfix
