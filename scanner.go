// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jfix

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// A Scanner reads strict JSON tokens from a string. Each call to Next advances
// the scanner to the next token, or reports an error.
//
// The scanner accepts only the grammar of RFC 8259: there are no comments,
// no single-quoted strings, and no bare words other than true, false, and
// null.
type Scanner struct {
	src string
	tok Token
	err error

	pos, end int // start and end offsets of current token

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.err = nil
	s.tok = Invalid

	// Discard whitespace.
	for s.end < len(s.src) && isSpace(s.src[s.end]) {
		if s.src[s.end] == '\n' {
			s.eline++
			s.ecol = 0
		} else {
			s.ecol++
		}
		s.end++
	}
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
	if s.end == len(s.src) {
		return s.setErr(io.EOF)
	}

	ch := s.src[s.end]
	if t, ok := selfDelim(ch); ok {
		s.advance(1)
		s.tok = t
		return nil
	} else if isNumStart(ch) {
		return s.scanNumber()
	} else if ch == '"' {
		return s.scanString()
	}

	// Handle constants: true, false, null
	var tok Token
	var want mem.RO
	switch ch {
	case 't':
		tok, want = True, mem.S("true")
	case 'f':
		tok, want = False, mem.S("false")
	case 'n':
		tok, want = Null, mem.S("null")
	default:
		r, _ := utf8.DecodeRuneInString(s.src[s.end:])
		return s.failf("unexpected %q", r)
	}
	n := s.count(s.end, isNameByte)
	if got := mem.S(s.src[s.end : s.end+n]); !got.Equal(want) {
		return s.failf("unknown constant %q", got.StringCopy())
	}
	s.advance(n)
	s.tok = tok
	return nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token.
func (s *Scanner) Text() string { return s.src[s.pos:s.end] }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) scanString() error {
	i := s.end + 1 // skip the open quote
	for i < len(s.src) {
		ch := s.src[i]
		if ch == '"' {
			s.advance(i + 1 - s.end)
			s.tok = String
			return nil
		} else if ch < ' ' {
			s.advance(i - s.end)
			return s.failf("unescaped control %q", ch)
		} else if ch != '\\' {
			i++
			continue
		} else if i+1 == len(s.src) {
			break // incomplete escape
		}

		// We are awaiting the completion of a \-escape.
		switch esc := s.src[i+1]; esc {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			i += 2
		case 'u':
			if n := s.count(i+2, isHexDigit); n < 4 && i+2+n < len(s.src) {
				s.advance(i + 2 + n - s.end)
				return s.failf("invalid Unicode escape")
			}
			i += 6
		default:
			s.advance(i + 1 - s.end)
			return s.failf("invalid %q after escape", esc)
		}
	}
	s.advance(len(s.src) - s.end)
	return s.failf("unterminated string")
}

func (s *Scanner) scanNumber() error {
	i := s.end
	if s.src[i] == '-' {
		// If there is a leading sign, we need at least one digit.
		i++
	}
	nd := s.count(i, isDigit)
	if nd == 0 {
		s.advance(i - s.end)
		return s.failf("want digit, got %s", s.describe(i))
	}

	// Check for extra leading zeroes, which RFC 8259 does not allow.
	// That is: 0.12 is OK, 01.2 is not.
	if nd > 1 && s.src[i] == '0' {
		s.advance(i - s.end)
		return s.failf("extra leading zeroes")
	}
	i += nd

	// If a decimal point follows, consume a fractional part.
	tok := Integer
	if i < len(s.src) && s.src[i] == '.' {
		i++
		nf := s.count(i, isDigit)
		if nf == 0 {
			s.advance(i - s.end)
			return s.failf("no digits after decimal point")
		}
		i += nf
		tok = Number
	}

	// If an exponent follows, consume it.
	if i < len(s.src) && (s.src[i] == 'e' || s.src[i] == 'E') {
		i++
		if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
			i++
		}
		ne := s.count(i, isDigit)
		if ne == 0 {
			s.advance(i - s.end)
			return s.failf("missing exponent digits")
		}
		i += ne
		tok = Number
	}
	s.advance(i - s.end)
	s.tok = tok
	return nil
}

// advance moves the end of the current token forward by n bytes. Tokens never
// span a line break, so only the column changes.
func (s *Scanner) advance(n int) {
	s.end += n
	s.ecol += n
}

// count reports the number of consecutive bytes matching f starting at offset
// i of the input.
func (s *Scanner) count(i int, f func(byte) bool) int {
	n := 0
	for i+n < len(s.src) && f(s.src[i+n]) {
		n++
	}
	return n
}

// describe renders the input at offset i for an error message.
func (s *Scanner) describe(i int) string {
	if i >= len(s.src) {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(s.src[i:])
	return fmt.Sprintf("%q", r)
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.setErr(fmt.Errorf(msg, args...))
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
