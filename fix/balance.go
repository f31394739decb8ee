// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package fix

import (
	"fmt"
	"strings"

	"github.com/creachadair/jfix/scan"
)

// Balance reconciles unmatched braces and brackets outside strings.
//
// If text ends inside an unterminated string, the string is closed first,
// dropping a dangling escape backslash. Then:
//
//   - If text has no "{" but has a key ("k":) or a "}", a "{" is prepended.
//     If it has no "[" but has a "]" and no key, a "[" is prepended.
//   - Each kind is counted independently. A closer with no open partner of
//     its kind is unmatched, and an opener is prepended for it. An opener
//     left open at the end gets a closer appended, innermost first, after
//     trailing whitespace and commas are trimmed from the text.
//
// Balance reports one description per direction and kind, with counts, such
// as "2 closing brackets ]". After Balance, scan.Balance reports zero for
// both kinds.
func Balance(text string) (string, []string) {
	var notes []string
	out := text

	if st := scan.Final(out); st.InString {
		if st.EscapeNext {
			out = out[:len(out)-1]
		}
		out += `"`
		notes = append(notes, "unterminated string")
	}

	var addOpenBrace, addOpenBracket int
	f := features(out)
	if !f.openBrace && (f.key || f.closeBrace) {
		out = "{" + out
		addOpenBrace++
	}
	if !f.openBracket && f.closeBracket && !f.key {
		out = "[" + out
		addOpenBracket++
	}

	// Offsets of openers not yet matched, per kind, and the unmatched closers
	// in order of appearance.
	var braces, brackets []int
	var lead []byte
	for i, c := range scan.Outside(out) {
		switch c {
		case '{':
			braces = append(braces, i)
		case '[':
			brackets = append(brackets, i)
		case '}':
			if n := len(braces); n != 0 {
				braces = braces[:n-1]
			} else {
				lead = append(lead, '{')
			}
		case ']':
			if n := len(brackets); n != 0 {
				brackets = brackets[:n-1]
			} else {
				lead = append(lead, '[')
			}
		}
	}

	if len(braces)+len(brackets) != 0 {
		// Neither kind can be closed after a dangling separator.
		out = strings.TrimRight(out, " \t\r\n,")

		var tail strings.Builder
		i, j := len(braces)-1, len(brackets)-1
		for i >= 0 || j >= 0 {
			if j < 0 || (i >= 0 && braces[i] > brackets[j]) {
				tail.WriteByte('}')
				i--
			} else {
				tail.WriteByte(']')
				j--
			}
		}
		out += tail.String()
	}
	if len(lead) != 0 {
		// The first unmatched closer needs the innermost opener.
		head := make([]byte, len(lead))
		for i, c := range lead {
			head[len(lead)-1-i] = c
		}
		out = string(head) + out
		addOpenBrace += strings.Count(string(lead), "{")
		addOpenBracket += strings.Count(string(lead), "[")
	}

	notes = appendCount(notes, addOpenBrace, "opening", "brace", '{')
	notes = appendCount(notes, addOpenBracket, "opening", "bracket", '[')
	notes = appendCount(notes, len(brackets), "closing", "bracket", ']')
	notes = appendCount(notes, len(braces), "closing", "brace", '}')
	return out, notes
}

// appendCount appends a description of n added tokens c to notes, if n > 0.
func appendCount(notes []string, n int, dir, kind string, c byte) []string {
	if n == 0 {
		return notes
	}
	if n > 1 {
		kind += "s"
	}
	return append(notes, fmt.Sprintf("%d %s %s %c", n, dir, kind, c))
}

// textFeatures records which structural tokens occur outside strings.
type textFeatures struct {
	openBrace, closeBrace     bool
	openBracket, closeBracket bool
	key                       bool // a "key": pattern
}

func features(text string) textFeatures {
	var f textFeatures
	cls := scan.Classify(text)
	for i, c := range cls {
		switch {
		case c == scan.Open:
			if !f.key {
				_, f.key = scan.KeyAt(text, cls, i)
			}
		case c != scan.Code:
		case text[i] == '{':
			f.openBrace = true
		case text[i] == '}':
			f.closeBrace = true
		case text[i] == '[':
			f.openBracket = true
		case text[i] == ']':
			f.closeBracket = true
		}
	}
	return f
}
