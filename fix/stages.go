// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package fix

import (
	"strings"

	"github.com/creachadair/jfix/scan"
	"github.com/creachadair/mds/stack"
)

// StripBOM removes any byte-order marks (U+FEFF) from the front of text.
func StripBOM(text string) (string, bool) {
	out := strings.TrimLeft(text, "\ufeff")
	return out, len(out) != len(text)
}

// DedupeEdges collapses a run of repeated opening braces or brackets at the
// start of text, and a run of repeated closing braces or brackets at the end.
// Leading and trailing whitespace is ignored.
//
// A run is shortened by as many characters as its kind has in excess, so
// "{{"a":1}" loses one brace but "[[1],[2]]" is left alone. In addition, an
// object cannot directly contain another object, so matching runs of braces
// at both ends are shortened together, and "{{"a":1}}" becomes "{"a":1}".
func DedupeEdges(text string) (string, bool) {
	out := text

	if i := skipSpace(out, 0); i < len(out) && (out[i] == '{' || out[i] == '[') {
		c := out[i]
		n := 1
		for i+n < len(out) && out[i+n] == c {
			n++
		}
		if n > 1 {
			if drop := min(n-1, excess(out, c)); drop > 0 {
				out = out[:i] + out[i+drop:]
			}
		}
	}

	if scan.Final(out).InString {
		return out, len(out) != len(text) // the tail is string content
	}
	if j := len(strings.TrimRight(out, " \t\r\n")); j > 0 && (out[j-1] == '}' || out[j-1] == ']') {
		c := out[j-1]
		n := 1
		for j-n > 0 && out[j-n-1] == c {
			n++
		}
		if n > 1 {
			if drop := min(n-1, excess(out, c)); drop > 0 {
				out = out[:j-drop] + out[j:]
			}
		}
	}

	i, n := skipSpace(out, 0), 0
	for i+n < len(out) && out[i+n] == '{' {
		n++
	}
	j, m := len(strings.TrimRight(out, " \t\r\n")), 0
	for j-m > 0 && out[j-m-1] == '}' {
		m++
	}
	if n > 1 && m > 1 {
		k := min(n, m) - 1
		out = out[:i] + out[i+k:j-k] + out[j:]
	}
	return out, len(out) != len(text)
}

// excess reports how many more of the bracket c than its partner occur
// outside strings in text.
func excess(text string, c byte) int {
	braces, brackets := scan.Balance(text)
	switch c {
	case '{':
		return braces
	case '}':
		return -braces
	case '[':
		return brackets
	default:
		return -brackets
	}
}

var smartQuotes = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'",
	"\u201c", `"`, "\u201d", `"`,
)

// NormalizeSmartQuotes replaces typographic single quotes (U+2018, U+2019)
// with ' and typographic double quotes (U+201C, U+201D) with ".
func NormalizeSmartQuotes(text string) (string, bool) {
	out := smartQuotes.Replace(text)
	return out, out != text
}

// UnifyQuotes rewrites each single-quoted string outside a double-quoted
// string with double quotes. Double quotes inside the converted string are
// escaped, and escaped single quotes are unescaped. A single quote with no
// partner is left alone.
func UnifyQuotes(text string) (string, bool) {
	if strings.IndexByte(text, '\'') < 0 {
		return text, false
	}
	var buf strings.Builder
	buf.Grow(len(text))
	var changed bool
	for i := 0; i < len(text); {
		switch text[i] {
		case '"':
			end, _ := quotedEnd(text, i)
			buf.WriteString(text[i:end])
			i = end
		case '\'':
			end, ok := quotedEnd(text, i)
			if !ok {
				buf.WriteByte('\'')
				i++
				continue
			}
			requote(&buf, text[i+1:end-1])
			changed = true
			i = end
		default:
			buf.WriteByte(text[i])
			i++
		}
	}
	return buf.String(), changed
}

// quotedEnd returns the offset just past the quotation mark that closes the
// string opened by the quote at offset i of text. If the string is not
// closed, it returns len(text), false.
func quotedEnd(text string, i int) (int, bool) {
	q := text[i]
	for j := i + 1; j < len(text); j++ {
		if text[j] == '\\' {
			j++
		} else if text[j] == q {
			return j + 1, true
		}
	}
	return len(text), false
}

// requote writes body, the contents of a single-quoted string, to buf as a
// double-quoted string.
func requote(buf *strings.Builder, body string) {
	buf.WriteByte('"')
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if i+1 < len(body) && body[i+1] == '\'' {
				buf.WriteByte('\'')
			} else if i+1 < len(body) {
				buf.WriteString(body[i : i+2])
			}
			i++
		case '"':
			buf.WriteString(`\"`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

// StripComments removes block comments (/* ... */) and line comments
// (// ... to the end of the line) that occur outside strings. The newline
// that ends a line comment is kept. A block comment with no end is left in
// place.
func StripComments(text string) (string, bool) {
	if !strings.Contains(text, "/") {
		return text, false
	}
	var buf strings.Builder
	buf.Grow(len(text))
	var st scan.State
	var changed bool
	for i := 0; i < len(text); {
		if !st.InString && strings.HasPrefix(text[i:], "//") {
			n := strings.IndexByte(text[i:], '\n')
			if n < 0 {
				n = len(text) - i
			}
			i += n
			changed = true
			continue
		}
		if !st.InString && strings.HasPrefix(text[i:], "/*") {
			if n := strings.Index(text[i+2:], "*/"); n >= 0 {
				i += n + 4
				changed = true
				continue
			}
		}
		st.Step(text[i])
		buf.WriteByte(text[i])
		i++
	}
	return buf.String(), changed
}

// QuoteKeys adds quotation marks to bare identifier keys that follow an open
// brace or a comma, so {a: 1, b_2 : 2} becomes {"a": 1, "b_2": 2}. An
// identifier begins with a letter, underscore, or dollar sign, followed by
// letters, digits, underscores, and dollar signs.
func QuoteKeys(text string) (string, bool) {
	cls := scan.Classify(text)
	var buf strings.Builder
	last := 0 // text[last:] has not been written
	for i := 0; i < len(text); i++ {
		if cls[i] != scan.Code || (text[i] != '{' && text[i] != ',') {
			continue
		}
		start := skipSpace(text, i+1)
		end := identEnd(text, start)
		if end == start {
			continue
		}
		colon := skipSpace(text, end)
		if colon == len(text) || text[colon] != ':' {
			continue
		}
		buf.WriteString(text[last:start])
		buf.WriteByte('"')
		buf.WriteString(text[start:end])
		buf.WriteString(`":`)
		last = colon + 1
		i = colon
	}
	if last == 0 {
		return text, false
	}
	buf.WriteString(text[last:])
	return buf.String(), true
}

// keywords are the bare words QuoteValues leaves alone.
var keywords = map[string]bool{"true": true, "false": true, "null": true, "undefined": true}

// QuoteValues adds quotation marks to bare words used as values: a dotted
// identifier such as abc or a.b.c that follows a colon, or that follows an
// open bracket or comma inside an array, and is followed by a comma or a
// closing brace or bracket. The words true, false, null, and undefined are
// not changed.
func QuoteValues(text string) (string, bool) {
	cls := scan.Classify(text)
	ctx := stack.New[byte]() // enclosing brackets outside strings
	var buf strings.Builder
	last := 0
	for i := 0; i < len(text); i++ {
		if cls[i] != scan.Code {
			continue
		}
		c := text[i]
		switch c {
		case '{', '[':
			ctx.Push(c)
		case '}', ']':
			ctx.Pop()
		}
		top, _ := ctx.Peek(0)
		if c != ':' && !((c == '[' || c == ',') && top == '[') {
			continue
		}

		start := skipSpace(text, i+1)
		end := dottedEnd(text, start)
		if end == start || keywords[text[start:end]] {
			continue
		}
		if next := skipSpace(text, end); next == len(text) || strings.IndexByte(",]}", text[next]) < 0 {
			continue
		}
		buf.WriteString(text[last:start])
		buf.WriteByte('"')
		buf.WriteString(text[start:end])
		buf.WriteByte('"')
		last = end
		i = end - 1
	}
	if last == 0 {
		return text, false
	}
	buf.WriteString(text[last:])
	return buf.String(), true
}

// dottedEnd returns the offset just past a sequence of identifiers joined by
// dots beginning at offset i of text, or i if there is none.
func dottedEnd(text string, i int) int {
	end := identEnd(text, i)
	if end == i {
		return i
	}
	for end+1 < len(text) && text[end] == '.' {
		next := identEnd(text, end+1)
		if next == end+1 {
			break
		}
		end = next
	}
	return end
}

// RemoveTrailingCommas removes commas that are followed, apart from
// whitespace and other commas, by a closing brace or bracket.
func RemoveTrailingCommas(text string) (string, bool) {
	if !strings.Contains(text, ",") {
		return text, false
	}
	cls := scan.Classify(text)
	var buf strings.Builder
	buf.Grow(len(text))
	var changed bool
	pend := -1 // start of a pending run of commas and spaces
	for i := 0; i < len(text); i++ {
		c := text[i]
		if cls[i] == scan.Code {
			if pend < 0 && c == ',' {
				pend = i
				continue
			} else if pend >= 0 && (c == ',' || scan.IsSpace(c)) {
				continue
			}
		}
		if pend >= 0 {
			run := text[pend:i]
			if cls[i] == scan.Code && (c == '}' || c == ']') {
				run = strings.ReplaceAll(run, ",", "")
				changed = true
			}
			buf.WriteString(run)
			pend = -1
		}
		buf.WriteByte(c)
	}
	if pend >= 0 {
		buf.WriteString(text[pend:])
	}
	return buf.String(), changed
}

// RemoveLeadingCommas removes commas that are preceded, apart from
// whitespace and other commas, by an opening brace or bracket.
func RemoveLeadingCommas(text string) (string, bool) {
	if !strings.Contains(text, ",") {
		return text, false
	}
	cls := scan.Classify(text)
	var buf strings.Builder
	buf.Grow(len(text))
	var changed bool
	var prev byte // the last byte that is not a space or comma; 0 in a string
	for i := 0; i < len(text); i++ {
		c := text[i]
		if cls[i] != scan.Code {
			prev = 0
		} else if c == ',' {
			if prev == '{' || prev == '[' {
				changed = true
				continue
			}
		} else if !scan.IsSpace(c) {
			prev = c
		}
		buf.WriteByte(c)
	}
	return buf.String(), changed
}

// CollapseCommas removes each comma that follows another comma with only
// whitespace between them.
func CollapseCommas(text string) (string, bool) {
	if !strings.Contains(text, ",") {
		return text, false
	}
	cls := scan.Classify(text)
	var buf strings.Builder
	buf.Grow(len(text))
	var changed bool
	var prev byte // the last byte that is not a space; 0 in a string
	for i := 0; i < len(text); i++ {
		c := text[i]
		if cls[i] != scan.Code {
			prev = 0
		} else if c == ',' && prev == ',' {
			changed = true
			continue
		} else if !scan.IsSpace(c) {
			prev = c
		}
		buf.WriteByte(c)
	}
	return buf.String(), changed
}

// InsertMissingCommas inserts a comma between a value and an object key that
// follows it without one. The value may end in a string, a number, a closing
// brace or bracket, or a bare word. When the key is on the same line as the
// value the whitespace between them is replaced by the comma, so
// {"a": 1 "b": 2} becomes {"a": 1,"b": 2}. Across a line break the comma is
// placed directly after the value and the line break is kept.
func InsertMissingCommas(text string) (string, bool) {
	cls := scan.Classify(text)
	var buf strings.Builder
	last := 0
	for i := 0; i < len(text); i++ {
		if cls[i] != scan.Open {
			continue
		}
		if _, ok := scan.KeyAt(text, cls, i); !ok {
			continue
		}
		j := i
		for j > last && cls[j-1] == scan.Code && scan.IsSpace(text[j-1]) {
			j--
		}
		if j == 0 || !endsValue(text[j-1], cls[j-1]) {
			continue
		}
		buf.WriteString(text[last:j])
		buf.WriteByte(',')
		if gap := text[j:i]; strings.ContainsAny(gap, "\r\n") {
			buf.WriteString(gap)
		}
		last = i
	}
	if last == 0 {
		return text, false
	}
	buf.WriteString(text[last:])
	return buf.String(), true
}

// endsValue reports whether the byte b of class c can be the last byte of a
// complete value.
func endsValue(b byte, c scan.Class) bool {
	if c == scan.Close {
		return true
	}
	return c == scan.Code && (b == '}' || b == ']' || isWordByte(b))
}
