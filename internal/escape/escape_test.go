// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jfix/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\"b\\", `"a\"b\\"`},
		{"\x01\t\n", `"\u0001\t\n"`},
		{"\x1f", `"\u001f"`},
		{"</script>", `"</script>"`},
		{"\xe2\x80\xa8|\xe2\x80\xa9", `"\u2028|\u2029"`},
		{"caf\xc3\xa9", "\"caf\xc3\xa9\""},
		{"bad\xff", "\"bad\xef\xbf\xbd\""},
	}
	for _, test := range tests {
		if got := escape.Quote(mem.S(test.input)); got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{``, ""},
		{`no escapes`, "no escapes"},
		{`a\nb\tc`, "a\nb\tc"},
		{`\"\\\/`, "\"\\/"},
		{`\b\f\r`, "\b\f\r"},
		{`\u00e9`, "\xc3\xa9"},
		{`\u00E9!`, "\xc3\xa9!"},
		{`\ud83d\ude00`, "\xf0\x9f\x98\x80"},
		{`\ud83d`, "\xef\xbf\xbd"},
		{`\ud83dx`, "\xef\xbf\xbdx"},
		{`\ud83d\u0041`, "\xef\xbf\xbdA"},
		{`\q`, "\xef\xbf\xbd"},
		{`\u12zz`, "\xef\xbf\xbd"},
	}
	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%#q) failed: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}

	for _, bad := range []string{`abc\`, `\u12`, `x\u`} {
		if got, err := escape.Unquote(mem.S(bad)); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"", "a b c", "\"quoted\"", "back\\slash", "\x00\x7f", "tab\there",
		"\xe2\x80\xa8", "\xf0\x9f\x98\x80 and caf\xc3\xa9",
	} {
		q := escape.Quote(mem.S(input))
		got, err := escape.Unquote(mem.S(q[1 : len(q)-1]))
		if err != nil {
			t.Errorf("Unquote(%#q) failed: %v", q, err)
		} else if got != input {
			t.Errorf("Round trip of %q: got %q", input, got)
		}
	}
}
