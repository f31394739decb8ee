// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package scan_test

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/creachadair/jfix/scan"
	"github.com/google/go-cmp/cmp"
)

// classString renders the classes of text compactly, one byte per class.
func classString(text string) string {
	var sb strings.Builder
	for _, c := range scan.Classify(text) {
		sb.WriteByte(".()te"[c])
	}
	return sb.String()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{``, ``},
		{`{}`, `..`},
		{`""`, `()`},
		{`"a"`, `(t)`},
		{`{"a": 1}`, `.(t)....`},
		{`"a\"b"`, `(ttet)`},
		{`"\\"x`, `(te).`},
		{`"\\\""`, `(tete)`},
		{`\"a"`, `.(t)`},
		{`'x' "y"`, `....(t)`},
		{`"open`, `(tttt`},
		{`"esc\`, `(tttt`},
		{`["a,b", {"c": "}"}]`, `.(ttt)...(t)..(t)..`},
	}
	for _, test := range tests {
		if got := classString(test.input); got != test.want {
			t.Errorf("Classify(%#q):\n got %s\nwant %s", test.input, got, test.want)
		}
	}
}

func TestFinal(t *testing.T) {
	tests := []struct {
		input string
		want  scan.State
	}{
		{``, scan.State{}},
		{`{"a": "b"}`, scan.State{}},
		{`{"a": "b`, scan.State{InString: true}},
		{`{"a": "b\`, scan.State{InString: true, EscapeNext: true}},
		{`{"a": "b\\`, scan.State{InString: true}},
		{`{"a": "b\"`, scan.State{InString: true}},
		{`"\\"`, scan.State{}},
	}
	for _, test := range tests {
		if got := scan.Final(test.input); got != test.want {
			t.Errorf("Final(%#q): got %+v, want %+v", test.input, got, test.want)
		}
	}
}

func TestOutside(t *testing.T) {
	const input = `{"a{": [1, "]"], "b\"}": 2}`
	got := maps.Collect(scan.Outside(input))
	var bytes []byte
	for _, i := range slices.Sorted(maps.Keys(got)) {
		bytes = append(bytes, got[i])
	}
	if diff := cmp.Diff(`{: [1, ], : 2}`, string(bytes)); diff != "" {
		t.Errorf("Outside (-want, +got)\n%s", diff)
	}

	// Stopping early does not panic.
	for i := range scan.Outside(input) {
		if i > 0 {
			break
		}
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		input            string
		braces, brackets int
	}{
		{``, 0, 0},
		{`{"a": [1, 2]}`, 0, 0},
		{`{"a": [1, 2`, 1, 1},
		{`{"a": "[{"`, 1, 0},
		{`]]}`, -1, -2},
		{`{"x\"}": [`, 1, 1},
	}
	for _, test := range tests {
		braces, brackets := scan.Balance(test.input)
		if braces != test.braces || brackets != test.brackets {
			t.Errorf("Balance(%#q): got (%d, %d), want (%d, %d)",
				test.input, braces, brackets, test.braces, test.brackets)
		}
	}
}

func TestKeyAt(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		end   int
		ok    bool
	}{
		{`"a": 1`, 0, 4, true},
		{`{"key"  :1}`, 1, 9, true},
		{"{\"k\"\n:1}", 1, 6, true},
		{`"a" 1`, 0, 0, false},
		{`"a"`, 0, 0, false},
		{`"a`, 0, 0, false},
		{`x"a":`, 0, 0, false}, // not at a string
		{`"a\":": 2`, 0, 7, true},
		{`["b", "c"]`, 1, 0, false},
		{`"a": 1`, 99, 0, false},
	}
	for _, test := range tests {
		end, ok := scan.KeyAt(test.input, scan.Classify(test.input), test.pos)
		if end != test.end || ok != test.ok {
			t.Errorf("KeyAt(%#q, %d): got (%d, %v), want (%d, %v)",
				test.input, test.pos, end, ok, test.end, test.ok)
		}
	}
}

func TestClassString(t *testing.T) {
	got := []string{
		scan.Code.String(), scan.Open.String(), scan.Close.String(),
		scan.Text.String(), scan.Escaped.String(), scan.Class(99).String(),
	}
	want := []string{"code", "open", "close", "text", "escaped", "invalid"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String (-want, +got)\n%s", diff)
	}
	if scan.Code.InString() || !scan.Open.InString() || !scan.Escaped.InString() {
		t.Error("InString reports the wrong result")
	}
}
