// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package fix_test

import (
	"testing"

	"github.com/creachadair/jfix/fix"
	"github.com/creachadair/jfix/internal/testutil"
)

type stageCase struct {
	input, want string
	changed     bool
}

func TestStages(t *testing.T) {
	tests := []struct {
		name  string
		run   func(string) (string, bool)
		cases []stageCase
	}{
		{"StripBOM", fix.StripBOM, []stageCase{
			{"\xef\xbb\xbf{}", `{}`, true},
			{"\xef\xbb\xbf\xef\xbb\xbf[]", `[]`, true},
			{`{}`, `{}`, false},
			{"[\"\xef\xbb\xbf\"]", "[\"\xef\xbb\xbf\"]", false},
			{" \xef\xbb\xbf1", " \xef\xbb\xbf1", false},
		}},
		{"DedupeEdges", fix.DedupeEdges, []stageCase{
			{`{{"a":1}`, `{"a":1}`, true},
			{`[[1],[2]]`, `[[1],[2]]`, false},
			{`{"a":1}}`, `{"a":1}`, true},
			{`[[[1]`, `[1]`, true},
			{`  {{"a": 1}  `, `  {"a": 1}  `, true},
			{`{"a": "}}"`, `{"a": "}}"`, false},
			{`{"a": "x}}`, `{"a": "x}}`, false},
			{`{}}`, `{}`, true},
			{`[[1]]]`, `[[1]]`, true},
			{`[[1]]`, `[[1]]`, false},
			{``, ``, false},
			{`{{"a": 1}}`, `{"a": 1}`, true},
			{`{{}}`, `{}`, true},
			{`{{"a": {"b": 1}}}`, `{"a": {"b": 1}}`, true},
			{` {{{"a": [1]}}} `, ` {"a": [1]} `, true},
			{`{{"a": 1, }}`, `{"a": 1, }`, true},
			{`{"a": {"b": 1}}`, `{"a": {"b": 1}}`, false},
			{`{{}}}`, `{}`, true},
		}},
		{"NormalizeSmartQuotes", fix.NormalizeSmartQuotes, []stageCase{
			{"\xe2\x80\x9cx\xe2\x80\x9d", `"x"`, true},
			{"\xe2\x80\x98y\xe2\x80\x99", `'y'`, true},
			{`plain`, `plain`, false},
			{"{\xe2\x80\x9ca\xe2\x80\x9d: \xe2\x80\x98b\xe2\x80\x99}", `{"a": 'b'}`, true},
		}},
		{"UnifyQuotes", fix.UnifyQuotes, []stageCase{
			{`{'a': 'b'}`, `{"a": "b"}`, true},
			{`['it\'s']`, `["it's"]`, true},
			{`['say "hi"']`, `["say \"hi\""]`, true},
			{`{"it's": 'x'}`, `{"it's": "x"}`, true},
			{`["a\"'b'"]`, `["a\"'b'"]`, false},
			{`'unterminated`, `'unterminated`, false},
			{`['a\\']`, `["a\\"]`, true},
			{`no quotes`, `no quotes`, false},
			{`['a', "b", 'c']`, `["a", "b", "c"]`, true},
		}},
		{"StripComments", fix.StripComments, []stageCase{
			{`[1, /* two */ 2]`, `[1,  2]`, true},
			{"[1, // x\n2]", "[1, \n2]", true},
			{`["//", "/*"]`, `["//", "/*"]`, false},
			{`[1] // end`, `[1] `, true},
			{`[1 /* open`, `[1 /* open`, false},
			{`/* a */ /* b */{}`, ` {}`, true},
			{`["a\"//b"]`, `["a\"//b"]`, false},
			{`{"a": 1} /* x */ // y`, `{"a": 1}  `, true},
		}},
		{"QuoteKeys", fix.QuoteKeys, []stageCase{
			{`{a: 1}`, `{"a": 1}`, true},
			{`{ $x_1 : 1, _y:2}`, `{ "$x_1": 1, "_y":2}`, true},
			{`{"a": 1}`, `{"a": 1}`, false},
			{`{1a: 2}`, `{1a: 2}`, false},
			{`["{a: 1}"]`, `["{a: 1}"]`, false},
			{`{a.b: 1}`, `{a.b: 1}`, false},
			{`[a, b]`, `[a, b]`, false},
			{`{a: {b: [1]}, c:3}`, `{"a": {"b": [1]}, "c":3}`, true},
		}},
		{"QuoteValues", fix.QuoteValues, []stageCase{
			{`{"a": b}`, `{"a": "b"}`, true},
			{`{"a": true, "b": null, "c": undefined}`, `{"a": true, "b": null, "c": undefined}`, false},
			{`[x, y.z, 1]`, `["x", "y.z", 1]`, true},
			{`{"a": b c}`, `{"a": b c}`, false},
			{`{"a": -x}`, `{"a": -x}`, false},
			{`{"a": [b]}`, `{"a": ["b"]}`, true},
			{`{"k": {"n": v}}`, `{"k": {"n": "v"}}`, true},
			{`{"a": x.}`, `{"a": x.}`, false},
			{`{"a": 1, b}`, `{"a": 1, b}`, false},
			{`{"a": "b: c,"}`, `{"a": "b: c,"}`, false},
			{`[[a], b]`, `[["a"], "b"]`, true},
		}},
		{"RemoveTrailingCommas", fix.RemoveTrailingCommas, []stageCase{
			{`[1, 2, ]`, `[1, 2 ]`, true},
			{`{"a": 1,}`, `{"a": 1}`, true},
			{`[1,,]`, `[1]`, true},
			{`[",]"]`, `[",]"]`, false},
			{`[1, 2]`, `[1, 2]`, false},
			{`[1,`, `[1,`, false},
			{"{\"a\": [1,],\n}", "{\"a\": [1]\n}", true},
		}},
		{"RemoveLeadingCommas", fix.RemoveLeadingCommas, []stageCase{
			{`[,1]`, `[1]`, true},
			{`{ , "a": 1}`, `{  "a": 1}`, true},
			{`[1, 2]`, `[1, 2]`, false},
			{`[",", 1]`, `[",", 1]`, false},
			{`[ , , 1]`, `[   1]`, true},
			{`{"a": [,2]}`, `{"a": [2]}`, true},
		}},
		{"CollapseCommas", fix.CollapseCommas, []stageCase{
			{`[1,,2]`, `[1,2]`, true},
			{`[1, ,2]`, `[1, 2]`, true},
			{`[",,"]`, `[",,"]`, false},
			{`[1,2]`, `[1,2]`, false},
			{`[1,,,,2]`, `[1,2]`, true},
		}},
		{"InsertMissingCommas", fix.InsertMissingCommas, []stageCase{
			{`{"a": 1 "b": 2}`, `{"a": 1,"b": 2}`, true},
			{`{"a": "x" "b": 2}`, `{"a": "x","b": 2}`, true},
			{`{"a": {} "b": []}`, `{"a": {},"b": []}`, true},
			{`{"a": true "b": 1}`, `{"a": true,"b": 1}`, true},
			{"{\"a\": 1\n\"b\": 2}", "{\"a\": 1,\n\"b\": 2}", true},
			{`["a" "b"]`, `["a" "b"]`, false},
			{`{"a": 1, "b": 2}`, `{"a": 1, "b": 2}`, false},
			{`{"a":1}`, `{"a":1}`, false},
			{"{\"a\": 1\n  \n  \"b\": 2 \"c\": 3}", "{\"a\": 1,\n  \n  \"b\": 2,\"c\": 3}", true},
		}},

	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, tc := range test.cases {
				got, changed := test.run(tc.input)
				if got != tc.want || changed != tc.changed {
					t.Errorf("Input: %#q\n got %#q, %v\nwant %#q, %v", tc.input, got, changed, tc.want, tc.changed)
				}
				if changed && got == tc.input {
					t.Errorf("Input: %#q: reported a change but the text is the same", tc.input)
				}

				// Each stage is idempotent.
				again, changed := test.run(got)
				if again != got || changed {
					t.Errorf("Input: %#q: second run gave %#q, %v", got, again, changed)
				}
			}
		})
	}
}

// inputs returns a variety of malformed and valid documents.
func inputs() []string {
	in := []string{
		"",
		"{{[[",
		"]]}}",
		"'a' 'b",
		`{"a\\": 'b\\', c: d.e, /* x */ "f": [g,,h,]}`,
		"\xef\xbb\xbf{\xe2\x80\x9ckey\xe2\x80\x9d: \xe2\x80\x98v\xe2\x80\x99}",
		"{\"a\": 1\n\"b\": \"unterminated\\",
		`[1, {"a": [2, {"b": "x"`,
	}
	for _, tc := range testutil.Repairable {
		in = append(in, tc.Input, tc.Text)
	}
	for _, tc := range testutil.Unrepairable {
		in = append(in, tc.Input)
	}
	return append(in, testutil.Valid...)
}

func TestStageIdempotence(t *testing.T) {
	p := fix.Default()
	for _, tag := range p.Tags() {
		stage, _ := p.Stage(tag)
		for _, input := range inputs() {
			once, _ := stage.Run(input)
			twice, descs := stage.Run(once)
			if twice != once || len(descs) != 0 {
				t.Errorf("Stage %q is not idempotent on %#q:\n once %#q\ntwice %#q %q", tag, input, once, twice, descs)
			}
		}
	}
}

func TestStagesPreserveValid(t *testing.T) {
	p := fix.Default()
	for _, input := range testutil.Valid {
		if res := p.Apply(input); res.Changed() || res.Text != input {
			t.Errorf("Apply(%#q): got %#q, fixes %v; want no change", input, res.Text, res.Fixes)
		}
	}
}
