// Package testutil defines support code for unit tests.
package testutil

// A Case is a malformed document that the default repair pipeline fixes.
type Case struct {
	Name  string
	Input string

	// Text is the repaired text, or "" to skip checking it.
	Text string

	// Want is the compact encoding of the value parsed from the repaired text.
	Want string

	// Fixes are the descriptions of the repairs applied, in order.
	Fixes []string
}

// Repairable is a corpus of malformed documents and their repairs.
var Repairable = []Case{
	{
		Name:  "TrailingComma",
		Input: `{"a": 1, "b": 2,}`,
		Text:  `{"a": 1, "b": 2}`,
		Want:  `{"a":1,"b":2}`,
		Fixes: []string{"trailing commas"},
	},
	{
		Name:  "SingleQuotes",
		Input: `{'a': 'x'}`,
		Text:  `{"a": "x"}`,
		Want:  `{"a":"x"}`,
		Fixes: []string{"single quotes to double quotes"},
	},
	{
		Name:  "SingleQuotesNested",
		Input: `['it\'s', 'say "hi"']`,
		Text:  `["it's", "say \"hi\""]`,
		Want:  `["it's","say \"hi\""]`,
		Fixes: []string{"single quotes to double quotes"},
	},
	{
		Name:  "BareKey",
		Input: `{a: 1}`,
		Text:  `{"a": 1}`,
		Want:  `{"a":1}`,
		Fixes: []string{"unquoted property names"},
	},
	{
		Name:  "Truncated",
		Input: `{"a": [1,2,3`,
		Text:  `{"a": [1,2,3]}`,
		Want:  `{"a":[1,2,3]}`,
		Fixes: []string{"1 closing bracket ]", "1 closing brace }"},
	},
	{
		Name:  "MissingComma",
		Input: `{"a": 1 "b": 2}`,
		Text:  `{"a": 1,"b": 2}`,
		Want:  `{"a":1,"b":2}`,
		Fixes: []string{"missing commas between properties"},
	},
	{
		Name:  "MissingCommaLines",
		Input: "{\n  \"a\": 1\n  \"b\": [true]\n  \"c\": {}\n}",
		Text:  "{\n  \"a\": 1,\n  \"b\": [true],\n  \"c\": {}\n}",
		Want:  `{"a":1,"b":[true],"c":{}}`,
		Fixes: []string{"missing commas between properties"},
	},
	{
		Name:  "Comments",
		Input: "{\"a\": 1, // one\n \"b\": /* two */ 2}",
		Text:  "{\"a\": 1, \n \"b\":  2}",
		Want:  `{"a":1,"b":2}`,
		Fixes: []string{"comments"},
	},
	{
		Name:  "CommentMarkersInString",
		Input: "{\"url\": \"http://x/*y*/\", // note\n\"n\": 1}",
		Text:  "{\"url\": \"http://x/*y*/\", \n\"n\": 1}",
		Want:  `{"url":"http://x/*y*/","n":1}`,
		Fixes: []string{"comments"},
	},
	{
		Name:  "ByteOrderMark",
		Input: "\xef\xbb\xbf{\"a\": true}",
		Text:  `{"a": true}`,
		Want:  `{"a":true}`,
		Fixes: []string{"byte order mark"},
	},
	{
		Name:  "SmartQuotes",
		Input: "{\xe2\x80\x9ca\xe2\x80\x9d: \xe2\x80\x98b\xe2\x80\x99}",
		Text:  `{"a": "b"}`,
		Want:  `{"a":"b"}`,
		Fixes: []string{"smart quotes", "single quotes to double quotes"},
	},
	{
		Name:  "LeadingComma",
		Input: `[,1,2]`,
		Text:  `[1,2]`,
		Want:  `[1,2]`,
		Fixes: []string{"leading commas"},
	},
	{
		Name:  "DuplicateComma",
		Input: `[1,,2]`,
		Text:  `[1,2]`,
		Want:  `[1,2]`,
		Fixes: []string{"duplicate commas"},
	},
	{
		Name:  "BareValues",
		Input: `{"name": alice, "tags": [red, green.dark], "ok": true}`,
		Text:  `{"name": "alice", "tags": ["red", "green.dark"], "ok": true}`,
		Want:  `{"name":"alice","tags":["red","green.dark"],"ok":true}`,
		Fixes: []string{"unquoted string values"},
	},
	{
		Name:  "MissingOpenBrace",
		Input: `"a": 1}`,
		Text:  `{"a": 1}`,
		Want:  `{"a":1}`,
		Fixes: []string{"1 opening brace {"},
	},
	{
		Name:  "MissingOpenBracket",
		Input: `1, 2]`,
		Text:  `[1, 2]`,
		Want:  `[1,2]`,
		Fixes: []string{"1 opening bracket ["},
	},
	{
		Name:  "DoubledOpenBrace",
		Input: `{{"a": 1}`,
		Text:  `{"a": 1}`,
		Want:  `{"a":1}`,
		Fixes: []string{"duplicate outer brackets"},
	},
	{
		Name:  "DoubledBraces",
		Input: `{{"a": 1}}`,
		Text:  `{"a": 1}`,
		Want:  `{"a":1}`,
		Fixes: []string{"duplicate outer brackets"},
	},
	{
		Name:  "DoubledBracesBareKey",
		Input: `{{a: [1, 2,]}}`,
		Text:  `{"a": [1, 2]}`,
		Want:  `{"a":[1,2]}`,
		Fixes: []string{"duplicate outer brackets", "unquoted property names", "trailing commas"},
	},
	{
		Name:  "DoubledCloseBracket",
		Input: `[1, 2]]`,
		Text:  `[1, 2]`,
		Want:  `[1,2]`,
		Fixes: []string{"duplicate outer brackets"},
	},
	{
		Name:  "UnterminatedString",
		Input: `{"a": "hello`,
		Text:  `{"a": "hello"}`,
		Want:  `{"a":"hello"}`,
		Fixes: []string{"unterminated string", "1 closing brace }"},
	},
	{
		Name:  "DanglingComma",
		Input: "{\"a\": 1,\n",
		Text:  `{"a": 1}`,
		Want:  `{"a":1}`,
		Fixes: []string{"1 closing brace }"},
	},
	{
		Name:  "DeepTruncation",
		Input: `[{"a": [1, {"b": 2`,
		Text:  `[{"a": [1, {"b": 2}]}]`,
		Want:  `[{"a":[1,{"b":2}]}]`,
		Fixes: []string{"2 closing brackets ]", "2 closing braces }"},
	},
	{
		Name:  "Mixed",
		Input: "{name: 'Bob', age: 30, // years\n tags: ['x', 'y'],}",
		Text:  "{\"name\": \"Bob\", \"age\": 30, \n \"tags\": [\"x\", \"y\"]}",
		Want:  `{"name":"Bob","age":30,"tags":["x","y"]}`,
		Fixes: []string{
			"single quotes to double quotes",
			"comments",
			"unquoted property names",
			"trailing commas",
		},
	},
}

// A Broken is a malformed document that repair cannot fix.
type Broken struct {
	Input string
	Error string // the diagnostic from parsing the original input
}

// Unrepairable is a corpus of documents the default pipeline cannot fix.
var Unrepairable = []Broken{
	{`{"a": undefined}`, `at 1:6: unexpected 'u'`},
	{`[1 2]`, `at 1:3: expected "]" or ",", got integer`},
	{`nonsense`, `at 1:0: unknown constant "nonsense"`},
}

// Valid is a corpus of valid JSON documents.
var Valid = []string{
	`{}`,
	`[]`,
	`0`,
	`-1.5e+10`,
	`"x"`,
	`true`,
	`null`,
	` { "a" : [ 1 , 2.5e3 , -0 ] , "b" : { "c" : null } } `,
	`{"z": 1, "a": 2, "m": {"y": [], "b": {}}}`,
	`[true, false, "tab\tand \"quotes\"", "\u00e9"]`,
	"{\n  \"nested\": [[[[]]]],\n  \"s\": \"// not a comment /* nor this */\"\n}",
	`{"k": "it's", "n": [1, 2, 3,4]}`,
}
