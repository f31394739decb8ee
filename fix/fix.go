// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package fix implements heuristic repairs for malformed JSON text.
//
// A repair is organized as a Pipeline of Stages. Each stage is a pure
// function from text to text that also reports what it changed. A pipeline
// runs each of its stages exactly once, in order, and collects a Record for
// every stage that changed the text. The pipeline does not iterate to a fixed
// point: text that still needs repair after one pass is returned as-is.
//
// The stages of the default pipeline are, in order:
//
//	Tag               | Repair
//	----------------- | ----------------------------------------------------
//	bom               | remove a leading byte-order mark
//	edges             | collapse duplicated outer brackets
//	smart-quotes      | replace typographic quotes with ASCII quotes
//	quotes            | rewrite 'single-quoted' strings with double quotes
//	comments          | remove /* block */ and // line comments
//	keys              | quote bare identifier keys, as in {a: 1}
//	values            | quote bare identifier values, as in {"a": b}
//	brackets          | balance braces and brackets
//	trailing-commas   | remove commas before } and ]
//	leading-commas    | remove commas after { and [
//	duplicate-commas  | collapse runs of commas
//	missing-commas    | insert a comma before a key that follows a value
//
// Each stage assumes the output of the stages before it. For example, key
// quoting expects comments to have been removed already.
//
// The structural stages use the string classification from package scan, and
// do not rewrite the contents of string literals.
package fix

import (
	"fmt"
	"slices"

	"github.com/creachadair/jfix/scan"
)

// A Tag names the category of a repair.
type Tag string

// Tags of the stages in the default pipeline.
const (
	BOM             Tag = "bom"
	Edges           Tag = "edges"
	SmartQuotes     Tag = "smart-quotes"
	Quotes          Tag = "quotes"
	Comments        Tag = "comments"
	Keys            Tag = "keys"
	Values          Tag = "values"
	Brackets        Tag = "brackets"
	TrailingCommas  Tag = "trailing-commas"
	LeadingCommas   Tag = "leading-commas"
	DuplicateCommas Tag = "duplicate-commas"
	MissingCommas   Tag = "missing-commas"
)

// A Record describes a repair applied to the text.
type Record struct {
	Tag         Tag    `json:"tag"`
	Description string `json:"description"`
}

func (r Record) String() string { return fmt.Sprintf("%s: %s", r.Tag, r.Description) }

// A Func rewrites text and returns the result along with a description of
// each repair it made. If it made no change it returns text and no
// descriptions.
type Func func(text string) (string, []string)

// A Stage is a single named step of a Pipeline.
type Stage struct {
	Tag Tag
	Run Func
}

// Simple returns a Func that runs f and, if f reports a change, describes it
// with desc.
func Simple(desc string, f func(string) (string, bool)) Func {
	return func(text string) (string, []string) {
		if out, ok := f(text); ok {
			return out, []string{desc}
		}
		return text, nil
	}
}

// A Result is the outcome of applying a Pipeline to some text.
type Result struct {
	Text  string   // the repaired text
	Fixes []Record // the repairs applied, in pipeline order
}

// Changed reports whether any stage modified the text.
func (r Result) Changed() bool { return len(r.Fixes) != 0 }

// Descriptions returns the descriptions of r.Fixes in order.
func (r Result) Descriptions() []string {
	if len(r.Fixes) == 0 {
		return nil
	}
	out := make([]string, len(r.Fixes))
	for i, f := range r.Fixes {
		out[i] = f.Description
	}
	return out
}

// A Pipeline is an ordered sequence of repair stages. A Pipeline is not
// modified after construction and is safe for concurrent use.
type Pipeline struct {
	stages []Stage
}

// NewPipeline constructs a pipeline that runs the given stages in order.
// It panics if a stage has no function, or if two stages share a tag.
func NewPipeline(stages ...Stage) *Pipeline {
	seen := make(map[Tag]bool)
	for _, s := range stages {
		if s.Run == nil {
			panic(fmt.Sprintf("fix: stage %q has no function", s.Tag))
		} else if seen[s.Tag] {
			panic(fmt.Sprintf("fix: duplicate stage tag %q", s.Tag))
		}
		seen[s.Tag] = true
	}
	return &Pipeline{stages: slices.Clone(stages)}
}

// Tags returns the tags of the stages of p in execution order.
func (p *Pipeline) Tags() []Tag {
	tags := make([]Tag, len(p.stages))
	for i, s := range p.stages {
		tags[i] = s.Tag
	}
	return tags
}

// Stage returns the stage of p with the given tag, if any.
func (p *Pipeline) Stage(tag Tag) (Stage, bool) {
	for _, s := range p.stages {
		if s.Tag == tag {
			return s, true
		}
	}
	return Stage{}, false
}

// Apply runs each stage of p once, in order, over text.
func (p *Pipeline) Apply(text string) Result {
	res := Result{Text: text}
	for _, s := range p.stages {
		out, descs := s.Run(res.Text)
		for _, d := range descs {
			res.Fixes = append(res.Fixes, Record{Tag: s.Tag, Description: d})
		}
		res.Text = out
	}
	return res
}

// Default returns a new pipeline with the standard stages, in order.
func Default() *Pipeline {
	return NewPipeline(
		Stage{BOM, Simple("byte order mark", StripBOM)},
		Stage{Edges, Simple("duplicate outer brackets", DedupeEdges)},
		Stage{SmartQuotes, Simple("smart quotes", NormalizeSmartQuotes)},
		Stage{Quotes, Simple("single quotes to double quotes", UnifyQuotes)},
		Stage{Comments, Simple("comments", StripComments)},
		Stage{Keys, Simple("unquoted property names", QuoteKeys)},
		Stage{Values, Simple("unquoted string values", QuoteValues)},
		Stage{Brackets, Balance},
		Stage{TrailingCommas, Simple("trailing commas", RemoveTrailingCommas)},
		Stage{LeadingCommas, Simple("leading commas", RemoveLeadingCommas)},
		Stage{DuplicateCommas, Simple("duplicate commas", CollapseCommas)},
		Stage{MissingCommas, Simple("missing commas between properties", InsertMissingCommas)},
	)
}

// std is the default pipeline used by Repair. It is never modified.
var std = Default()

// Repair applies the default pipeline to text.
func Repair(text string) Result { return std.Apply(text) }

// isWordByte reports whether b can appear in a bare identifier.
func isWordByte(b byte) bool {
	return b == '_' || b == '$' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// isWordStart reports whether b can begin a bare identifier.
func isWordStart(b byte) bool { return isWordByte(b) && !('0' <= b && b <= '9') }

// identEnd returns the offset just past the identifier beginning at offset i
// of text, or i if there is none.
func identEnd(text string, i int) int {
	if i >= len(text) || !isWordStart(text[i]) {
		return i
	}
	j := i + 1
	for j < len(text) && isWordByte(text[j]) {
		j++
	}
	return j
}

// skipSpace returns the offset of the first non-whitespace byte of text at or
// after offset i.
func skipSpace(text string, i int) int {
	for i < len(text) && scan.IsSpace(text[i]) {
		i++
	}
	return i
}
