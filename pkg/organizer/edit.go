package organizer

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) of a document
type Span struct {
	Start int
	End   int
}

// Position is a zero-based line and UTF-16 character offset, the way editors address text
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// EditKind tells the two outcomes of an organize call apart
type EditKind int

const (
	NoChangeEdit EditKind = iota
	ReplaceEdit
)

// EditResult is either "no change" or a single replacement of Span by NewText
type EditResult struct {
	Kind          EditKind
	Span          Span
	NewText       string
	StartPosition Position
	EndPosition   Position
}

// NoChange is the result of an invocation that leaves the document as is
func NoChange() EditResult {
	return EditResult{Kind: NoChangeEdit}
}

// Replace builds a replacement of span in text by newText
func Replace(text string, span Span, newText string) EditResult {
	return EditResult{
		Kind:          ReplaceEdit,
		Span:          span,
		NewText:       newText,
		StartPosition: PositionAt(text, span.Start),
		EndPosition:   PositionAt(text, span.End),
	}
}

// Changed reports whether the result carries a replacement
func (r EditResult) Changed() bool {
	return r.Kind == ReplaceEdit
}

// Apply substitutes the replacement into text. Text must be the snapshot the result was computed from.
func (r EditResult) Apply(text string) string {
	if !r.Changed() {
		return text
	}
	return text[:r.Span.Start] + r.NewText + text[r.Span.End:]
}

// Shift moves a result computed for a fragment starting at offset delta of text into text's coordinates
func (r EditResult) Shift(delta int, text string) EditResult {
	if !r.Changed() {
		return r
	}
	return Replace(text, Span{Start: r.Span.Start + delta, End: r.Span.End + delta}, r.NewText)
}

func (r EditResult) String() string {
	if !r.Changed() {
		return "no change"
	}
	return fmt.Sprintf("replace [%d, %d) with %d bytes", r.Span.Start, r.Span.End, len(r.NewText))
}

// PositionAt converts a byte offset of text into a line/character position
func PositionAt(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	var pos Position
	for _, r := range text[:offset] {
		if r == '\n' {
			pos.Line++
			pos.Character = 0
			continue
		}
		pos.Character += utf16Len(string(r))
	}
	return pos
}
