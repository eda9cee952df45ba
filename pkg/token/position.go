package token

import "sort"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in bytes
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// LineIndex maps byte offsets of a source to line/column positions.
type LineIndex struct {
	starts []int // offset of the first byte of every line
	size   int
}

// NewLineIndex indexes the line starts of content.
func NewLineIndex(content []byte) *LineIndex {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(content)}
}

// Position returns the position of offset. Offsets outside the content are
// clamped to its bounds.
func (li *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > li.size {
		offset = li.size
	}
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return Position{
		Line:   line + 1,
		Column: offset - li.starts[line] + 1,
		Offset: offset,
	}
}

// Span returns the span covering [start, end).
func (li *LineIndex) Span(start, end int) Span {
	return Span{Start: li.Position(start), End: li.Position(end)}
}

// Lines returns the number of lines in the indexed content.
func (li *LineIndex) Lines() int {
	return len(li.starts)
}
