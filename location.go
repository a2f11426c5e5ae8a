package jgen

import (
	"bytes"
	"fmt"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate reports the line and column of offset pos in input.
func locate(input []byte, pos int) LineCol {
	pos = min(pos, len(input))
	head := input[:pos]
	line := bytes.Count(head, []byte("\n"))
	col := pos
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = pos - i - 1
	}
	return LineCol{Line: line + 1, Column: col}
}
