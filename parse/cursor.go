package parse

import "fmt"

// Position is a location in the input. Offset counts runes from the start of
// the input; Line and Column are 1-based.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type source struct {
	file string
	text []rune
}

// Cursor is an immutable pointer into the input. Advancing a cursor returns
// a new cursor; the receiver is never modified, so a cursor can be kept as a
// backtracking point for as long as needed.
type Cursor struct {
	src    *source
	offset int
	line   int
	column int
}

// NewCursor returns a cursor at the start of text.
func NewCursor(text string) Cursor {
	return NewFileCursor("", text)
}

// NewFileCursor returns a cursor at the start of text whose positions report
// file as their origin.
func NewFileCursor(file, text string) Cursor {
	return Cursor{
		src:    &source{file: file, text: []rune(text)},
		line:   1,
		column: 1,
	}
}

func (c Cursor) Position() Position {
	pos := Position{Offset: c.offset, Line: c.line, Column: c.column}
	if c.src != nil {
		pos.File = c.src.file
	}
	return pos
}

func (c Cursor) Offset() int {
	return c.offset
}

func (c Cursor) AtEnd() bool {
	return c.src == nil || c.offset >= len(c.src.text)
}

// Current returns the rune under the cursor, or 0 at end of input.
func (c Cursor) Current() rune {
	if c.AtEnd() {
		return 0
	}
	return c.src.text[c.offset]
}

// Advance moves past the current rune. A line feed starts a new line, so
// "\r\n" counts as a single line terminator.
func (c Cursor) Advance() Cursor {
	if c.AtEnd() {
		return c
	}
	next := c
	next.offset++
	if c.src.text[c.offset] == '\n' {
		next.line++
		next.column = 1
	} else {
		next.column++
	}
	return next
}

func (c Cursor) advanceN(n int) Cursor {
	for i := 0; i < n && !c.AtEnd(); i++ {
		c = c.Advance()
	}
	return c
}

// Remaining returns the unread part of the input.
func (c Cursor) Remaining() string {
	return string(c.rest())
}

func (c Cursor) rest() []rune {
	if c.AtEnd() {
		return nil
	}
	return c.src.text[c.offset:]
}

// between returns a copy of the runes from c up to end.
func (c Cursor) between(end Cursor) []rune {
	if c.src == nil || end.offset <= c.offset {
		return []rune{}
	}
	out := make([]rune, end.offset-c.offset)
	copy(out, c.src.text[c.offset:end.offset])
	return out
}

// describe renders the input under the cursor for error messages.
func (c Cursor) describe() string {
	if c.AtEnd() {
		return "end of input"
	}
	return fmt.Sprintf("%q", c.Current())
}

func (c Cursor) String() string {
	return c.Position().String()
}
