package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/combo/parse"
)

var ErrDivisionByZero = errors.New("division by zero")

// Node is an expression tree node that knows which part of the input it was
// parsed from.
type Node interface {
	SetPos(start parse.Position, length int) Node
	Start() parse.Position
	Length() int
	Eval() (float64, error)
	String() string
}

type span struct {
	start  parse.Position
	length int
}

func (s *span) Start() parse.Position { return s.start }
func (s *span) Length() int           { return s.length }

type Literal struct {
	span
	Value float64
	Text  string
}

// newLiteral fails for a number that does not fit in a float64.
func newLiteral(text string) parse.Parser[Node] {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return func(in parse.Cursor) parse.Result[Node] {
			return parse.Fail[Node](&parse.Failure{
				At:         in,
				Unexpected: fmt.Sprintf("number %s out of range", text),
			})
		}
	}
	return parse.Return[Node](&Literal{Value: v, Text: text})
}

func (l *Literal) SetPos(start parse.Position, length int) Node {
	l.start, l.length = start, length
	return l
}

func (l *Literal) Eval() (float64, error) { return l.Value, nil }

func (l *Literal) String() string { return l.Text }

// Binary applies Op to the values of Left and Right. Op is one of + - * / ^.
type Binary struct {
	span
	Op          rune
	Left, Right Node
}

func newBinary(op rune, left, right Node) Node {
	return &Binary{Op: op, Left: left, Right: right}
}

func (b *Binary) SetPos(start parse.Position, length int) Node {
	b.start, b.length = start, length
	return b
}

func (b *Binary) Eval() (float64, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, fmt.Errorf("%s: %w", b.start, ErrDivisionByZero)
		}
		return l / r, nil
	case '^':
		return math.Pow(l, r), nil
	}
	return 0, fmt.Errorf("%s: unknown operator %q", b.start, b.Op)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}
