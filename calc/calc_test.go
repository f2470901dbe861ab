package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/combo/parse"
)

func TestPositions(t *testing.T) {
	root, err := Parse("12 + \n345")
	if err != nil {
		t.Fatal(err)
	}
	bin, ok := root.(*Binary)
	if !ok {
		t.Fatalf("root is %T, want *Binary", root)
	}

	tests := []struct {
		name   string
		node   Node
		start  parse.Position
		length int
	}{
		{"root", bin, parse.Position{Offset: 0, Line: 1, Column: 1}, 9},
		{"left", bin.Left, parse.Position{Offset: 0, Line: 1, Column: 1}, 3},
		{"right", bin.Right, parse.Position{Offset: 6, Line: 2, Column: 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Start(); got != tt.start {
				t.Errorf("Start() = %+v, want %+v", got, tt.start)
			}
			if got := tt.node.Length(); got != tt.length {
				t.Errorf("Length() = %d, want %d", got, tt.length)
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1+(2+3)*4+5", 26},
		{"2 * 3 + 4", 10},
		{"10 - 4 - 3", 3},
		{"7 / 2", 3.5},
		{"2 ^ 3 ^ 2", 512},
		{" 1.5 * 2 ", 3},
		{"((4))", 4},
		{".5 + .5", 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	n, err := Parse("1+(2+3)*4+5")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.String(), "((1 + ((2 + 3) * 4)) + 5)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := Eval("1 + 4 / (2 - 2)")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("error = %v, want ErrDivisionByZero", err)
	}
	if !strings.HasPrefix(err.Error(), "1:5: ") {
		t.Errorf("error = %q, want it to start at the division", err.Error())
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 +", "1:4: unexpected end of input; expected number or ("},
		{"(1 + 2", "1:7: unexpected end of input; expected )"},
		{"1 2", "1:3: unexpected '2'; expected end of input"},
		{"½", "1:1: unexpected '½'; expected number or ("},
		{"٣ + 1", "1:1: unexpected '٣'; expected number or ("},
		{"1 + ²", "1:5: unexpected '²'; expected number or ("},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			var perr *parse.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *parse.Error", err)
			}
			if perr.Error() != tt.want {
				t.Errorf("got %q, want %q", perr.Error(), tt.want)
			}
		})
	}
}

func TestNumberOutOfRange(t *testing.T) {
	_, err := Eval("2 * 1" + strings.Repeat("0", 400))
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *parse.Error", err)
	}
	if !strings.Contains(perr.Error(), "out of range") {
		t.Errorf("got %q, want an out of range error", perr.Error())
	}
}

func TestParseFile(t *testing.T) {
	_, err := ParseFile("expr.txt", "1 +\n")
	if err == nil || !strings.HasPrefix(err.Error(), "expr.txt:2:1: ") {
		t.Errorf("error = %v, want a position in expr.txt", err)
	}
}
