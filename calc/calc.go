// Package calc parses and evaluates arithmetic expressions such as
// "1 + (2 + 3) * 4 ^ 2". Every node of the parsed tree records its span in
// the input.
package calc

import (
	"fmt"

	"github.com/dhamidi/combo/parse"
)

// Expr parses an expression, leaving any trailing input.
var Expr = newGrammar()

var (
	digits   = parse.Text(parse.AtLeastOnce(parse.CharFunc(isDigit, "digit")))
	fraction = parse.Seq2(parse.Char('.'), digits, func(dot rune, ds string) string {
		return string(dot) + ds
	})
	integral = parse.Then(digits, func(i string) parse.Parser[string] {
		return parse.Select(parse.XOr(fraction, parse.Return("")), func(f string) string {
			return i + f
		})
	})

	// decimal accepts ASCII digits only: strconv has no use for the other
	// numeric runes parse.Number would let through.
	decimal = parse.XOr(integral, fraction)
)

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func newGrammar() parse.Parser[Node] {
	var expr parse.Parser[Node]

	number := parse.Positioned(parse.Then(
		parse.Token(parse.Named(decimal, "number")), newLiteral))
	group := parse.Contained(
		parse.Ref(func() parse.Parser[Node] { return expr }),
		parse.Token(parse.Char('(')),
		parse.Token(parse.Char(')')))
	primary := parse.Or(number, group)

	power := parse.Positioned(parse.XChainRightOperator(parse.Token(parse.Char('^')), primary, newBinary))
	term := parse.Positioned(parse.XChainOperator(parse.Token(parse.Chars("*/")), power, newBinary))
	expr = parse.Positioned(parse.XChainOperator(parse.Token(parse.Chars("+-")), term, newBinary))
	return expr
}

// Parse parses all of input as one expression.
func Parse(input string) (Node, error) {
	return ParseFile("", input)
}

// ParseFile is like Parse but reports positions relative to file.
func ParseFile(file, input string) (Node, error) {
	return parse.Run(parse.End(Expr), parse.NewFileCursor(file, input))
}

// Eval parses input and computes its value.
func Eval(input string) (float64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("parse expression: %w", err)
	}
	return n.Eval()
}
