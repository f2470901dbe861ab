// Package parse provides parser combinators: small typed parsing functions
// that compose into recursive-descent parsers over text.
//
// # Overview
//
// A Parser[T] is a function from a Cursor to a Result[T]. Leaves such as
// Char, String and Regex match a single unit of input; combinators such as
// Or, Many, Then and ChainOperator build larger parsers out of smaller ones.
// Running the root parser drives evaluation top-down:
//
//	number := parse.Select(parse.Token(parse.Number), atoi)
//	sum := parse.ChainOperator(parse.Token(parse.Char('+')), number,
//		func(_ rune, a, b int) int { return a + b })
//	total, err := sum.Parse("1 + 2 + 3")
//
// # Source Positions
//
// A Cursor is an immutable pointer into the input carrying a Position:
//
//	type Position struct {
//	    File   string // optional origin, see NewFileCursor
//	    Offset int    // runes from the start of the input
//	    Line   int    // 1-based
//	    Column int    // 1-based, in runes
//	}
//
// "\n" starts a new line; "\r\n" counts as one line terminator.
//
// # Failures and Backtracking
//
// A failed parse is a value, not a Go error. A Failure records where it
// happened, what was expected there and whether the attempt consumed input
// before failing. Two families of combinators read that last bit:
//
//   - Or, Many, AtLeastOnce, DelimitedBy, Optional and ChainOperator always
//     backtrack to where the attempt started.
//   - XOr, XMany, XAtLeastOnce, XDelimitedBy, XOptional, XChainOperator and
//     XChainRightOperator commit once a branch has consumed input: a later
//     mismatch in that branch is reported as is, instead of trying a sibling.
//
// When alternatives all fail, the failure that reached furthest into the
// input is kept; on a tie their expectations are merged. Only Parse,
// ParseAll and Run turn a failure into an *Error, whose message reads
//
//	1:2: unexpected 'a'; expected o
//
// # Positions on Values
//
// Positioned stamps values implementing PositionAware with their start
// position and length. Span wraps any value in a TextSpan instead.
//
// # Recursive Grammars
//
// Ref defers building a parser until it is first used, so rules can refer
// to each other in any order.
//
// Parsers keep no mutable state and may be shared between goroutines.
package parse
