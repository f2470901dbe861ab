package parse

// String matches s rune by rune. When a prefix of s matches and a later
// rune does not, the failure is reported at the mismatching rune and is
// marked as consumed, so an exclusive alternative above commits to it.
func String(s string) Parser[[]rune] {
	return literal(s, func(want, got rune) bool { return want == got })
}

// IgnoreCase matches s regardless of case and returns the runes as they
// appear in the input.
func IgnoreCase(s string) Parser[[]rune] {
	return literal(s, func(want, got rune) bool {
		return want == got || fold(string(want)) == fold(string(got))
	})
}

func literal(s string, eq func(want, got rune) bool) Parser[[]rune] {
	want := []rune(s)
	return func(in Cursor) Result[[]rune] {
		cur := in
		for i, w := range want {
			if cur.AtEnd() || !eq(w, cur.Current()) {
				if i == 0 {
					return Fail[[]rune](&Failure{At: in, Expected: []string{s}})
				}
				return Fail[[]rune](&Failure{At: cur, Expected: []string{string(w)}, Consumed: true})
			}
			cur = cur.Advance()
		}
		return Success(in.between(cur), cur)
	}
}

// Text turns a parser of runes into a parser of the string they spell.
func Text(p Parser[[]rune]) Parser[string] {
	return Select(p, func(rs []rune) string { return string(rs) })
}

// Concat runs first then second and joins their results.
func Concat[T any](first, second Parser[[]T]) Parser[[]T] {
	return Seq2(first, second, func(a, b []T) []T {
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	})
}

// Token matches p surrounded by any amount of whitespace.
func Token[T any](p Parser[T]) Parser[T] {
	return Seq3(Many(WhiteSpace), p, Many(WhiteSpace), func(_ []rune, v T, _ []rune) T {
		return v
	})
}

// Contained matches p between open and close.
func Contained[T, O, C any](p Parser[T], open Parser[O], close Parser[C]) Parser[T] {
	return Seq3(open, p, close, func(_ O, v T, _ C) T { return v })
}

// Identifier matches first followed by any number of tail runes.
func Identifier(first, tail Parser[rune]) Parser[string] {
	return Text(Concat(Once(first), Many(tail)))
}

var (
	// Number matches one or more numeric characters.
	Number = Text(AtLeastOnce(Numeric))

	lineFeed = CharFunc(func(r rune) bool { return r == '\n' }, "line feed")

	// LineEnd matches "\n" or "\r\n".
	LineEnd = Or(
		Seq2(CharFunc(func(r rune) bool { return r == '\r' }, "carriage return"), lineFeed,
			func(rune, rune) string { return "\r\n" }),
		ReturnAs(lineFeed, "\n"),
	)

	// LineTerminator matches a line end, or the empty string at end of input.
	LineTerminator = Named(Or(End(Return("")), LineEnd), "line terminator")
)
