package parse

import "strings"

// Failure describes why a parser did not match.
//
// Consumed reports whether the attempt advanced past its starting cursor
// before failing. The exclusive combinators (XOr, XMany, ...) refuse to
// backtrack over such a failure. A Failure is never modified once created.
type Failure struct {
	At       Cursor
	Expected []string
	// Unexpected replaces the default "unexpected <input>" lead of the
	// message when set.
	Unexpected string
	Consumed   bool
}

func (f *Failure) Position() Position {
	return f.At.Position()
}

// String renders "unexpected 'x'; expected a or b".
func (f *Failure) String() string {
	msg := f.Unexpected
	if msg == "" {
		msg = "unexpected " + f.At.describe()
	}
	if len(f.Expected) > 0 {
		msg += "; expected " + strings.Join(f.Expected, " or ")
	}
	return msg
}

// since reports the failure as consumed when it happened past start. Used by
// sequencing combinators, whose later stages start after earlier ones have
// already advanced.
func (f *Failure) since(start Cursor) *Failure {
	if f.Consumed || f.At.offset <= start.offset {
		return f
	}
	g := *f
	g.Consumed = true
	return &g
}

func (f *Failure) expecting(expected ...string) *Failure {
	g := *f
	g.Expected = expected
	return &g
}

// furthest picks the failure that got further into the input. On a tie the
// expectations of both are merged, keeping order and dropping duplicates.
func furthest(a, b *Failure) *Failure {
	switch {
	case a.At.offset > b.At.offset:
		return a
	case b.At.offset > a.At.offset:
		return b
	}
	merged := &Failure{
		At:         a.At,
		Unexpected: a.Unexpected,
		Consumed:   a.Consumed || b.Consumed,
	}
	if merged.Unexpected == "" {
		merged.Unexpected = b.Unexpected
	}
	seen := make(map[string]bool, len(a.Expected)+len(b.Expected))
	for _, list := range [][]string{a.Expected, b.Expected} {
		for _, e := range list {
			if !seen[e] {
				seen[e] = true
				merged.Expected = append(merged.Expected, e)
			}
		}
	}
	return merged
}

// Result is the outcome of running a parser: either a value together with
// the cursor after it, or a Failure.
type Result[T any] struct {
	value T
	rest  Cursor
	fail  *Failure
}

func Success[T any](value T, rest Cursor) Result[T] {
	return Result[T]{value: value, rest: rest}
}

func Fail[T any](f *Failure) Result[T] {
	return Result[T]{fail: f, rest: f.At}
}

func (r Result[T]) Ok() bool {
	return r.fail == nil
}

func (r Result[T]) Value() T {
	return r.value
}

// Remainder is the cursor after the match, or the failure position.
func (r Result[T]) Remainder() Cursor {
	return r.rest
}

// Failure returns nil for a successful result.
func (r Result[T]) Failure() *Failure {
	return r.fail
}
