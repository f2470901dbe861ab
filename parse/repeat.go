package parse

import (
	"fmt"
	"strings"
)

// Unbounded as the maximum of Repeat allows any number of matches.
const Unbounded = -1

// Many matches p zero or more times. It never fails: the first failure of p
// ends the repetition and the cursor stays where the last match ended. A
// match that consumes nothing also ends it.
func Many[T any](p Parser[T]) Parser[[]T] {
	return many(p, false)
}

// XMany is like Many but fails when p fails after consuming input.
func XMany[T any](p Parser[T]) Parser[[]T] {
	return many(p, true)
}

func many[T any](p Parser[T], exclusive bool) Parser[[]T] {
	return func(in Cursor) Result[[]T] {
		return repeatFrom(p, in, nil, exclusive)
	}
}

func repeatFrom[T any](p Parser[T], in Cursor, values []T, exclusive bool) Result[[]T] {
	rest := in
	for {
		r := p(rest)
		if !r.Ok() {
			if exclusive && r.fail.Consumed {
				return Fail[[]T](r.fail)
			}
			break
		}
		if r.rest.offset == rest.offset {
			break
		}
		values = append(values, r.value)
		rest = r.rest
	}
	if values == nil {
		values = []T{}
	}
	return Success(values, rest)
}

// AtLeastOnce matches p one or more times.
func AtLeastOnce[T any](p Parser[T]) Parser[[]T] {
	return atLeastOnce(p, false)
}

// XAtLeastOnce is like AtLeastOnce but, after the first match, fails when p
// fails after consuming input.
func XAtLeastOnce[T any](p Parser[T]) Parser[[]T] {
	return atLeastOnce(p, true)
}

func atLeastOnce[T any](p Parser[T], exclusive bool) Parser[[]T] {
	return func(in Cursor) Result[[]T] {
		first := p(in)
		if !first.Ok() {
			return Fail[[]T](first.fail)
		}
		tail := repeatFrom(p, first.rest, []T{first.value}, exclusive)
		if !tail.Ok() {
			return Fail[[]T](tail.fail.since(in))
		}
		return tail
	}
}

// Once wraps the value of p in a one-element slice.
func Once[T any](p Parser[T]) Parser[[]T] {
	return Select(p, func(v T) []T { return []T{v} })
}

// RepeatN matches p exactly n times.
func RepeatN[T any](p Parser[T], n int) Parser[[]T] {
	return Repeat(p, n, n)
}

// Repeat matches p at least min and at most max times. It stops trying once
// max matches have been made. Pass Unbounded as max for no upper limit.
// Repeat panics if min is negative or max is below min.
func Repeat[T any](p Parser[T], min, max int) Parser[[]T] {
	if min < 0 {
		panic(fmt.Sprintf("parse: Repeat called with negative minimum %d", min))
	}
	if max != Unbounded && (max < 0 || max < min) {
		panic(fmt.Sprintf("parse: Repeat called with maximum %d below minimum %d", max, min))
	}
	return func(in Cursor) Result[[]T] {
		values := []T{}
		rest := in
		for max == Unbounded || len(values) < max {
			r := p(rest)
			if !r.Ok() {
				if len(values) < min {
					return Fail[[]T](shortfall(in, r.fail, min, max, len(values)))
				}
				break
			}
			values = append(values, r.value)
			if r.rest.offset == rest.offset && len(values) >= min {
				break
			}
			rest = r.rest
		}
		return Success(values, rest)
	}
}

func shortfall(start Cursor, f *Failure, min, max, found int) *Failure {
	what := "'" + strings.Join(f.Expected, ", ") + "'"
	var expected string
	switch {
	case min == max:
		expected = fmt.Sprintf("%s %d times, but found %d", what, min, found)
	case max == Unbounded:
		expected = fmt.Sprintf("%s at least %d times, but found %d", what, min, found)
	default:
		expected = fmt.Sprintf("%s between %d and %d times, but found %d", what, min, max, found)
	}
	return &Failure{
		At:       f.At,
		Expected: []string{expected},
		Consumed: f.At.offset > start.offset,
	}
}

// Until matches p repeatedly for as long as terminator does not match. The
// terminator must eventually match; it is left for the caller to consume.
func Until[T, U any](p Parser[T], terminator Parser[U]) Parser[[]T] {
	return func(in Cursor) Result[[]T] {
		values := []T{}
		rest := in
		for {
			t := terminator(rest)
			if t.Ok() {
				return Success(values, rest)
			}
			r := p(rest)
			if !r.Ok() {
				return Fail[[]T](furthest(t.fail, r.fail).since(in))
			}
			if r.rest.offset == rest.offset {
				return Fail[[]T](t.fail.since(in))
			}
			values = append(values, r.value)
			rest = r.rest
		}
	}
}

// DelimitedBy matches one or more p separated by delimiter. A trailing
// delimiter is not consumed.
func DelimitedBy[T, U any](p Parser[T], delimiter Parser[U]) Parser[[]T] {
	return delimitedBy(p, delimiter, false)
}

// XDelimitedBy is like DelimitedBy but fails when a delimiter is not
// followed by an item, or when an item fails after consuming input.
func XDelimitedBy[T, U any](p Parser[T], delimiter Parser[U]) Parser[[]T] {
	return delimitedBy(p, delimiter, true)
}

func delimitedBy[T, U any](p Parser[T], delimiter Parser[U], exclusive bool) Parser[[]T] {
	item := Right(delimiter, p)
	return func(in Cursor) Result[[]T] {
		head := p(in)
		if !head.Ok() {
			return Fail[[]T](head.fail)
		}
		tail := repeatFrom(item, head.rest, []T{head.value}, exclusive)
		if !tail.Ok() {
			return Fail[[]T](tail.fail.since(in))
		}
		return tail
	}
}
