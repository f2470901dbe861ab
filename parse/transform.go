package parse

import "fmt"

// Select maps the value of a successful match through f.
func Select[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Cursor) Result[U] {
		r := p(in)
		if !r.Ok() {
			return Fail[U](r.fail)
		}
		return Success(f(r.value), r.rest)
	}
}

// Where succeeds only when pred holds for the value p produced. A rejected
// value fails at the position after the match.
func Where[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return func(in Cursor) Result[T] {
		r := p(in)
		if !r.Ok() || pred(r.value) {
			return r
		}
		return Fail[T](&Failure{
			At:         r.rest,
			Unexpected: fmt.Sprintf("unexpected %v", r.value),
			Consumed:   r.rest.offset > in.offset,
		})
	}
}

// Then runs p and continues with the parser next builds from its value.
func Then[T, U any](p Parser[T], next func(T) Parser[U]) Parser[U] {
	return func(in Cursor) Result[U] {
		r := p(in)
		if !r.Ok() {
			return Fail[U](r.fail)
		}
		s := next(r.value)(r.rest)
		if !s.Ok() {
			return Fail[U](s.fail.since(in))
		}
		return s
	}
}

// Seq2 runs a then b and combines their values with f.
func Seq2[A, B, R any](a Parser[A], b Parser[B], f func(A, B) R) Parser[R] {
	return func(in Cursor) Result[R] {
		ra := a(in)
		if !ra.Ok() {
			return Fail[R](ra.fail)
		}
		rb := b(ra.rest)
		if !rb.Ok() {
			return Fail[R](rb.fail.since(in))
		}
		return Success(f(ra.value, rb.value), rb.rest)
	}
}

// Seq3 runs a, b and c in order and combines their values with f.
func Seq3[A, B, C, R any](a Parser[A], b Parser[B], c Parser[C], f func(A, B, C) R) Parser[R] {
	return func(in Cursor) Result[R] {
		ra := a(in)
		if !ra.Ok() {
			return Fail[R](ra.fail)
		}
		rb := b(ra.rest)
		if !rb.Ok() {
			return Fail[R](rb.fail.since(in))
		}
		rc := c(rb.rest)
		if !rc.Ok() {
			return Fail[R](rc.fail.since(in))
		}
		return Success(f(ra.value, rb.value, rc.value), rc.rest)
	}
}

// Left runs a then b and keeps the value of a.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Seq2(a, b, func(v A, _ B) A { return v })
}

// Right runs a then b and keeps the value of b.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Seq2(a, b, func(_ A, v B) B { return v })
}
