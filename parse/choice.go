package parse

// Or tries each alternative at the same cursor and returns the first
// success. A failed alternative is always backtracked, however much input it
// read. When every alternative fails, the failure that got furthest wins.
func Or[T any](first, second Parser[T], more ...Parser[T]) Parser[T] {
	return choice(false, append([]Parser[T]{first, second}, more...))
}

// XOr is like Or, except that an alternative which fails after consuming
// input ends the choice with that failure instead of trying the next one.
func XOr[T any](first, second Parser[T], more ...Parser[T]) Parser[T] {
	return choice(true, append([]Parser[T]{first, second}, more...))
}

func choice[T any](exclusive bool, alternatives []Parser[T]) Parser[T] {
	return func(in Cursor) Result[T] {
		var best *Failure
		for _, p := range alternatives {
			r := p(in)
			if r.Ok() {
				return r
			}
			if exclusive && r.fail.Consumed {
				return r
			}
			if best == nil {
				best = r.fail
			} else {
				best = furthest(best, r.fail)
			}
		}
		return Fail[T](best)
	}
}

// Optional always succeeds. It returns Some value when p matches and None,
// without consuming input, when it does not.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return optional(p, false)
}

// XOptional is like Optional but fails when p fails after consuming input.
func XOptional[T any](p Parser[T]) Parser[Option[T]] {
	return optional(p, true)
}

func optional[T any](p Parser[T], exclusive bool) Parser[Option[T]] {
	return func(in Cursor) Result[Option[T]] {
		r := p(in)
		if r.Ok() {
			return Success(Some(r.value), r.rest)
		}
		if exclusive && r.fail.Consumed {
			return Fail[Option[T]](r.fail)
		}
		return Success(None[T](), in)
	}
}

// Preview reports whether p would match, without consuming input.
func Preview[T any](p Parser[T]) Parser[Option[T]] {
	return func(in Cursor) Result[Option[T]] {
		r := p(in)
		if r.Ok() {
			return Success(Some(r.value), in)
		}
		return Success(None[T](), in)
	}
}

// Not succeeds when p fails and fails when p succeeds. It never consumes
// input.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in Cursor) Result[struct{}] {
		if r := p(in); r.Ok() {
			return Fail[struct{}](&Failure{At: in})
		}
		return Success(struct{}{}, in)
	}
}

// Except runs p only if except does not match at the same cursor.
func Except[T, U any](p Parser[T], except Parser[U]) Parser[T] {
	return func(in Cursor) Result[T] {
		if r := except(in); r.Ok() {
			return Fail[T](&Failure{At: in, Expected: []string{"other than the excepted input"}})
		}
		return p(in)
	}
}

// Named reports name as the only expectation when p fails.
func Named[T any](p Parser[T], name string) Parser[T] {
	return func(in Cursor) Result[T] {
		r := p(in)
		if r.Ok() {
			return r
		}
		return Fail[T](r.fail.expecting(name))
	}
}

// End requires p to be followed by the end of the input.
func End[T any](p Parser[T]) Parser[T] {
	return func(in Cursor) Result[T] {
		r := p(in)
		if !r.Ok() || r.rest.AtEnd() {
			return r
		}
		return Fail[T](&Failure{
			At:       r.rest,
			Expected: []string{"end of input"},
			Consumed: r.rest.offset > in.offset,
		})
	}
}
