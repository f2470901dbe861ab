package parse

// Parser is a parsing function. Parsers hold no mutable state, so one value
// can be shared between goroutines and reused across inputs.
type Parser[T any] func(Cursor) Result[T]

// TryParse runs p from the start of input.
func (p Parser[T]) TryParse(input string) Result[T] {
	return p(NewCursor(input))
}

// Parse runs p from the start of input and returns the value it produces.
// Input after the match is ignored; use ParseAll to require all of it.
func (p Parser[T]) Parse(input string) (T, error) {
	return Run(p, NewCursor(input))
}

// ParseAll is like Parse but fails unless p consumes the whole input.
func (p Parser[T]) ParseAll(input string) (T, error) {
	return Run(End(p), NewCursor(input))
}

// Run runs p at c. A failure is returned as an *Error.
func Run[T any](p Parser[T], c Cursor) (T, error) {
	r := p(c)
	if !r.Ok() {
		var zero T
		return zero, &Error{Failure: r.fail}
	}
	return r.value, nil
}

// Return succeeds with value without consuming input.
func Return[T any](value T) Parser[T] {
	return func(in Cursor) Result[T] {
		return Success(value, in)
	}
}

// ReturnAs runs p and replaces its value with value.
func ReturnAs[T, U any](p Parser[T], value U) Parser[U] {
	return Select(p, func(T) U { return value })
}

// Option is a value that may be absent.
type Option[T any] struct {
	value   T
	defined bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, defined: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsDefined() bool {
	return o.defined
}

func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.defined
}

func (o Option[T]) GetOrElse(fallback T) T {
	if o.defined {
		return o.value
	}
	return fallback
}
