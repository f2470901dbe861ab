package parse

// PositionAware is implemented by values that can record where in the input
// they were parsed from. SetPos returns the stamped value.
type PositionAware[T any] interface {
	SetPos(start Position, length int) T
}

// Positioned stamps the value of p with the position it started at and the
// number of runes it covers.
func Positioned[T PositionAware[T]](p Parser[T]) Parser[T] {
	return func(in Cursor) Result[T] {
		r := p(in)
		if !r.Ok() {
			return r
		}
		return Success(r.value.SetPos(in.Position(), r.rest.offset-in.offset), r.rest)
	}
}

// TextSpan is a parsed value together with the input range it covers.
type TextSpan[T any] struct {
	Value  T
	Start  Position
	End    Position
	Length int
}

// Span wraps the value of p with its start and end positions. Unlike
// Positioned it works for any value type.
func Span[T any](p Parser[T]) Parser[TextSpan[T]] {
	return func(in Cursor) Result[TextSpan[T]] {
		r := p(in)
		if !r.Ok() {
			return Fail[TextSpan[T]](r.fail)
		}
		return Success(TextSpan[T]{
			Value:  r.value,
			Start:  in.Position(),
			End:    r.rest.Position(),
			Length: r.rest.offset - in.offset,
		}, r.rest)
	}
}
