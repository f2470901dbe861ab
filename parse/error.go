package parse

import "fmt"

// Error is returned by the Parse entry points when the input does not match.
type Error struct {
	Failure *Failure
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Failure.Position(), e.Failure)
}

func (e *Error) Position() Position {
	return e.Failure.Position()
}

func (e *Error) Expected() []string {
	return e.Failure.Expected
}
