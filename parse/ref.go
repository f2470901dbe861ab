package parse

import "sync/atomic"

// Ref refers to the parser factory returns without calling factory until the
// first parse. This lets grammar rules refer to each other before all of them
// are defined:
//
//	var expr parse.Parser[int]
//	group := parse.Contained(parse.Ref(func() parse.Parser[int] { return expr }), open, close)
//	expr = parse.Or(number, group)
//
// The resolved parser is cached. Left recursion is not detected.
func Ref[T any](factory func() Parser[T]) Parser[T] {
	if factory == nil {
		panic("parse: Ref called with nil factory")
	}
	var resolved atomic.Pointer[Parser[T]]
	return func(in Cursor) Result[T] {
		p := resolved.Load()
		if p == nil {
			target := factory()
			if target == nil {
				panic("parse: Ref factory returned a nil parser")
			}
			resolved.CompareAndSwap(nil, &target)
			p = resolved.Load()
		}
		return (*p)(in)
	}
}
