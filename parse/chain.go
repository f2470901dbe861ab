package parse

// ChainOperator parses operand (op operand)* and folds the operands from the
// left: "a - b - c" becomes apply(-, apply(-, a, b), c). A trailing operator
// without an operand is left unconsumed.
func ChainOperator[Op, T any](op Parser[Op], operand Parser[T], apply func(Op, T, T) T) Parser[T] {
	return chainLeft(op, operand, apply, false)
}

// XChainOperator is like ChainOperator but fails when an operator or operand
// fails after the chain has consumed input for it.
func XChainOperator[Op, T any](op Parser[Op], operand Parser[T], apply func(Op, T, T) T) Parser[T] {
	return chainLeft(op, operand, apply, true)
}

// ChainRightOperator parses operand (op operand)* and folds the operands
// from the right: "a ^ b ^ c" becomes apply(^, a, apply(^, b, c)).
func ChainRightOperator[Op, T any](op Parser[Op], operand Parser[T], apply func(Op, T, T) T) Parser[T] {
	return chainRight(op, operand, apply, false)
}

// XChainRightOperator is the exclusive form of ChainRightOperator.
func XChainRightOperator[Op, T any](op Parser[Op], operand Parser[T], apply func(Op, T, T) T) Parser[T] {
	return chainRight(op, operand, apply, true)
}

type link[Op, T any] struct {
	op      Op
	operand T
}

// chain collects the first operand and every (op, operand) pair after it.
func chain[Op, T any](op Parser[Op], operand Parser[T], exclusive bool, in Cursor) (T, []link[Op, T], Cursor, *Failure) {
	var zero T
	first := operand(in)
	if !first.Ok() {
		return zero, nil, in, first.fail
	}
	var links []link[Op, T]
	rest := first.rest
	for {
		o := op(rest)
		if !o.Ok() {
			if exclusive && o.fail.Consumed {
				return zero, nil, in, o.fail.since(in)
			}
			break
		}
		r := operand(o.rest)
		if !r.Ok() {
			f := r.fail.since(rest)
			if exclusive && f.Consumed {
				return zero, nil, in, f.since(in)
			}
			break
		}
		links = append(links, link[Op, T]{op: o.value, operand: r.value})
		if r.rest.offset == rest.offset {
			break
		}
		rest = r.rest
	}
	return first.value, links, rest, nil
}

func chainLeft[Op, T any](op Parser[Op], operand Parser[T], apply func(Op, T, T) T, exclusive bool) Parser[T] {
	return func(in Cursor) Result[T] {
		acc, links, rest, fail := chain(op, operand, exclusive, in)
		if fail != nil {
			return Fail[T](fail)
		}
		for _, l := range links {
			acc = apply(l.op, acc, l.operand)
		}
		return Success(acc, rest)
	}
}

func chainRight[Op, T any](op Parser[Op], operand Parser[T], apply func(Op, T, T) T, exclusive bool) Parser[T] {
	return func(in Cursor) Result[T] {
		first, links, rest, fail := chain(op, operand, exclusive, in)
		if fail != nil {
			return Fail[T](fail)
		}
		if len(links) == 0 {
			return Success(first, rest)
		}
		acc := links[len(links)-1].operand
		for i := len(links) - 1; i > 0; i-- {
			acc = apply(links[i].op, links[i-1].operand, acc)
		}
		return Success(apply(links[0].op, first, acc), rest)
	}
}
