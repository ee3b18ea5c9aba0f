package logic

import "iter"

// Assignment maps variable names to truth values.
type Assignment map[string]bool

// Eval runs the program against one assignment. It yields one value per
// result marker, in program order, with a nil error. If the program is
// malformed or reads a variable missing from a, Eval yields a single
// (false, err) pair and stops.
//
// The returned sequence can be ranged over any number of times.
func (p *Program) Eval(a Assignment) iter.Seq2[bool, error] {
	return func(yield func(bool, error) bool) {
		stack := make([]bool, 0, 8)

		pop := func() (bool, bool) {
			if len(stack) == 0 {
				return false, false
			}
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			return v, true
		}

		for i, in := range p.code {
			switch in.Op {
			case OpTrue:
				stack = append(stack, true)

			case OpFalse:
				stack = append(stack, false)

			case OpVar:
				v, ok := a[in.Name]
				if !ok {
					yield(false, &UnboundVariableError{Name: in.Name})
					return
				}
				stack = append(stack, v)

			case OpNot:
				v, ok := pop()
				if !ok {
					yield(false, &MalformedProgramError{Index: i, Reason: "negation on empty stack"})
					return
				}
				stack = append(stack, !v)

			case OpResult:
				v, ok := pop()
				if !ok {
					yield(false, &MalformedProgramError{Index: i, Reason: "result marker on empty stack"})
					return
				}
				if !yield(v, nil) {
					return
				}

			default:
				right, ok1 := pop()
				left, ok2 := pop()
				if !ok1 || !ok2 {
					yield(false, &MalformedProgramError{Index: i, Reason: "binary operator needs two operands"})
					return
				}
				v, ok := apply(in.Op, left, right)
				if !ok {
					yield(false, &MalformedProgramError{Index: i, Reason: "unknown instruction"})
					return
				}
				stack = append(stack, v)
			}
		}

		if len(stack) != 0 {
			yield(false, &MalformedProgramError{Index: len(p.code), Reason: "values left on the stack"})
		}
	}
}

// Results evaluates the program and collects every result.
func (p *Program) Results(a Assignment) ([]bool, error) {
	results := make([]bool, 0, p.results)
	for v, err := range p.Eval(a) {
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// apply computes a binary operator. The boolean result is false for an
// opcode that is not a binary operator.
func apply(op Op, left, right bool) (bool, bool) {
	switch op {
	case OpAnd:
		return left && right, true
	case OpOr:
		return left || right, true
	case OpXor:
		return left != right, true
	case OpImplies, OpMatImplies:
		return !left || right, true
	case OpIff, OpMatIff:
		return left == right, true
	}
	return false, false
}
