package logic

import (
	"fmt"
	"iter"
	"strings"
)

// MaxVariables bounds the number of variables the drivers enumerate.
// Each extra variable doubles the work.
const MaxVariables = 24

// CheckVariableCount returns ErrTooManyVariables when n exceeds limit.
// A limit of zero or less, or above MaxVariables, means MaxVariables.
func CheckVariableCount(n, limit int) error {
	if limit <= 0 || limit > MaxVariables {
		limit = MaxVariables
	}
	if n > limit {
		return fmt.Errorf("%w: %d variables, limit is %d", ErrTooManyVariables, n, limit)
	}
	return nil
}

// Variables returns the distinct variable names of a proposition in order
// of first occurrence. The reserved letters T, F and v are never variables.
func Variables(text string) []string {
	var vars []string
	seen := make(map[rune]bool)
	for _, r := range text {
		if !isVariable(Symbol(r)) || seen[r] {
			continue
		}
		seen[r] = true
		vars = append(vars, string(r))
	}
	return vars
}

// Assignments yields all 2^n assignments of vars. Assignment i binds the
// last variable to the least significant bit of i, so the first variable
// changes slowest. With no variables a single empty assignment is yielded.
//
// Each yielded map is fresh and may be kept by the caller.
func Assignments(vars []string) iter.Seq[Assignment] {
	n := len(vars)
	return func(yield func(Assignment) bool) {
		for minterm := uint64(0); minterm < uint64(1)<<n; minterm++ {
			a := make(Assignment, n)
			bits := minterm
			for j := n - 1; j >= 0; j-- {
				a[vars[j]] = bits&1 == 1
				bits >>= 1
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Minterm is the inverse of Assignments: it returns the index at which a
// is produced for vars. Variables missing from a count as false.
func Minterm(vars []string, a Assignment) uint64 {
	var m uint64
	for _, v := range vars {
		m <<= 1
		if a[v] {
			m |= 1
		}
	}
	return m
}

// FormatAssignment renders a as "A=1 B=0" in the order of vars.
func FormatAssignment(vars []string, a Assignment) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v + "=" + Bit(a[v])
	}
	return strings.Join(parts, " ")
}
