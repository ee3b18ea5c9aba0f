package logic

import (
	"iter"
	"strings"
)

// Compiled bundles a program with the variables of its source text, so a
// proposition is compiled once and evaluated for every assignment.
type Compiled struct {
	Source    string
	Program   *Program
	Variables []string
}

// New compiles text and derives its variables.
func New(text string) (*Compiled, error) {
	prog, err := Compile(text)
	if err != nil {
		return nil, err
	}
	return &Compiled{
		Source:    text,
		Program:   prog,
		Variables: Variables(text),
	}, nil
}

// Eval evaluates the compiled program against a. See Program.Eval.
func (c *Compiled) Eval(a Assignment) iter.Seq2[bool, error] {
	return c.Program.Eval(a)
}

// Assignments enumerates every assignment of the compiled variables.
func (c *Compiled) Assignments() iter.Seq[Assignment] {
	return Assignments(c.Variables)
}

// Row is one line of a truth table.
type Row struct {
	Inputs  []bool // in variable order
	Outputs []bool // one per comma-separated proposition
}

// Table is a full truth table.
type Table struct {
	Variables []string
	Rows      []Row
}

// Table evaluates every assignment, in enumeration order.
func (c *Compiled) Table() (*Table, error) {
	if err := CheckVariableCount(len(c.Variables), MaxVariables); err != nil {
		return nil, err
	}

	t := &Table{
		Variables: c.Variables,
		Rows:      make([]Row, 0, 1<<len(c.Variables)),
	}
	for a := range c.Assignments() {
		outputs, err := c.Program.Results(a)
		if err != nil {
			return nil, err
		}
		inputs := make([]bool, len(c.Variables))
		for i, v := range c.Variables {
			inputs[i] = a[v]
		}
		t.Rows = append(t.Rows, Row{Inputs: inputs, Outputs: outputs})
	}
	return t, nil
}

// Valid reports whether every result is true under every assignment. It
// stops at the first false result.
func (c *Compiled) Valid() (bool, error) {
	_, falsified, err := c.Falsify()
	if err != nil {
		return false, err
	}
	return !falsified, nil
}

// Falsify returns the first assignment, in enumeration order, under which
// some result is false. The boolean is false when there is none, that is
// when the proposition is valid.
func (c *Compiled) Falsify() (Assignment, bool, error) {
	if err := CheckVariableCount(len(c.Variables), MaxVariables); err != nil {
		return nil, false, err
	}

	for a := range c.Assignments() {
		for v, err := range c.Program.Eval(a) {
			if err != nil {
				return nil, false, err
			}
			if !v {
				return a, true, nil
			}
		}
	}
	return nil, false, nil
}

// BuildTable compiles text and builds its truth table.
func BuildTable(text string) (*Table, error) {
	c, err := New(text)
	if err != nil {
		return nil, err
	}
	return c.Table()
}

// RenderTable compiles text and renders its truth table as text.
func RenderTable(text string) (string, error) {
	t, err := BuildTable(text)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Valid reports whether text is a tautology. With several comma-separated
// propositions all of them must be tautologies.
func Valid(text string) (bool, error) {
	c, err := New(text)
	if err != nil {
		return false, err
	}
	return c.Valid()
}

// Equivalent reports whether a and b yield the same results under every
// assignment of the variables of both.
func Equivalent(a, b string) (bool, error) {
	ca, err := New(a)
	if err != nil {
		return false, err
	}
	cb, err := New(b)
	if err != nil {
		return false, err
	}
	if ca.Program.NumResults() != cb.Program.NumResults() {
		return false, nil
	}

	vars := Variables(a + " " + b)
	if err := CheckVariableCount(len(vars), MaxVariables); err != nil {
		return false, err
	}
	for asg := range Assignments(vars) {
		ra, err := ca.Program.Results(asg)
		if err != nil {
			return false, err
		}
		rb, err := cb.Program.Results(asg)
		if err != nil {
			return false, err
		}
		for i := range ra {
			if ra[i] != rb[i] {
				return false, nil
			}
		}
	}
	return true, nil
}

// String renders the table with a header of variable names followed by
// one line per assignment: the input bits, a gap, then the result bits.
//
//	  A B
//	  0 0  0
//	  0 1  1
//
// Every line starts with two blanks, the header of a table without
// variables included.
func (t *Table) String() string {
	var sb strings.Builder

	sb.WriteString("  ")
	sb.WriteString(strings.Join(t.Variables, " "))
	sb.WriteByte('\n')
	for _, row := range t.Rows {
		sb.WriteString("  ")
		sb.WriteString(joinBits(row.Inputs))
		if len(row.Inputs) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		sb.WriteString(joinBits(row.Outputs))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func joinBits(bits []bool) string {
	parts := make([]string, len(bits))
	for i, b := range bits {
		parts[i] = Bit(b)
	}
	return strings.Join(parts, " ")
}

// Bit renders a truth value as "1" or "0".
func Bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
