package logic

import (
	"strings"
	"unicode"
)

// Op is a stack machine instruction code.
type Op uint8

const (
	OpVar Op = iota // push the value of a variable
	OpTrue
	OpFalse
	OpNot
	OpAnd
	OpOr
	OpXor
	OpImplies
	OpIff
	OpMatImplies
	OpMatIff
	OpResult // pop one value and yield it as the next result
)

var opSymbols = map[Op]Symbol{
	OpTrue:       SymTrue,
	OpFalse:      SymFalse,
	OpNot:        SymNot,
	OpAnd:        SymAnd,
	OpOr:         SymOr,
	OpXor:        SymXor,
	OpImplies:    SymImplies,
	OpIff:        SymIff,
	OpMatImplies: SymMatImplies,
	OpMatIff:     SymMatIff,
	OpResult:     SymComma,
}

var symbolOps = map[Symbol]Op{
	SymTrue:       OpTrue,
	SymFalse:      OpFalse,
	SymNot:        OpNot,
	SymAnd:        OpAnd,
	SymOr:         OpOr,
	SymXor:        OpXor,
	SymImplies:    OpImplies,
	SymIff:        OpIff,
	SymMatImplies: OpMatImplies,
	SymMatIff:     OpMatIff,
	SymComma:      OpResult,
}

// Instruction is one step of a Program.
type Instruction struct {
	Op   Op
	Name string // variable name, set for OpVar only
}

func (in Instruction) String() string {
	if in.Op == OpVar {
		return in.Name
	}
	if s, ok := opSymbols[in.Op]; ok {
		return s.String()
	}
	return "?"
}

// Program is a compiled proposition in postfix form. It holds one result
// marker per comma-separated proposition. A Program is never modified after
// it is built.
type Program struct {
	code    []Instruction
	results int
}

func newProgram(code []Instruction) *Program {
	p := &Program{code: code}
	for _, in := range code {
		if in.Op == OpResult {
			p.results++
		}
	}
	return p
}

// ParseProgram rebuilds a Program from its postfix text, as produced by
// Program.String. Letters other than T and F are variables; T and F are
// accepted as constants. The stack discipline is not checked here, a
// malformed program fails when it is evaluated.
func ParseProgram(postfix string) (*Program, error) {
	var code []Instruction
	for i, r := range postfix {
		switch {
		case r == 'T':
			code = append(code, Instruction{Op: OpTrue})
		case r == 'F':
			code = append(code, Instruction{Op: OpFalse})
		case unicode.IsLetter(r):
			code = append(code, Instruction{Op: OpVar, Name: string(r)})
		default:
			op, ok := symbolOps[Symbol(r)]
			if !ok {
				return nil, &MalformedProgramError{Index: i, Reason: "unknown symbol " + string(r)}
			}
			code = append(code, Instruction{Op: op})
		}
	}
	return newProgram(code), nil
}

// Instructions returns a copy of the program's instructions.
func (p *Program) Instructions() []Instruction {
	out := make([]Instruction, len(p.code))
	copy(out, p.code)
	return out
}

// NumResults is the number of values one evaluation yields.
func (p *Program) NumResults() int { return p.results }

// String renders the program in postfix notation, one symbol per
// instruction, e.g. "AB¬∧,".
func (p *Program) String() string {
	var sb strings.Builder
	for _, in := range p.code {
		sb.WriteString(in.String())
	}
	return sb.String()
}
