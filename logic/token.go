package logic

import "fmt"

// Symbol is the canonical form of a token. Operators and constants use the
// rune that also appears in the postfix rendering of a Program; any other
// character stands for itself.
type Symbol rune

const (
	SymEOF        Symbol = -1 // no character of the input maps to it
	SymTrue       Symbol = '1'
	SymFalse      Symbol = '0'
	SymNot        Symbol = '¬'
	SymAnd        Symbol = '∧'
	SymOr         Symbol = '∨'
	SymXor        Symbol = '⊕'
	SymImplies    Symbol = '→'
	SymIff        Symbol = '↔'
	SymMatImplies Symbol = '⇒'
	SymMatIff     Symbol = '⇔'
	SymComma      Symbol = ','
)

func (s Symbol) String() string {
	if s == SymEOF {
		return "end of input"
	}
	return string(rune(s))
}

// Token is a single lexical unit of a proposition.
type Token struct {
	Symbol Symbol // canonical symbol
	Text   string // spelling as written in the input
	Offset int    // byte offset of Text in the input
}

func (t Token) String() string {
	if t.Symbol == SymEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Text)
}

type alias struct {
	spelling string
	symbol   Symbol
}

// aliases maps every accepted spelling to its canonical symbol.
//
// The lexer takes the first entry that matches at the cursor, so the order
// of this list is part of the grammar: a spelling that extends another one
// (like "<=>" and "=>") must be listed before any entry that is a prefix of
// it at the same position. Do not turn this into a map.
var aliases = []alias{
	{"T", SymTrue},
	{"F", SymFalse},
	{"¬", SymNot},
	{"!", SymNot},
	{"~", SymNot},
	{"∧", SymAnd},
	{"&", SymAnd},
	{"^", SymAnd},
	{"/\\", SymAnd},
	{"∨", SymOr},
	{"+", SymOr},
	{"|", SymOr},
	{"v", SymOr},
	{"\\/", SymOr},
	{"⊕", SymXor},
	{"#", SymXor},
	{"(+)", SymXor},
	{"→", SymImplies},
	{"->", SymImplies},
	{"↔", SymIff},
	{"<->", SymIff},
	{"⇒", SymMatImplies},
	{"=>", SymMatImplies},
	{"⇔", SymMatIff},
	{"<=>", SymMatIff},
}

// reservedLetters are letters that the lexer never reports as variables.
const reservedLetters = "TFv"

// binaryOperators lists the binary operators from the tightest to the
// loosest binding. The index of an operator plus one is its grammar level.
var binaryOperators = []Symbol{
	SymAnd,
	SymOr,
	SymXor,
	SymImplies,
	SymIff,
	SymMatImplies,
	SymMatIff,
}

// closingBracket maps opening brackets to the bracket that must close them.
var closingBracket = map[Symbol]Symbol{
	'(': ')',
	'[': ']',
	'{': '}',
}
