package logic

// Parser is a recursive-descent parser that compiles a proposition into
// postfix instructions. Grammar, loosest level first:
//
//	Proposition := Binary(7) ("," Binary(7))*
//	Binary(L)   := Binary(L-1) (op(L) Binary(L-1))*    L > 0
//	Binary(0)   := Unary
//	Unary       := variable | "0" | "1" | "¬" Unary
//	             | "(" Binary(7) ")" | "[" Binary(7) "]" | "{" Binary(7) "}"
//
// A Parser is single use: create one per input.
type Parser struct {
	input string
	lexer *Lexer
	next  Token // lookahead
	code  []Instruction
	err   *SyntaxError
}

// NewParser creates a parser for input and reads the first token.
func NewParser(input string) *Parser {
	p := &Parser{
		input: input,
		lexer: NewLexer(input),
	}
	p.advance()
	return p
}

// Compile parses a proposition into a Program.
// The error, if any, is a *SyntaxError.
func Compile(text string) (*Program, error) {
	return NewParser(text).Parse()
}

// Parse consumes the whole input. Every comma-separated proposition is
// followed by a result marker in the returned program.
func (p *Parser) Parse() (*Program, error) {
	top := len(binaryOperators)

	p.binary(top)
	p.emit(Instruction{Op: OpResult})
	for p.err == nil && p.next.Symbol == SymComma {
		p.advance()
		p.binary(top)
		p.emit(Instruction{Op: OpResult})
	}
	if p.err == nil && p.next.Symbol != SymEOF {
		p.fail(p.next, `"," or end of input`)
	}

	if p.err != nil {
		return nil, p.err
	}
	return newProgram(p.code), nil
}

func (p *Parser) advance() {
	p.next = p.lexer.Next()
}

func (p *Parser) emit(in Instruction) {
	p.code = append(p.code, in)
}

// fail records the first syntax error; later ones are consequences of it.
func (p *Parser) fail(tok Token, expected string) {
	if p.err == nil {
		p.err = newSyntaxError(p.input, tok, expected)
	}
}

func (p *Parser) binary(level int) {
	if p.err != nil {
		return
	}
	if level == 0 {
		p.unary()
		return
	}

	op := binaryOperators[level-1]
	p.binary(level - 1)
	for p.err == nil && p.next.Symbol == op {
		p.advance()
		p.binary(level - 1)
		p.emit(Instruction{Op: symbolOps[op]})
	}
}

func (p *Parser) unary() {
	tok := p.next

	switch {
	case tok.Symbol == SymEOF:
		p.fail(tok, "a proposition")
	case isVariable(tok.Symbol):
		p.advance()
		p.emit(Instruction{Op: OpVar, Name: tok.Text})
	case tok.Symbol == SymTrue:
		p.advance()
		p.emit(Instruction{Op: OpTrue})
	case tok.Symbol == SymFalse:
		p.advance()
		p.emit(Instruction{Op: OpFalse})
	case tok.Symbol == SymNot:
		p.advance()
		p.unary()
		p.emit(Instruction{Op: OpNot})
	default:
		closing, ok := closingBracket[tok.Symbol]
		if !ok {
			p.fail(tok, "a variable, constant, negation or bracket")
			return
		}
		p.advance()
		p.brackets(closing)
	}
}

func (p *Parser) brackets(closing Symbol) {
	p.binary(len(binaryOperators))
	if p.err != nil {
		return
	}
	if p.next.Symbol != closing {
		p.fail(p.next, `"`+closing.String()+`"`)
		return
	}
	p.advance()
}
