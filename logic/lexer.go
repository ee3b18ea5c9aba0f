package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer produces tokens from a proposition on demand.
type Lexer struct {
	input    string // the entire proposition
	position int    // byte offset of the next unread character
}

// NewLexer returns a Lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
	}
}

// Next skips whitespace and returns the next token. Once the input is
// exhausted every call returns a SymEOF token.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		return Token{Symbol: SymEOF, Offset: len(l.input)}
	}

	start := l.position
	rest := l.input[start:]
	for _, a := range aliases {
		if strings.HasPrefix(rest, a.spelling) {
			l.position += len(a.spelling)
			return Token{Symbol: a.symbol, Text: a.spelling, Offset: start}
		}
	}

	// anything else is a token of its own: variables, digits, brackets,
	// commas and characters the parser will reject.
	r, size := utf8.DecodeRuneInString(rest)
	l.position += size
	return Token{Symbol: Symbol(r), Text: rest[:size], Offset: start}
}

// Tokenize drains the lexer. The returned slice always ends with a SymEOF
// token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Symbol == SymEOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !unicode.IsSpace(r) {
			return
		}
		l.position += size
	}
}

// isVariable reports whether s names a variable once aliases are resolved.
func isVariable(s Symbol) bool {
	return unicode.IsLetter(rune(s)) && !strings.ContainsRune(reservedLetters, rune(s))
}
