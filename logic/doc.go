// Package logic compiles and evaluates propositional-logic expressions.
//
// A proposition is written with single-letter variables, the constants
// 0 and 1 (or F and T), negation, seven binary operators and brackets.
// Several propositions may be given at once, separated by commas; each one
// becomes a result column.
//
//	Constants:   0 1      T F
//	Brackets:    ( )      [ ]  { }
//	Not:         ¬a       ~ !
//	And:         a ∧ b    /\  ^  &
//	Or:          a ∨ b    \/  v  +  |
//	Xor:         a ⊕ b    (+)  #
//	Implication: a → b    ->
//	Equivalence: a ↔ b    <->
//	Mat. imp.:   a ⇒ b    =>
//	Mat. equ.:   a ⇔ b    <=>
//
// Operators are listed from the tightest to the loosest binding. All binary
// operators are left-associative.
//
// Compilation produces a postfix Program that is evaluated by a small stack
// machine once per Assignment. The usual entry points are:
//
//	c, err := logic.New("A ∧ ¬B, A ∨ B")
//	if err != nil {
//	    // *logic.SyntaxError
//	}
//	table, _ := c.Table()
//	fmt.Print(table)
//
//	ok, _ := logic.Valid("x v y^z <=> (x v y)^(x v z)") // true
//
// Compile once and evaluate many times: a Program is immutable and safe to
// share between goroutines.
package logic
