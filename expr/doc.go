// Package expr builds and evaluates arithmetic expression trees from postfix
// (reverse Polish) token sequences.
//
// Operators are the single-character tokens + - * / ^ (^ is exponentiation).
// Every other token is an operand and must parse as a float64; "-5" is an
// operand, "-" an operator.
//
//	tree, err := expr.Build([]string{"100", "0.18", "*", "50", "+", "1.12", "*"})
//	v, err := tree.Eval() // 76.16
//
// Errors:
//
//	ErrEmptyExpression – no tokens
//	ErrMalformed       – an operator without two operands, or operands left over
//	ErrBadOperand      – a token that is neither an operator nor a number
//	ErrDivisionByZero  – Eval divided by an exact zero
//
// Build consumes the tokens with an explicit stack; Eval and String recurse,
// so their depth is the tree height.
package expr
