package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyExpression is returned by Build for an empty token sequence.
	ErrEmptyExpression = errors.New("expr: empty expression")

	// ErrMalformed reports a postfix sequence that does not reduce to one tree.
	ErrMalformed = errors.New("expr: malformed postfix expression")

	// ErrBadOperand reports a token that is not a number.
	ErrBadOperand = errors.New("expr: bad operand")

	// ErrDivisionByZero is returned by Eval when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("expr: division by zero")
)

const operators = "+-*/^"

// node is either an operator with two children or a numeric leaf.
type node struct {
	token       string
	value       float64
	left, right *node
}

func (n *node) isOperator() bool {
	return n.left != nil
}

// Tree is an immutable expression tree.
type Tree struct {
	root *node
}

// Parse splits s on whitespace and builds the tree from the resulting tokens.
func Parse(s string) (*Tree, error) {
	return Build(strings.Fields(s))
}

// Build constructs a tree from postfix tokens.
// Complexity: O(len(tokens)).
func Build(tokens []string) (*Tree, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	stack := make([]*node, 0, len(tokens))
	for i, tok := range tokens {
		// 1) Operator: pop right then left operand.
		if len(tok) == 1 && strings.Contains(operators, tok) {
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: operator %q at position %d needs two operands", ErrMalformed, tok, i)
			}
			r, l := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &node{token: tok, left: l, right: r})

			continue
		}

		// 2) Operand: must be a number.
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadOperand, tok, i)
		}
		stack = append(stack, &node{token: tok, value: v})
	}

	// 3) Exactly one tree must remain.
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d operands left without an operator", ErrMalformed, len(stack))
	}

	return &Tree{root: stack[0]}, nil
}

// Eval computes the value of the expression.
// Complexity: O(n) time, O(height) stack.
func (t *Tree) Eval() (float64, error) {
	return t.root.eval()
}

func (n *node) eval() (float64, error) {
	if !n.isOperator() {
		return n.value, nil
	}
	l, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval()
	if err != nil {
		return 0, err
	}

	switch n.token {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, fmt.Errorf("%w: %s", ErrDivisionByZero, n)
		}
		return l / r, nil
	default: // "^"
		return math.Pow(l, r), nil
	}
}

// String renders the tree as fully parenthesised infix, e.g. "((1 + 2) * 3)".
// Operand tokens are reproduced as written.
func (t *Tree) String() string {
	var sb strings.Builder
	t.root.format(&sb)

	return sb.String()
}

func (n *node) String() string {
	var sb strings.Builder
	n.format(&sb)

	return sb.String()
}

func (n *node) format(sb *strings.Builder) {
	if !n.isOperator() {
		sb.WriteString(n.token)

		return
	}
	sb.WriteByte('(')
	n.left.format(sb)
	sb.WriteByte(' ')
	sb.WriteString(n.token)
	sb.WriteByte(' ')
	n.right.format(sb)
	sb.WriteByte(')')
}

// Postfix returns the tokens of the tree in postfix order.
func (t *Tree) Postfix() []string {
	var out []string
	var walk func(n *node)
	walk = func(n *node) {
		if n.isOperator() {
			walk(n.left)
			walk(n.right)
		}
		out = append(out, n.token)
	}
	walk(t.root)

	return out
}
