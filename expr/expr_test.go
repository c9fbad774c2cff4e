package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusplanner/expr"
)

func TestEnergyBill(t *testing.T) {
	tree, err := expr.Build([]string{"100", "0.18", "*", "50", "+", "1.12", "*"})
	require.NoError(t, err)

	v, err := tree.Eval()
	require.NoError(t, err)
	assert.InDelta(t, 76.16, v, 1e-9)
	assert.Equal(t, "(((100 * 0.18) + 50) * 1.12)", tree.String())
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"single operand", "42", 42},
		{"negative operand", "-5 3 +", -2},
		{"subtraction order", "10 4 -", 6},
		{"division order", "9 3 /", 3},
		{"power", "2 10 ^", 1024},
		{"nested", "1 2 + 3 4 + *", 21},
		{"fractional power", "16 0.5 ^", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := expr.Parse(tc.in)
			require.NoError(t, err)
			got, err := tree.Eval()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		want   error
	}{
		{"empty", nil, expr.ErrEmptyExpression},
		{"lonely operator", []string{"+"}, expr.ErrMalformed},
		{"one operand short", []string{"1", "*"}, expr.ErrMalformed},
		{"leftover operands", []string{"1", "2", "3", "+"}, expr.ErrMalformed},
		{"bad operand", []string{"1", "x", "+"}, expr.ErrBadOperand},
		{"unknown operator", []string{"1", "2", "%"}, expr.ErrBadOperand},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree, err := expr.Build(tc.tokens)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, tree)
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	tree, err := expr.Parse("1 2 2 - /")
	require.NoError(t, err)
	_, err = tree.Eval()
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "(1 / (2 - 2))")
}

func TestPowEdgeCases(t *testing.T) {
	tree, err := expr.Parse("0 -1 ^")
	require.NoError(t, err)
	v, err := tree.Eval()
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestPostfixRoundTrip(t *testing.T) {
	tokens := []string{"3", "4", "2", "*", "1", "5", "-", "2", "^", "/", "+"}
	tree, err := expr.Build(tokens)
	require.NoError(t, err)
	assert.Equal(t, tokens, tree.Postfix())
	assert.Equal(t, "(3 + ((4 * 2) / ((1 - 5) ^ 2)))", tree.String())
}
