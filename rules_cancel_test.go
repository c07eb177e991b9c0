package mathsteps_test

import (
	"math/big"
	"testing"

	"github.com/njchilds90/mathsteps"
	"github.com/stretchr/testify/require"
)

func TestDividePolyTermByIntegerConstant(t *testing.T) {
	frac := mathsteps.Frac(mathsteps.Mul(mathsteps.Int(6), mathsteps.Sym("x")), mathsteps.Int(3))
	result, status := mathsteps.Step(frac)
	require.True(t, status.Changed)
	require.Equal(t, mathsteps.DividePolyTerm, status.Kind)

	term, ok := mathsteps.AsPolyTerm(result)
	require.True(t, ok)
	require.Equal(t, "x", term.Symbol)
	coef, ok := term.Coef.(*mathsteps.Constant)
	require.True(t, ok)
	require.True(t, coef.Equal(mathsteps.Int(2)))
}

func TestDividePolyTermByConstantLeavesFraction(t *testing.T) {
	frac := mathsteps.Frac(mathsteps.Mul(mathsteps.Int(5), mathsteps.Sym("x")), mathsteps.Int(2))
	result, status := mathsteps.Step(frac)
	require.True(t, status.Changed)
	require.Equal(t, mathsteps.DividePolyTerm, status.Kind)

	term, ok := mathsteps.AsPolyTerm(result)
	require.True(t, ok)
	require.Equal(t, "x", term.Symbol)
	num, den, ok := mathsteps.AsConstantFraction(term.Coef)
	require.True(t, ok, "non-integer coefficient must be a canonical constant fraction, not a bare Constant")
	require.Zero(t, num.Cmp(big.NewRat(5, 1)))
	require.Zero(t, den.Cmp(big.NewRat(2, 1)))
}

func TestCancelExactMatchFactor(t *testing.T) {
	frac := mathsteps.Frac(mathsteps.Mul(mathsteps.Sym("x"), mathsteps.Sym("y")), mathsteps.Sym("x"))
	result, status := mathsteps.Step(frac)
	require.True(t, status.Changed)
	require.Equal(t, mathsteps.Cancel, status.Kind)
	require.True(t, result.Equal(mathsteps.Sym("y")))
}

func TestCancelSymbolPowerReducesExponent(t *testing.T) {
	frac := mathsteps.Frac(mathsteps.Exp(mathsteps.Sym("x"), mathsteps.Int(3)), mathsteps.Exp(mathsteps.Sym("x"), mathsteps.Int(2)))
	result, status := mathsteps.Step(frac)
	require.True(t, status.Changed)
	require.Equal(t, mathsteps.Cancel, status.Kind)
	require.True(t, result.Equal(mathsteps.Sym("x")))
}

func TestCancelConstantGCDOnBothSides(t *testing.T) {
	frac := mathsteps.Frac(mathsteps.Mul(mathsteps.Int(6), mathsteps.Sym("x")), mathsteps.Mul(mathsteps.Int(4), mathsteps.Sym("y")))
	result, status := mathsteps.Step(frac)
	require.True(t, status.Changed)
	require.Equal(t, mathsteps.Cancel, status.Kind)

	op, ok := result.(*mathsteps.Operator)
	require.True(t, ok)
	require.Equal(t, mathsteps.OpDiv, op.Op)

	numOp, ok := op.Children[0].(*mathsteps.Operator)
	require.True(t, ok)
	require.True(t, numOp.Children[0].Equal(mathsteps.Int(3)))
	denOp, ok := op.Children[1].(*mathsteps.Operator)
	require.True(t, ok)
	require.True(t, denOp.Children[0].Equal(mathsteps.Int(2)))
}

func TestNegatedNumeratorCancelsToNegativeOne(t *testing.T) {
	frac := mathsteps.Frac(mathsteps.Neg(mathsteps.Sym("x")), mathsteps.Sym("x"))
	result, status := mathsteps.Step(frac)
	require.True(t, status.Changed)
	require.Equal(t, mathsteps.Cancel, status.Kind)
	require.True(t, result.Equal(mathsteps.Int(-1)))
}
