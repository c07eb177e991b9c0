package mathsteps_test

import (
	"testing"

	"github.com/njchilds90/mathsteps"
	"github.com/stretchr/testify/require"
)

func TestDoubleUnaryMinus(t *testing.T) {
	result, err := mathsteps.Simplify(mathsteps.Neg(mathsteps.Neg(mathsteps.Sym("x"))), mathsteps.Options{})
	require.NoError(t, err)
	require.True(t, result.Equal(mathsteps.Sym("x")))
}

func TestAbsoluteValueOfNegativeConstant(t *testing.T) {
	result, err := mathsteps.Simplify(mathsteps.Abs(mathsteps.Int(-5)), mathsteps.Options{})
	require.NoError(t, err)
	require.True(t, result.Equal(mathsteps.Int(5)))
}

func TestAbsoluteValueOfNonNegativeConstant(t *testing.T) {
	result, err := mathsteps.Simplify(mathsteps.Abs(mathsteps.Int(5)), mathsteps.Options{})
	require.NoError(t, err)
	require.True(t, result.Equal(mathsteps.Int(5)))
}

func TestAbsoluteValueOfNestedAbs(t *testing.T) {
	result, err := mathsteps.Simplify(mathsteps.Abs(mathsteps.Abs(mathsteps.Sym("x"))), mathsteps.Options{})
	require.NoError(t, err)
	require.True(t, result.Equal(mathsteps.Abs(mathsteps.Sym("x"))))
}

func TestAbsoluteValueOfNegatedSymbol(t *testing.T) {
	result, err := mathsteps.Simplify(mathsteps.Abs(mathsteps.Neg(mathsteps.Sym("x"))), mathsteps.Options{})
	require.NoError(t, err)
	require.True(t, result.Equal(mathsteps.Abs(mathsteps.Sym("x"))))
}
