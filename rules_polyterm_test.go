package mathsteps_test

import (
	"testing"

	"github.com/njchilds90/mathsteps"
	"github.com/stretchr/testify/require"
)

func TestCombineLikeTerms(t *testing.T) {
	sum := mathsteps.Add(mathsteps.Mul(mathsteps.Int(3), mathsteps.Sym("x")), mathsteps.Mul(mathsteps.Int(2), mathsteps.Sym("x")))
	trace, err := mathsteps.StepThrough(sum, mathsteps.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, trace)
	require.Equal(t, mathsteps.CombineLikeTerms, trace[0].Kind)

	final := trace[len(trace)-1].Tree
	term, ok := mathsteps.AsPolyTerm(final)
	require.True(t, ok)
	require.Equal(t, "x", term.Symbol)
	coef, ok := term.Coef.(*mathsteps.Constant)
	require.True(t, ok)
	require.True(t, coef.Equal(mathsteps.Int(5)))
}

func TestCombineLikeTermsIgnoresDifferentExponents(t *testing.T) {
	sum := mathsteps.Add(mathsteps.Sym("x"), mathsteps.Exp(mathsteps.Sym("x"), mathsteps.Int(2)))
	_, status := mathsteps.Step(sum)
	require.False(t, status.Changed)
}

func TestMultiplyLikeTerms(t *testing.T) {
	prod := mathsteps.Mul(mathsteps.Sym("x"), mathsteps.Sym("x"))
	result, err := mathsteps.Simplify(prod, mathsteps.Options{})
	require.NoError(t, err)
	pow, ok := result.(*mathsteps.Operator)
	require.True(t, ok)
	require.Equal(t, mathsteps.OpPow, pow.Op)
	require.True(t, pow.Children[0].Equal(mathsteps.Sym("x")))
	require.True(t, pow.Children[1].Equal(mathsteps.Int(2)))
}

func TestMultiplyLikeTermsWithCoefficients(t *testing.T) {
	prod := mathsteps.Mul(mathsteps.Mul(mathsteps.Int(2), mathsteps.Sym("x")), mathsteps.Mul(mathsteps.Int(3), mathsteps.Sym("x")))
	result, err := mathsteps.Simplify(prod, mathsteps.Options{})
	require.NoError(t, err)
	term, ok := mathsteps.AsPolyTerm(result)
	require.True(t, ok)
	require.Equal(t, "x", term.Symbol)
	require.True(t, term.Exponent.Equal(mathsteps.Int(2)))
	coef, ok := term.Coef.(*mathsteps.Constant)
	require.True(t, ok)
	require.True(t, coef.Equal(mathsteps.Int(6)))
}
