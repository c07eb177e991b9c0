package mathsteps_test

import (
	"testing"

	"github.com/njchilds90/mathsteps"
	"github.com/stretchr/testify/require"
)

func TestPrintSubtractionAsMinus(t *testing.T) {
	n := mathsteps.Add(mathsteps.Sym("x"), mathsteps.Neg(mathsteps.Sym("y")))
	require.Equal(t, "x - y", mathsteps.Print(n, mathsteps.PrintOptions{}))
}

func TestPrintExplicitPlusMinus(t *testing.T) {
	n := mathsteps.Add(mathsteps.Sym("x"), mathsteps.Neg(mathsteps.Sym("y")))
	require.Equal(t, "x + -y", mathsteps.Print(n, mathsteps.PrintOptions{ExplicitPlusMinus: true}))
}

func TestPrintConstantFractionNoSpaces(t *testing.T) {
	n := mathsteps.Frac(mathsteps.Int(2), mathsteps.Int(3))
	require.Equal(t, "2/3", mathsteps.Print(n, mathsteps.PrintOptions{}))
}

func TestPrintSymbolicDivisionWithSpaces(t *testing.T) {
	n := mathsteps.Frac(mathsteps.Sym("x"), mathsteps.Sym("y"))
	require.Equal(t, "x / y", mathsteps.Print(n, mathsteps.PrintOptions{}))
}

func TestPrintPolyTermWithFractionCoefficient(t *testing.T) {
	n := mathsteps.Build(mathsteps.PolyTerm{Sign: 1, Coef: mathsteps.Frac(mathsteps.Int(2), mathsteps.Int(3)), Symbol: "x", Exponent: mathsteps.Int(2)})
	require.Equal(t, "2/3 x^2", mathsteps.Print(n, mathsteps.PrintOptions{}))
}

func TestPrintUnaryMinusOnLeafHasNoParens(t *testing.T) {
	require.Equal(t, "-x", mathsteps.Print(mathsteps.Neg(mathsteps.Sym("x")), mathsteps.PrintOptions{}))
}

func TestPrintUnaryMinusOnOperatorHasParens(t *testing.T) {
	n := mathsteps.Neg(mathsteps.Add(mathsteps.Sym("x"), mathsteps.Sym("y")))
	require.Equal(t, "-(x + y)", mathsteps.Print(n, mathsteps.PrintOptions{}))
}

func TestPrintLaTeXFraction(t *testing.T) {
	n := mathsteps.Frac(mathsteps.Int(2), mathsteps.Int(3))
	require.Equal(t, `\frac{2}{3}`, mathsteps.Print(n, mathsteps.PrintOptions{LaTeX: true}))
}

func TestPrintLaTeXExponent(t *testing.T) {
	n := mathsteps.Exp(mathsteps.Sym("x"), mathsteps.Int(2))
	require.Equal(t, "x^{2}", mathsteps.Print(n, mathsteps.PrintOptions{LaTeX: true}))
}

func TestPrintColoredGroupWrapsWithLaTeXColor(t *testing.T) {
	n := mathsteps.Colorize(mathsteps.Sym("x"), 0)
	out := mathsteps.Print(n, mathsteps.PrintOptions{LaTeX: true, Colors: map[int]string{0: "red"}})
	require.Equal(t, `\textcolor{red}{x}`, out)
}

func TestPrintColoredGroupIgnoredInASCII(t *testing.T) {
	n := mathsteps.Colorize(mathsteps.Sym("x"), 0)
	require.Equal(t, "x", mathsteps.Print(n, mathsteps.PrintOptions{Colors: map[int]string{0: "red"}}))
}

func TestColoredEqualDelegatesToWrappedNode(t *testing.T) {
	colored := mathsteps.Colorize(mathsteps.Sym("x"), 2)
	require.True(t, colored.Equal(mathsteps.Sym("x")))
}

// TestSimplifyAddSymbolAndHalfPrintsAsFractionSpaceSymbol guards against
// a non-integer poly-term coefficient being built as a bare Constant
// instead of the canonical constant-fraction shape: printMul only
// recognizes the fraction shape and renders it as "num/den symbol",
// falling back to the generic "*" separator ("3/2*x") otherwise.
func TestSimplifyAddSymbolAndHalfPrintsAsFractionSpaceSymbol(t *testing.T) {
	n := mathsteps.Add(mathsteps.Sym("x"), mathsteps.Frac(mathsteps.Sym("x"), mathsteps.Int(2)))
	result, err := mathsteps.Simplify(n, mathsteps.Options{})
	require.NoError(t, err)
	require.Equal(t, "3/2 x", mathsteps.Print(result, mathsteps.PrintOptions{}))
}
