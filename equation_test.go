package mathsteps_test

import (
	"errors"
	"testing"

	"github.com/njchilds90/mathsteps"
	"github.com/stretchr/testify/require"
)

func TestSolveLinearWithNegativeConstant(t *testing.T) {
	eq := mathsteps.Equation{
		LHS:        mathsteps.NewOperator(mathsteps.OpSub, mathsteps.Mul(mathsteps.Int(2), mathsteps.Sym("x")), mathsteps.Int(3)),
		RHS:        mathsteps.Int(0),
		Comparator: mathsteps.Eq,
	}
	result, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.NoError(t, err)
	require.Equal(t, "x", result.Variable)
	require.Equal(t, mathsteps.Eq, result.Comparator)
	require.True(t, result.Result.Equal(mathsteps.Frac(mathsteps.Int(3), mathsteps.Int(2))))
	require.Equal(t, "x = 3/2", result.Text)
}

func TestSolveLinearAddition(t *testing.T) {
	eq := mathsteps.Equation{
		LHS:        mathsteps.Add(mathsteps.Sym("x"), mathsteps.Int(3)),
		RHS:        mathsteps.Int(4),
		Comparator: mathsteps.Eq,
	}
	result, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.NoError(t, err)
	require.Equal(t, "x", result.Variable)
	require.True(t, result.Result.Equal(mathsteps.Int(1)))
	require.Equal(t, "x = 1", result.Text)
}

func TestSolveConstantComparisonTrue(t *testing.T) {
	eq := mathsteps.Equation{LHS: mathsteps.Int(1), RHS: mathsteps.Int(2), Comparator: mathsteps.Lt}
	result, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.NoError(t, err)
	require.Equal(t, "True", result.Verdict)
}

func TestSolveConstantComparisonFalse(t *testing.T) {
	eq := mathsteps.Equation{LHS: mathsteps.Int(5), RHS: mathsteps.Int(2), Comparator: mathsteps.Lt}
	result, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.NoError(t, err)
	require.Equal(t, "False", result.Verdict)
}

func TestSolveDegreeGreaterThanOneIsUnsolvable(t *testing.T) {
	eq := mathsteps.Equation{
		LHS:        mathsteps.Exp(mathsteps.Sym("x"), mathsteps.Int(2)),
		RHS:        mathsteps.Int(4),
		Comparator: mathsteps.Eq,
	}
	_, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.Error(t, err)
	var unsolvable *mathsteps.UnsolvableError
	require.True(t, errors.As(err, &unsolvable))
	require.False(t, unsolvable.NoSolution)
}

func TestSolveMultipleVariablesIsUnsolvable(t *testing.T) {
	eq := mathsteps.Equation{
		LHS:        mathsteps.Add(mathsteps.Sym("x"), mathsteps.Sym("y")),
		RHS:        mathsteps.Int(0),
		Comparator: mathsteps.Eq,
	}
	_, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.Error(t, err)
	var unsolvable *mathsteps.UnsolvableError
	require.True(t, errors.As(err, &unsolvable))
	require.Equal(t, "more than one variable", unsolvable.Reason)
}

func TestSolveNegativeCoefficientFlipsComparator(t *testing.T) {
	eq := mathsteps.Equation{
		LHS:        mathsteps.Mul(mathsteps.Neg(mathsteps.Int(2)), mathsteps.Sym("x")),
		RHS:        mathsteps.Int(4),
		Comparator: mathsteps.Lt,
	}
	result, err := mathsteps.Solve(eq, mathsteps.Options{})
	require.NoError(t, err)
	require.Equal(t, mathsteps.Gt, result.Comparator)
	require.True(t, result.Result.Equal(mathsteps.Int(-2)))
}
