package mathsteps_test

import (
	"testing"

	"github.com/njchilds90/mathsteps"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, n mathsteps.Node) mathsteps.Node {
	t.Helper()
	raw, err := mathsteps.ToJSON(n)
	require.NoError(t, err)
	out, err := mathsteps.ParseJSON(raw)
	require.NoError(t, err)
	return out
}

func TestRoundTripConstant(t *testing.T) {
	out := roundTrip(t, mathsteps.Rat(3, 4))
	require.True(t, out.Equal(mathsteps.Rat(3, 4)))
}

func TestRoundTripSymbol(t *testing.T) {
	out := roundTrip(t, mathsteps.Sym("x"))
	require.True(t, out.Equal(mathsteps.Sym("x")))
}

func TestRoundTripUnaryMinus(t *testing.T) {
	out := roundTrip(t, mathsteps.Neg(mathsteps.Sym("x")))
	require.True(t, out.Equal(mathsteps.Neg(mathsteps.Sym("x"))))
}

func TestRoundTripParenthesis(t *testing.T) {
	out := roundTrip(t, mathsteps.Paren(mathsteps.Add(mathsteps.Sym("x"), mathsteps.Int(1))))
	require.True(t, out.Equal(mathsteps.Paren(mathsteps.Add(mathsteps.Sym("x"), mathsteps.Int(1)))))
}

func TestRoundTripFunction(t *testing.T) {
	out := roundTrip(t, mathsteps.Abs(mathsteps.Sym("x")))
	require.True(t, out.Equal(mathsteps.Abs(mathsteps.Sym("x"))))
}

func TestRoundTripColored(t *testing.T) {
	out := roundTrip(t, mathsteps.Colorize(mathsteps.Sym("x"), 3))
	require.True(t, out.Equal(mathsteps.Sym("x")))
	colored, ok := out.(*mathsteps.Colored)
	require.True(t, ok)
	require.Equal(t, 3, colored.Group)
}

func TestRoundTripOperatorTree(t *testing.T) {
	original := mathsteps.Add(mathsteps.Mul(mathsteps.Int(2), mathsteps.Sym("x")), mathsteps.Neg(mathsteps.Int(3)))
	out := roundTrip(t, original)
	require.True(t, out.Equal(original))
}

func TestParseJSONRejectsInvalidJSON(t *testing.T) {
	_, err := mathsteps.ParseJSON("{not json")
	require.Error(t, err)
}

func TestFromJSONRejectsMissingType(t *testing.T) {
	_, err := mathsteps.FromJSON(map[string]interface{}{"name": "x"})
	require.Error(t, err)
}

func TestFromJSONRejectsUnknownType(t *testing.T) {
	_, err := mathsteps.FromJSON(map[string]interface{}{"type": "matrix"})
	require.Error(t, err)
}

func TestFromJSONRejectsMalformedConstant(t *testing.T) {
	_, err := mathsteps.FromJSON(map[string]interface{}{"type": "const", "value": "not-a-number"})
	require.Error(t, err)
}

func TestFromJSONNilRejected(t *testing.T) {
	_, err := mathsteps.FromJSON(nil)
	require.Error(t, err)
}

func TestFromJSONRejectsChildNotObject(t *testing.T) {
	_, err := mathsteps.FromJSON(map[string]interface{}{"type": "neg", "child": "x"})
	require.Error(t, err)
}
