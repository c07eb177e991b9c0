package mathsteps_test

import (
	"fmt"
	"math/big"

	"github.com/njchilds90/mathsteps"
)

// evalAt substitutes each named symbol with its rational value and
// evaluates the resulting fully-constant tree exactly. It exists only
// to check that a rewrite preserved the value of an expression across
// concrete inputs, independent of how the engine happens to have
// ordered its terms.
func evalAt(n mathsteps.Node, values map[string]*big.Rat) (*big.Rat, error) {
	switch v := n.(type) {
	case *mathsteps.Constant:
		return v.Value, nil
	case *mathsteps.Symbol:
		val, ok := values[v.Name]
		if !ok {
			return nil, fmt.Errorf("no value bound for %s", v.Name)
		}
		return val, nil
	case *mathsteps.UnaryMinus:
		inner, err := evalAt(v.Child, values)
		if err != nil {
			return nil, err
		}
		return new(big.Rat).Neg(inner), nil
	case *mathsteps.Parenthesis:
		return evalAt(v.Content, values)
	case *mathsteps.Function:
		inner, err := evalAt(v.Arg, values)
		if err != nil {
			return nil, err
		}
		if v.Name != "abs" {
			return nil, fmt.Errorf("unsupported function %s", v.Name)
		}
		if inner.Sign() < 0 {
			return new(big.Rat).Neg(inner), nil
		}
		return inner, nil
	case *mathsteps.Operator:
		vals := make([]*big.Rat, len(v.Children))
		for i, c := range v.Children {
			val, err := evalAt(c, values)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		acc := new(big.Rat).Set(vals[0])
		switch v.Op {
		case mathsteps.OpAdd:
			for _, val := range vals[1:] {
				acc = new(big.Rat).Add(acc, val)
			}
		case mathsteps.OpMul:
			for _, val := range vals[1:] {
				acc = new(big.Rat).Mul(acc, val)
			}
		case mathsteps.OpSub:
			acc = new(big.Rat).Sub(vals[0], vals[1])
		case mathsteps.OpDiv:
			acc = new(big.Rat).Quo(vals[0], vals[1])
		case mathsteps.OpPow:
			exp := vals[1]
			if !exp.IsInt() {
				return nil, fmt.Errorf("non-integer exponent")
			}
			e := exp.Num().Int64()
			result := big.NewRat(1, 1)
			for i := int64(0); i < e; i++ {
				result = new(big.Rat).Mul(result, vals[0])
			}
			acc = result
		default:
			return nil, fmt.Errorf("unsupported operator")
		}
		return acc, nil
	}
	return nil, fmt.Errorf("unsupported node %T", n)
}
