package mathsteps

import "math/big"

func absRat(r *big.Rat) *big.Rat {
	if r.Sign() < 0 {
		return new(big.Rat).Neg(r)
	}
	return new(big.Rat).Set(r)
}

func gcdInt(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

func lcmInt(a, b *big.Int) *big.Int {
	g := gcdInt(a, b)
	if g.Sign() == 0 {
		return big.NewInt(0)
	}
	prod := new(big.Int).Mul(new(big.Int).Abs(a), new(big.Int).Abs(b))
	return new(big.Int).Div(prod, g)
}
