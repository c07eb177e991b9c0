package mathsteps

import "math/big"

// addConstantFractions applies to a + node whose every child is a
// constant fraction or a bare constant (treated as that constant over
// 1), with at least one actual fraction among them — a bare-constant
// sum is arithmeticSearch's job. If every denominator already matches,
// it sums the numerators over the shared denominator (ADD_FRACTIONS).
// Otherwise it rewrites every child to share the LCM of the
// denominators (COMMON_DENOMINATOR); a later step folds the resulting
// products and adds again.
func addConstantFractions(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpAdd || len(op.Children) < 2 {
		return n, unchanged
	}
	dens := make([]*big.Rat, len(op.Children))
	nums := make([]*big.Rat, len(op.Children))
	hasFraction := false
	for i, c := range op.Children {
		if num, den, ok := AsConstantFraction(c); ok {
			nums[i], dens[i] = num, den
			hasFraction = true
			continue
		}
		if k, ok := c.(*Constant); ok {
			nums[i], dens[i] = k.Value, big.NewRat(1, 1)
			continue
		}
		return n, unchanged
	}
	if !hasFraction {
		return n, unchanged
	}

	allSame := true
	for _, d := range dens[1:] {
		if d.Cmp(dens[0]) != 0 {
			allSame = false
			break
		}
	}
	if allSame {
		sum := new(big.Rat).Set(nums[0])
		for _, num := range nums[1:] {
			sum = new(big.Rat).Add(sum, num)
		}
		return &Operator{Op: OpDiv, Children: []Node{&Constant{Value: sum}, &Constant{Value: dens[0]}}}, changed(AddFractions)
	}

	lcm := dens[0].Num()
	for _, d := range dens[1:] {
		lcm = lcmInt(lcm, d.Num())
	}
	newChildren := make([]Node, len(op.Children))
	for i, num := range nums {
		den := dens[i]
		factor := new(big.Int).Div(lcm, den.Num())
		factorRat := new(big.Rat).SetInt(factor)
		newNum := &Operator{Op: OpMul, Children: []Node{&Constant{Value: num}, &Constant{Value: factorRat}}}
		newDen := &Operator{Op: OpMul, Children: []Node{&Constant{Value: den}, &Constant{Value: factorRat}}}
		newChildren[i] = &Operator{Op: OpDiv, Children: []Node{newNum, newDen}}
	}
	return &Operator{Op: OpAdd, Children: newChildren}, changed(CommonDenominator)
}

// multiplyConstantsAndFractions applies to a * node whose children are
// all constants or constant fractions, with at least one fraction
// among them. It gathers every constant and numerator into a running
// numerator and every fraction denominator into a running denominator.
func multiplyConstantsAndFractions(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpMul || len(op.Children) < 2 {
		return n, unchanged
	}
	hasFraction := false
	numFactors := make([]Node, 0, len(op.Children))
	denFactors := make([]Node, 0)
	for _, c := range op.Children {
		if num, den, ok := AsConstantFraction(c); ok {
			hasFraction = true
			numFactors = append(numFactors, &Constant{Value: num})
			denFactors = append(denFactors, &Constant{Value: den})
			continue
		}
		if k, ok := c.(*Constant); ok {
			numFactors = append(numFactors, k)
			continue
		}
		return n, unchanged
	}
	if !hasFraction {
		return n, unchanged
	}
	numerator := collapseSingle(OpMul, numFactors)
	if len(denFactors) == 0 {
		return numerator, changed(MultiplyFractions)
	}
	denominator := collapseSingle(OpMul, denFactors)
	return &Operator{Op: OpDiv, Children: []Node{numerator, denominator}}, changed(MultiplyFractions)
}

func collapseSingle(op OpKind, children []Node) Node {
	if len(children) == 1 {
		return children[0]
	}
	return &Operator{Op: op, Children: children}
}

// simplifyFraction reduces a constant fraction with integer numerator
// and denominator by their gcd, canonicalizing the sign so the
// resulting denominator is positive, and unwraps to a bare Constant
// when the reduced denominator is 1.
func simplifyFraction(n Node) (Node, ChangeStatus) {
	num, den, ok := AsConstantFraction(n)
	if !ok || !num.IsInt() || !den.IsInt() || den.Sign() == 0 {
		return n, unchanged
	}
	numI, denI := num.Num(), den.Num()
	if den.Sign() < 0 {
		numI, denI = new(big.Int).Neg(numI), new(big.Int).Neg(denI)
	}
	g := gcdInt(numI, denI)
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		if den.Sign() < 0 {
			return &Operator{Op: OpDiv, Children: []Node{
				&Constant{Value: new(big.Rat).SetInt(numI)},
				&Constant{Value: new(big.Rat).SetInt(denI)},
			}}, changed(SimplifyFraction)
		}
		return n, unchanged
	}
	newNum := new(big.Int).Div(numI, g)
	newDen := new(big.Int).Div(denI, g)
	if newDen.Cmp(big.NewInt(1)) == 0 {
		return &Constant{Value: new(big.Rat).SetInt(newNum)}, changed(SimplifyFraction)
	}
	return &Operator{Op: OpDiv, Children: []Node{
		&Constant{Value: new(big.Rat).SetInt(newNum)},
		&Constant{Value: new(big.Rat).SetInt(newDen)},
	}}, changed(SimplifyFraction)
}
