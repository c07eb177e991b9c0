package mathsteps

import "math/big"

// cancel applies to a division whose numerator and denominator, viewed
// as products of factors, share something to remove: an identical
// subtree, a common symbol raised to different powers, or a common
// integer factor. It removes the smallest amount that resolves one
// shared factor and lets the driver's loop find the next.
//
// Pure constant fractions are left to the fraction rules (earlier in
// the fixed rule order); cancel only ever sees a division with at
// least one non-constant factor on one side.
func cancel(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpDiv || IsConstantFraction(op) {
		return n, unchanged
	}
	num, den := op.Children[0], op.Children[1]

	if result, ok := dividePolyTermByConstant(num, den); ok {
		return result, changed(DividePolyTerm)
	}

	if num.Equal(den) {
		return Int(1), changed(Cancel)
	}
	if u, ok := num.(*UnaryMinus); ok && u.Child.Equal(den) {
		return Int(-1), changed(Cancel)
	}
	if u, ok := den.(*UnaryMinus); ok && u.Child.Equal(num) {
		return Int(-1), changed(Cancel)
	}

	numFactors := factorsOf(num)
	denFactors := factorsOf(den)

	if result, ok := cancelExactMatch(numFactors, denFactors); ok {
		return result, changed(Cancel)
	}
	if result, ok := cancelSymbolPower(numFactors, denFactors); ok {
		return result, changed(Cancel)
	}
	if result, ok := cancelConstantGCD(numFactors, denFactors); ok {
		return result, changed(Cancel)
	}
	return n, unchanged
}

// dividePolyTermByConstant handles the case of an entire polynomial
// term divided by a plain constant, e.g. 6x/3 -> 2x or 5x/2 -> (5/2)x.
// This is distinct from the general per-factor cancellation below: it
// always fires when the denominator is a bare constant and the
// numerator's coefficient is a plain rational, folding the division
// into the coefficient in one step rather than waiting for a shared
// integer factor.
func dividePolyTermByConstant(num, den Node) (Node, bool) {
	denConst, ok := den.(*Constant)
	if !ok {
		return nil, false
	}
	t, ok := AsPolyTerm(num)
	if !ok {
		return nil, false
	}
	c, ok := coefficientAsRat(t)
	if !ok {
		return nil, false
	}
	result := new(big.Rat).Quo(c, denConst.Value)
	return polyTermFromRat(result, t.Symbol, t.Exponent), true
}

func polyTermFromRat(v *big.Rat, symbol string, exponent Node) Node {
	sign := 1
	if v.Sign() < 0 {
		sign = -1
		v = new(big.Rat).Neg(v)
	}
	var coef Node
	if v.Cmp(big.NewRat(1, 1)) != 0 {
		if v.IsInt() {
			coef = &Constant{Value: v}
		} else {
			coef = &Operator{Op: OpDiv, Children: []Node{
				&Constant{Value: new(big.Rat).SetInt(v.Num())},
				&Constant{Value: new(big.Rat).SetInt(v.Denom())},
			}}
		}
	}
	return Build(PolyTerm{Sign: sign, Coef: coef, Symbol: symbol, Exponent: exponent})
}

func factorsOf(n Node) []Node {
	if op, ok := n.(*Operator); ok && op.Op == OpMul {
		return op.Children
	}
	return []Node{n}
}

func cancelExactMatch(numFactors, denFactors []Node) (Node, bool) {
	for i, nf := range numFactors {
		for j, df := range denFactors {
			if nf.Equal(df) {
				return buildCancelResult(removeAt(numFactors, i), removeAt(denFactors, j)), true
			}
		}
	}
	return nil, false
}

// symbolPower recognizes n as symbol^exponent (exponent implicitly 1
// for a bare symbol) and returns the symbol name and exponent node.
func symbolPower(n Node) (string, Node, bool) {
	switch v := n.(type) {
	case *Symbol:
		return v.Name, Int(1), true
	case *Operator:
		if v.Op == OpPow {
			if sym, ok := v.Children[0].(*Symbol); ok {
				return sym.Name, v.Children[1], true
			}
		}
	}
	return "", nil, false
}

func cancelSymbolPower(numFactors, denFactors []Node) (Node, bool) {
	for i, nf := range numFactors {
		nSym, nExp, ok := symbolPower(nf)
		if !ok {
			continue
		}
		for j, df := range denFactors {
			dSym, dExp, ok := symbolPower(df)
			if !ok || dSym != nSym {
				continue
			}
			resultExp := combineExponents(nExp, dExp)
			replacement := polyPowerNode(nSym, resultExp)
			newNum := replaceOrRemove(numFactors, i, replacement)
			newDen := removeAt(denFactors, j)
			return buildCancelResult(newNum, newDen), true
		}
	}
	return nil, false
}

// combineExponents computes a-b, folding immediately when both sides
// are constant and otherwise building a symbolic difference for a
// later arithmetic or like-term step to resolve.
func combineExponents(a, b Node) Node {
	ac, aok := a.(*Constant)
	bc, bok := b.(*Constant)
	if aok && bok {
		return &Constant{Value: new(big.Rat).Sub(ac.Value, bc.Value)}
	}
	return Add(a, Neg(b))
}

// polyPowerNode builds the canonical node for symbol^exponent, dropping
// the factor entirely when the exponent is the constant zero and
// dropping the exponent when it is the constant one.
func polyPowerNode(symbol string, exponent Node) Node {
	if c, ok := exponent.(*Constant); ok {
		if c.IsZero() {
			return nil
		}
		if c.IsOne() {
			return Sym(symbol)
		}
	}
	return Exp(Sym(symbol), exponent)
}

func cancelConstantGCD(numFactors, denFactors []Node) (Node, bool) {
	for i, nf := range numFactors {
		nc, ok := nf.(*Constant)
		if !ok || !nc.IsInteger() {
			continue
		}
		for j, df := range denFactors {
			dc, ok := df.(*Constant)
			if !ok || !dc.IsInteger() {
				continue
			}
			g := gcdInt(nc.Value.Num(), dc.Value.Num())
			if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
				continue
			}
			newN := new(big.Int).Div(nc.Value.Num(), g)
			newD := new(big.Int).Div(dc.Value.Num(), g)
			var newNumNode Node
			if newN.Cmp(big.NewInt(1)) != 0 {
				newNumNode = &Constant{Value: new(big.Rat).SetInt(newN)}
			}
			newNum := replaceOrRemove(numFactors, i, newNumNode)
			newDen := replaceAt(denFactors, j, &Constant{Value: new(big.Rat).SetInt(newD)})
			return buildCancelResult(newNum, newDen), true
		}
	}
	return nil, false
}

func removeAt(factors []Node, idx int) []Node {
	out := make([]Node, 0, len(factors)-1)
	for i, f := range factors {
		if i != idx {
			out = append(out, f)
		}
	}
	return out
}

// replaceOrRemove replaces factors[idx] with replacement, or drops it
// entirely when replacement is nil.
func replaceOrRemove(factors []Node, idx int, replacement Node) []Node {
	if replacement == nil {
		return removeAt(factors, idx)
	}
	return replaceAt(factors, idx, replacement)
}

func replaceAt(factors []Node, idx int, replacement Node) []Node {
	out := make([]Node, len(factors))
	copy(out, factors)
	out[idx] = replacement
	return out
}

func buildCancelResult(numFactors, denFactors []Node) Node {
	var num Node = Int(1)
	if len(numFactors) > 0 {
		num = collapseSingle(OpMul, numFactors)
	}
	if len(denFactors) == 0 {
		return num
	}
	den := collapseSingle(OpMul, denFactors)
	return Frac(num, den)
}
