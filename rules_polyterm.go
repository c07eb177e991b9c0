package mathsteps

// combineLikeTerms groups the children of a + node by (symbol,
// exponent) and rewrites each group of size >= 2 into a single term
// whose coefficient is the sum of the group's coefficients. A missing
// coefficient is treated as 1. Non-polynomial-term children (numbers,
// other subtrees) pass through untouched.
func combineLikeTerms(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpAdd {
		return n, unchanged
	}

	type group struct {
		symbol   string
		exponent Node
		indices  []int
	}
	var groups []*group
	for i, c := range op.Children {
		t, ok := AsPolyTerm(c)
		if !ok {
			continue
		}
		var g *group
		for _, existing := range groups {
			if existing.symbol == t.Symbol && SameExponent(existing.exponent, t.Exponent) {
				g = existing
				break
			}
		}
		if g == nil {
			g = &group{symbol: t.Symbol, exponent: t.Exponent}
			groups = append(groups, g)
		}
		g.indices = append(g.indices, i)
	}

	for _, g := range groups {
		if len(g.indices) < 2 {
			continue
		}
		coefTerms := make([]Node, len(g.indices))
		for i, idx := range g.indices {
			t, _ := AsPolyTerm(op.Children[idx])
			coefTerms[i] = SignedCoef(t)
		}
		combinedCoef := &Operator{Op: OpAdd, Children: coefTerms}
		newTerm := Build(PolyTerm{Sign: 1, Coef: combinedCoef, Symbol: g.symbol, Exponent: g.exponent})

		newChildren := make([]Node, 0, len(op.Children)-len(g.indices)+1)
		inGroup := make(map[int]bool, len(g.indices))
		for _, idx := range g.indices {
			inGroup[idx] = true
		}
		placed := false
		for i, c := range op.Children {
			if inGroup[i] {
				if !placed {
					newChildren = append(newChildren, newTerm)
					placed = true
				}
				continue
			}
			newChildren = append(newChildren, c)
		}
		return collapseAdd(newChildren), changed(CombineLikeTerms)
	}
	return n, unchanged
}

func collapseAdd(children []Node) Node {
	if len(children) == 1 {
		return children[0]
	}
	return &Operator{Op: OpAdd, Children: children}
}

// multiplyLikeTerms groups the children of a * node by symbol,
// ignoring exponent, and rewrites each group of size >= 2 into
// symbol^(sum of exponents), multiplying coefficients along the way.
// x*x -> x^2; 2x*3x -> 6x^2; x^a*x^b -> x^(a+b) even for non-constant
// exponents.
func multiplyLikeTerms(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpMul {
		return n, unchanged
	}

	type group struct {
		symbol    string
		exponents []Node
		coefs     []Node
		signs     []int
		indices   []int
	}
	var groups []*group
	for i, c := range op.Children {
		t, ok := AsPolyTerm(c)
		if !ok {
			continue
		}
		var g *group
		for _, existing := range groups {
			if existing.symbol == t.Symbol {
				g = existing
				break
			}
		}
		if g == nil {
			g = &group{symbol: t.Symbol}
			groups = append(groups, g)
		}
		g.exponents = append(g.exponents, exponentOrOne(t.Exponent))
		g.coefs = append(g.coefs, CoefOrOne(t))
		g.signs = append(g.signs, t.Sign)
		g.indices = append(g.indices, i)
	}

	for _, g := range groups {
		if len(g.indices) < 2 {
			continue
		}
		combinedExp := collapseAdd(g.exponents)
		var coefFactors []Node
		sign := 1
		for i, c := range g.coefs {
			sign *= g.signs[i]
			if ci, ok := c.(*Constant); !ok || !ci.IsOne() {
				coefFactors = append(coefFactors, c)
			}
		}
		newTerm := Build(PolyTerm{Sign: sign, Coef: collapseCoefFactors(coefFactors), Symbol: g.symbol, Exponent: combinedExp})

		inGroup := make(map[int]bool, len(g.indices))
		for _, idx := range g.indices {
			inGroup[idx] = true
		}
		var newChildren []Node
		placed := false
		for i, c := range op.Children {
			if inGroup[i] {
				if !placed {
					newChildren = append(newChildren, newTerm)
					placed = true
				}
				continue
			}
			newChildren = append(newChildren, c)
		}
		return collapseSingle(OpMul, newChildren), changed(MultiplyPolyTerms)
	}
	return n, unchanged
}

func exponentOrOne(e Node) Node {
	if e == nil {
		return Int(1)
	}
	return e
}

func collapseCoefFactors(factors []Node) Node {
	if len(factors) == 0 {
		return nil
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return &Operator{Op: OpMul, Children: factors}
}

// multiplyCoefficientAndPolyTerm drops a coefficient of exactly 1 in
// front of a bare symbol^exponent, leaving the power alone. A product
// with any other constant coefficient is already a single
// polynomial-term node and is left unchanged.
func multiplyCoefficientAndPolyTerm(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpMul || len(op.Children) != 2 {
		return n, unchanged
	}
	coef, ok := op.Children[0].(*Constant)
	if !ok {
		return n, unchanged
	}
	pow, ok := op.Children[1].(*Operator)
	if !ok || pow.Op != OpPow {
		return n, unchanged
	}
	if _, ok := pow.Children[0].(*Symbol); !ok {
		return n, unchanged
	}
	if coef.IsOne() {
		return pow, changed(MultiplyPolyTerms)
	}
	return n, unchanged
}
