package mathsteps

// PolyTerm is a lens over a subtree shaped like coef * symbol^exponent.
// Coef and Exponent are nil when implicit (coefficient 1, exponent 1);
// Sign carries a coefficient's sign separately so a bare "-x" (no
// explicit numeric coefficient) is still representable.
type PolyTerm struct {
	Sign     int  // +1 or -1
	Coef     Node // non-nil only when an explicit numeric coefficient was present
	Symbol   string
	Exponent Node // non-nil only when an explicit exponent was present
}

// Build reconstructs the canonical subtree for t.
func Build(t PolyTerm) Node {
	var body Node = Sym(t.Symbol)
	if t.Exponent != nil {
		body = Exp(Sym(t.Symbol), t.Exponent)
	}
	if t.Coef != nil {
		body = Mul(t.Coef, body)
	}
	if t.Sign < 0 {
		body = Neg(body)
	}
	return body
}

// AsPolyTerm recognizes n as a polynomial term, checked bottom-up:
//   - a lone Symbol is a term with coefficient 1, exponent 1
//   - Symbol^anything is a term with that exponent
//   - Constant*rest or (Constant/Constant)*rest, where rest is one of
//     the above, is a term with that coefficient
//   - UnaryMinus of a term is a term with negated sign
func AsPolyTerm(n Node) (PolyTerm, bool) {
	switch v := n.(type) {
	case *Symbol:
		return PolyTerm{Sign: 1, Symbol: v.Name}, true

	case *UnaryMinus:
		inner, ok := AsPolyTerm(v.Child)
		if !ok {
			return PolyTerm{}, false
		}
		inner.Sign = -inner.Sign
		return inner, true

	case *Operator:
		switch v.Op {
		case OpPow:
			sym, ok := v.Children[0].(*Symbol)
			if !ok {
				return PolyTerm{}, false
			}
			return PolyTerm{Sign: 1, Symbol: sym.Name, Exponent: v.Children[1]}, true

		case OpMul:
			if len(v.Children) != 2 {
				return PolyTerm{}, false
			}
			coef := v.Children[0]
			if !isNumericCoefficient(coef) {
				return PolyTerm{}, false
			}
			rest, ok := AsPolyTerm(v.Children[1])
			if !ok {
				return PolyTerm{}, false
			}
			sign := 1
			if rest.Sign < 0 {
				sign = -1
			}
			return PolyTerm{Sign: sign, Coef: coef, Symbol: rest.Symbol, Exponent: rest.Exponent}, true
		}
	}
	return PolyTerm{}, false
}

func isNumericCoefficient(n Node) bool {
	if _, ok := n.(*Constant); ok {
		return true
	}
	return IsConstantFraction(n)
}

// SameExponent reports whether two polynomial-term exponent slots are
// structurally identical, treating two nils (both implicit 1) as equal.
func SameExponent(a, b Node) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(b)
}

// CoefOrOne returns t's coefficient node, defaulting to the constant 1
// when the term carries no explicit coefficient.
func CoefOrOne(t PolyTerm) Node {
	if t.Coef == nil {
		return Int(1)
	}
	return t.Coef
}

// SignedCoef returns t's coefficient combined with its sign, as a
// single expression suitable for arithmetic (e.g. summing like terms).
func SignedCoef(t PolyTerm) Node {
	c := CoefOrOne(t)
	if t.Sign < 0 {
		return Neg(c)
	}
	return c
}
