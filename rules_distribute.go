package mathsteps

// distribute expands a product against a summed factor, or unrolls a
// small positive integer power of a sum into one extra copy of the
// base. Both shapes reduce to the same underlying operation: the
// driver's Flatten pass after every step re-merges any resulting
// nested Mul so a three-or-more-factor product with several summed
// factors gets fully expanded over a handful of steps.
//
// Distribution over a parenthesized sum whose own coefficient is a
// fraction containing the variable (e.g. 2(x+3)/3) is known-fragile;
// this rule does not special-case it, so such an input distributes
// structurally but a later fraction rule may not fully clean up the
// result.
func distribute(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok {
		return n, unchanged
	}
	switch op.Op {
	case OpPow:
		return distributePow(op)
	case OpMul:
		return distributeMul(op)
	}
	return n, unchanged
}

func distributePow(op *Operator) (Node, ChangeStatus) {
	base, exp := op.Children[0], op.Children[1]
	if _, ok := unwrapSum(base); !ok {
		return op, unchanged
	}
	c, ok := exp.(*Constant)
	if !ok || !c.IsInteger() || c.IsNegative() {
		return op, unchanged
	}
	e := c.Value.Num().Int64()
	if e < 2 || e > 12 {
		return op, unchanged
	}
	if e == 2 {
		return Mul(base, base), changed(Distribute)
	}
	return Mul(base, Exp(base, Int(e-1))), changed(Distribute)
}

func distributeMul(op *Operator) (Node, ChangeStatus) {
	for i, c := range op.Children {
		terms, ok := unwrapSum(c)
		if !ok {
			continue
		}
		rest := otherFactors(op.Children, i)
		newTerms := make([]Node, len(terms))
		for j, t := range terms {
			newTerms[j] = Mul(t, cloneFactor(rest))
		}
		return collapseAdd(newTerms), changed(Distribute)
	}
	return op, unchanged
}

// unwrapSum reports whether n is a summed grouping: either a bare Add
// node (a Mul may contain one directly under the flatness invariant)
// or a Parenthesis wrapping one.
func unwrapSum(n Node) ([]Node, bool) {
	switch v := n.(type) {
	case *Operator:
		if v.Op == OpAdd {
			return v.Children, true
		}
	case *Parenthesis:
		if add, ok := v.Content.(*Operator); ok && add.Op == OpAdd {
			return add.Children, true
		}
	}
	return nil, false
}

func otherFactors(children []Node, skip int) Node {
	var rest []Node
	for i, c := range children {
		if i != skip {
			rest = append(rest, c)
		}
	}
	return collapseSingle(OpMul, rest)
}

// cloneFactor returns n unchanged: nodes are treated as immutable
// values, so the several products distribution produces are free to
// share the same subtree.
func cloneFactor(n Node) Node { return n }
