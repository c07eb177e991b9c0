package mathsteps

// simplifyDoubleUnaryMinus collapses -(-x) to x. It only looks one
// level deep per call; the driver's fixed-point loop handles arbitrary
// stacking by re-visiting the collapsed result.
func simplifyDoubleUnaryMinus(n Node) (Node, ChangeStatus) {
	outer, ok := n.(*UnaryMinus)
	if !ok {
		return n, unchanged
	}
	inner, ok := outer.Child.(*UnaryMinus)
	if !ok {
		return n, unchanged
	}
	return inner.Child, changed(DoubleUnaryMinus)
}

// absoluteValueRule folds abs(c) to |c| for a constant c, including a
// nested abs, and never leaves a simplified non-negative constant
// wrapped in abs.
func absoluteValueRule(n Node) (Node, ChangeStatus) {
	f, ok := n.(*Function)
	if !ok || f.Name != "abs" {
		return n, unchanged
	}
	if c, ok := f.Arg.(*Constant); ok {
		if c.IsNegative() {
			return &Constant{Value: absRat(c.Value)}, changed(AbsoluteValue)
		}
		return c, changed(AbsoluteValue)
	}
	if inner, ok := f.Arg.(*Function); ok && inner.Name == "abs" {
		return inner, changed(AbsoluteValue)
	}
	if u, ok := f.Arg.(*UnaryMinus); ok {
		return Abs(u.Child), changed(AbsoluteValue)
	}
	return n, unchanged
}
