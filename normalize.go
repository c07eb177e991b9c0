package mathsteps

import "math/big"

// Flatten normalizes a tree so it satisfies the flatness and
// canonical-sign invariants:
//  1. nested same-operator + / * chains collapse into one n-ary node
//  2. a - b becomes a + UnaryMinus(b)
//  3. a / b / c becomes a / (b * c)
//  4. constant-fraction denominators are made positive, with the sign
//     absorbed into the numerator
//
// Flatten is idempotent and is safe to re-run after any rewrite.
func Flatten(n Node) Node {
	switch v := n.(type) {
	case *Constant, *Symbol:
		return n

	case *UnaryMinus:
		return Neg(Flatten(v.Child))

	case *Parenthesis:
		return Paren(Flatten(v.Content))

	case *Function:
		return &Function{Name: v.Name, Arg: Flatten(v.Arg)}

	case *Operator:
		return flattenOperator(v)
	}
	return n
}

func flattenOperator(o *Operator) Node {
	switch o.Op {
	case OpSub:
		if len(o.Children) != 2 {
			break
		}
		return Flatten(Add(o.Children[0], Neg(o.Children[1])))

	case OpAdd:
		return flattenNAry(o, OpAdd)

	case OpMul:
		return flattenNAry(o, OpMul)

	case OpDiv:
		return flattenDiv(o)

	case OpPow:
		return &Operator{Op: OpPow, Children: []Node{Flatten(o.Children[0]), Flatten(o.Children[1])}}
	}
	return o
}

// flattenNAry collapses nested same-operator children into one level.
// A Parenthesis-wrapped child is left alone: it marks an intentional
// grouping and does not get absorbed. For a sum, a child that is a
// UnaryMinus wrapping a whole Add is also unwrapped, distributing the
// sign across the wrapped terms — the additive counterpart to
// buildFlattenedMul hoisting a product's sign outward.
func flattenNAry(o *Operator, op OpKind) Node {
	var out []Node
	for _, c := range o.Children {
		fc := Flatten(c)
		if inner, ok := fc.(*Operator); ok && inner.Op == op {
			out = append(out, inner.Children...)
			continue
		}
		if op == OpAdd {
			if u, ok := fc.(*UnaryMinus); ok {
				if inner, ok := u.Child.(*Operator); ok && inner.Op == OpAdd {
					out = append(out, negateEach(inner.Children)...)
					continue
				}
			}
		}
		out = append(out, fc)
	}
	if op == OpMul {
		return buildFlattenedMul(o.Implicit, out)
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Operator{Op: op, Implicit: o.Implicit, Children: out}
}

// negateEach negates every term of an addend list being spliced in
// after a sign was distributed across it, cancelling any existing
// UnaryMinus rather than double-wrapping it.
func negateEach(children []Node) []Node {
	out := make([]Node, len(children))
	for i, c := range children {
		if u, ok := c.(*UnaryMinus); ok {
			out[i] = u.Child
		} else {
			out[i] = Neg(c)
		}
	}
	return out
}

// buildFlattenedMul moves any UnaryMinus wrapping a direct factor of a
// product out to the product as a whole, so a Mul node's children are
// never themselves UnaryMinus nodes: a product's sign always lives on
// an outer UnaryMinus, never buried inside it. An even number of
// negated factors cancels out.
func buildFlattenedMul(implicit bool, children []Node) Node {
	negCount := 0
	factors := make([]Node, len(children))
	for i, c := range children {
		if u, ok := c.(*UnaryMinus); ok {
			negCount++
			factors[i] = u.Child
		} else {
			factors[i] = c
		}
	}
	var product Node
	if len(factors) == 1 {
		product = factors[0]
	} else {
		product = &Operator{Op: OpMul, Implicit: implicit, Children: factors}
	}
	if negCount%2 == 1 {
		return Neg(product)
	}
	return product
}

// flattenDiv rewrites a/b/c... chains into a single division whose
// denominator is the product of every divisor after the first, then
// canonicalizes the sign of a resulting constant fraction.
func flattenDiv(o *Operator) Node {
	num := Flatten(o.Children[0])
	den := Flatten(o.Children[1])

	// a / b / c -> a / (b*c): when num is itself a flattened division,
	// fold its denominator into the running product of divisors.
	if innerDiv, ok := num.(*Operator); ok && innerDiv.Op == OpDiv {
		num = innerDiv.Children[0]
		den = Mul(innerDiv.Children[1], den)
		den = Flatten(den)
	}

	result := &Operator{Op: OpDiv, Children: []Node{num, den}}
	return canonicalizeFractionSign(result)
}

// canonicalizeFractionSign enforces two things for a division whose
// numerator and denominator are each a Constant or a UnaryMinus of one:
// the denominator is positive (any negative sign absorbed into the
// numerator), and both operands end up as bare Constants, never a
// UnaryMinus wrapping one — a negative constant always lives directly
// in Constant.Value.
func canonicalizeFractionSign(n Node) Node {
	numV, ok1 := singleConstant(n.(*Operator).Children[0])
	denV, ok2 := singleConstant(n.(*Operator).Children[1])
	if !ok1 || !ok2 {
		return n
	}
	if denV.Sign() < 0 {
		numV = new(big.Rat).Neg(numV)
		denV = new(big.Rat).Neg(denV)
	}
	return &Operator{Op: OpDiv, Children: []Node{&Constant{Value: numV}, &Constant{Value: denV}}}
}

// singleConstant unwraps a bare Constant or a UnaryMinus of one,
// returning its signed value.
func singleConstant(n Node) (*big.Rat, bool) {
	switch v := n.(type) {
	case *Constant:
		return v.Value, true
	case *UnaryMinus:
		if c, ok := v.Child.(*Constant); ok {
			return new(big.Rat).Neg(c.Value), true
		}
	}
	return nil, false
}

// RemoveUnnecessaryParens strips a Parenthesis node whose content needs
// no grouping to be read on its own: a leaf, a unary minus, a function
// call, a power or a division (see parenIsRedundant). A Parenthesis
// around a sum or a product is kept wherever it appears; the
// surrounding operator is not consulted.
func RemoveUnnecessaryParens(n Node) Node {
	switch v := n.(type) {
	case *Constant, *Symbol:
		return n
	case *UnaryMinus:
		return Neg(RemoveUnnecessaryParens(v.Child))
	case *Function:
		return &Function{Name: v.Name, Arg: RemoveUnnecessaryParens(v.Arg)}
	case *Parenthesis:
		inner := RemoveUnnecessaryParens(v.Content)
		if parenIsRedundant(inner) {
			return inner
		}
		return Paren(inner)
	case *Operator:
		children := make([]Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = RemoveUnnecessaryParens(c)
		}
		return &Operator{Op: v.Op, Implicit: v.Implicit, Children: children}
	}
	return n
}

// parenIsRedundant reports whether wrapping n in parentheses adds no
// grouping information: leaves, unary minus, functions, powers, and
// divisions never need a surrounding paren to be read correctly on
// their own.
func parenIsRedundant(n Node) bool {
	switch n.(type) {
	case *Constant, *Symbol, *UnaryMinus, *Function:
		return true
	case *Operator:
		op := n.(*Operator)
		return op.Op == OpPow || op.Op == OpDiv
	}
	return false
}

// arithmeticSearch folds a fully-constant Operator subtree into a
// single Constant using exact rational arithmetic. It never folds a
// division of two integers into a non-integer result — that shape is
// the canonical constant fraction — but it does fold a division that
// reduces exactly, e.g. 6/2 -> 3.
func arithmeticSearch(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || !IsFullyConstant(op) {
		return n, unchanged
	}
	if op.Op == OpDiv {
		return arithmeticSearchDiv(op)
	}
	if op.Op == OpPow {
		return arithmeticSearchPow(op)
	}

	acc, ok := constantValue(op.Children[0])
	if !ok {
		return n, unchanged
	}
	for _, c := range op.Children[1:] {
		v, ok := constantValue(c)
		if !ok {
			return n, unchanged
		}
		switch op.Op {
		case OpAdd:
			acc = new(big.Rat).Add(acc, v)
		case OpMul:
			acc = new(big.Rat).Mul(acc, v)
		default:
			return n, unchanged
		}
	}
	return &Constant{Value: acc}, changed(Arithmetic)
}

func arithmeticSearchDiv(op *Operator) (Node, ChangeStatus) {
	num, ok1 := constantValue(op.Children[0])
	den, ok2 := constantValue(op.Children[1])
	if !ok1 || !ok2 || den.Sign() == 0 {
		return op, unchanged
	}
	result := new(big.Rat).Quo(num, den)
	if result.IsInt() {
		return &Constant{Value: result}, changed(Arithmetic)
	}
	return op, unchanged
}

func arithmeticSearchPow(op *Operator) (Node, ChangeStatus) {
	base, ok1 := constantValue(op.Children[0])
	exp, ok2 := constantValue(op.Children[1])
	if !ok1 || !ok2 || !exp.IsInt() {
		return op, unchanged
	}
	e := exp.Num().Int64()
	if e < 0 || e > 64 {
		return op, unchanged
	}
	result := big.NewRat(1, 1)
	for i := int64(0); i < e; i++ {
		result = new(big.Rat).Mul(result, base)
	}
	return &Constant{Value: result}, changed(Arithmetic)
}

func constantValue(n Node) (*big.Rat, bool) {
	switch v := n.(type) {
	case *Constant:
		return v.Value, true
	case *UnaryMinus:
		inner, ok := constantValue(v.Child)
		if !ok {
			return nil, false
		}
		return new(big.Rat).Neg(inner), true
	}
	return nil, false
}

// collapseConstantFactors folds every direct Constant child of a Mul
// into one, for the case arithmeticSearch does not cover: a product
// with a mix of constant and non-constant factors, e.g. 2*x^2*3. It
// leaves the non-constant factors and their order untouched.
func collapseConstantFactors(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpMul {
		return n, unchanged
	}
	var idx []int
	for i, c := range op.Children {
		if _, ok := c.(*Constant); ok {
			idx = append(idx, i)
		}
	}
	if len(idx) < 2 {
		return n, unchanged
	}
	inSet := make(map[int]bool, len(idx))
	acc := big.NewRat(1, 1)
	for _, i := range idx {
		inSet[i] = true
		acc = new(big.Rat).Mul(acc, op.Children[i].(*Constant).Value)
	}
	newChildren := make([]Node, 0, len(op.Children)-len(idx)+1)
	placed := false
	for i, c := range op.Children {
		if inSet[i] {
			if !placed {
				newChildren = append(newChildren, &Constant{Value: acc})
				placed = true
			}
			continue
		}
		newChildren = append(newChildren, c)
	}
	return collapseSingle(OpMul, newChildren), changed(Arithmetic)
}

// collapseConstantAddends folds every direct constant addend of a sum
// (a bare Constant or a UnaryMinus of one) into a single constant, for
// the case arithmeticSearch does not cover: a sum with a mix of
// constant and non-constant addends, e.g. 2*x + 3 - 3. When the folded
// value is zero and other addends remain, it is dropped entirely
// rather than reinserted, so a canceled constant term does not linger
// in the tree as "+ 0".
func collapseConstantAddends(n Node) (Node, ChangeStatus) {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpAdd {
		return n, unchanged
	}
	var idx []int
	for i, c := range op.Children {
		if isConstantAddend(c) {
			idx = append(idx, i)
		}
	}
	if len(idx) < 2 {
		return n, unchanged
	}
	inSet := make(map[int]bool, len(idx))
	acc := big.NewRat(0, 1)
	for _, i := range idx {
		inSet[i] = true
		v, _ := constantValue(op.Children[i])
		acc = new(big.Rat).Add(acc, v)
	}
	newChildren := make([]Node, 0, len(op.Children)-len(idx)+1)
	placed := acc.Sign() == 0
	for i, c := range op.Children {
		if inSet[i] {
			if !placed {
				newChildren = append(newChildren, &Constant{Value: acc})
				placed = true
			}
			continue
		}
		newChildren = append(newChildren, c)
	}
	return collapseSingle(OpAdd, newChildren), changed(Arithmetic)
}

func isConstantAddend(n Node) bool {
	switch v := n.(type) {
	case *Constant:
		return true
	case *UnaryMinus:
		_, ok := v.Child.(*Constant)
		return ok
	}
	return false
}
