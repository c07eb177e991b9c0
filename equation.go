package mathsteps

import "math/big"

// Comparator is the relation between an equation's two sides.
type Comparator string

const (
	Eq Comparator = "="
	Lt Comparator = "<"
	Le Comparator = "<="
	Gt Comparator = ">"
	Ge Comparator = ">="
)

// Equation is (lhs, comparator, rhs).
type Equation struct {
	LHS, RHS   Node
	Comparator Comparator
}

// SolveStep is one balance operation applied to both sides while
// isolating the variable.
type SolveStep struct {
	Kind       ChangeKind
	LHS, RHS   Node
	Comparator Comparator
}

// SolveResult is the outcome of Solve: either a boolean verdict for a
// constant-only equation, or a fully isolated "symbol op constant"
// form with the trace of balance operations that produced it.
type SolveResult struct {
	Steps      []SolveStep
	Verdict    string // "True" or "False", set only for the constant-only fast path
	Variable   string
	Comparator Comparator
	Result     Node // the isolated RHS once LHS is "symbol"
	Text       string
}

// Solve isolates a single variable in eq: simplify both sides,
// normalize which side the variable is on, subtract shared variable
// terms, move constants off the variable side, then divide by the
// leading coefficient (flipping the comparator on a negative divisor).
// It fails with UnsolvableError when the degree in the variable
// exceeds one.
func Solve(eq Equation, opts Options) (SolveResult, error) {
	lhs, err := Simplify(eq.LHS, opts)
	if err != nil {
		return SolveResult{}, err
	}
	rhs, err := Simplify(eq.RHS, opts)
	if err != nil {
		return SolveResult{}, err
	}
	comparator := eq.Comparator

	varName, multi := findVariable(lhs, rhs)
	if multi {
		return SolveResult{}, &UnsolvableError{Reason: "more than one variable"}
	}
	if varName == "" {
		return SolveResult{Verdict: verdictString(compareConstants(lhs, rhs, comparator))}, nil
	}

	var steps []SolveStep
	const maxRounds = 32
	for i := 0; i < maxRounds; i++ {
		hasL := containsSymbol(lhs, varName)
		hasR := containsSymbol(rhs, varName)

		if !hasL && !hasR {
			return SolveResult{Verdict: verdictString(compareConstants(lhs, rhs, comparator))}, nil
		}

		if !hasL && hasR {
			lhs, rhs = rhs, lhs
			comparator = swapComparator(comparator)
			steps = append(steps, SolveStep{Kind: SwapSides, LHS: lhs, RHS: rhs, Comparator: comparator})
			continue
		}

		if hasL && hasR {
			coefL, _, okL := splitLinear(lhs, varName)
			coefR, _, okR := splitLinear(rhs, varName)
			if !okL || !okR {
				return SolveResult{}, &UnsolvableError{Reason: "degree greater than one in the variable"}
			}
			smaller := smallerCoefficient(coefL, coefR)
			term := Build(PolyTerm{Sign: sign(smaller), Coef: coefNodeOf(smaller), Symbol: varName})
			var errS error
			lhs, rhs, errS = subtractBothSides(lhs, rhs, term, opts)
			if errS != nil {
				return SolveResult{}, errS
			}
			steps = append(steps, SolveStep{Kind: SubtractFromBothSides, LHS: lhs, RHS: rhs, Comparator: comparator})
			continue
		}

		// hasL only: move constants, then divide by the coefficient.
		coef, constPart, ok := splitLinear(lhs, varName)
		if !ok {
			return SolveResult{}, &UnsolvableError{Reason: "degree greater than one in the variable"}
		}
		if !isZeroConst(constPart) {
			kind := SubtractFromBothSides
			if isNegativeSum(constPart) {
				kind = AddToBothSides
			}
			var errS error
			lhs, rhs, errS = subtractBothSides(lhs, rhs, constPart, opts)
			if errS != nil {
				return SolveResult{}, errS
			}
			steps = append(steps, SolveStep{Kind: kind, LHS: lhs, RHS: rhs, Comparator: comparator})
			continue
		}
		if coef.Cmp(big.NewRat(1, 1)) != 0 {
			coefNode := &Constant{Value: coef}
			newLHS, errL := Simplify(Frac(lhs, coefNode), opts)
			if errL != nil {
				return SolveResult{}, errL
			}
			newRHS, errR := Simplify(Frac(rhs, coefNode), opts)
			if errR != nil {
				return SolveResult{}, errR
			}
			lhs, rhs = newLHS, newRHS
			if coef.Sign() < 0 {
				comparator = flipComparator(comparator)
			}
			steps = append(steps, SolveStep{Kind: DivideFromBothSides, LHS: lhs, RHS: rhs, Comparator: comparator})
			continue
		}
		return SolveResult{
			Steps:      steps,
			Variable:   varName,
			Comparator: comparator,
			Result:     rhs,
			Text:       varName + " " + string(comparator) + " " + Print(rhs, PrintOptions{}),
		}, nil
	}
	return SolveResult{}, &UnsolvableError{Reason: "did not converge"}
}

func verdictString(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func subtractBothSides(lhs, rhs, term Node, opts Options) (Node, Node, error) {
	newLHS, err := Simplify(Add(lhs, Neg(term)), opts)
	if err != nil {
		return nil, nil, err
	}
	newRHS, err := Simplify(Add(rhs, Neg(term)), opts)
	if err != nil {
		return nil, nil, err
	}
	return newLHS, newRHS, nil
}

func swapComparator(c Comparator) Comparator {
	switch c {
	case Lt:
		return Gt
	case Gt:
		return Lt
	case Le:
		return Ge
	case Ge:
		return Le
	}
	return c
}

func flipComparator(c Comparator) Comparator { return swapComparator(c) }

func compareConstants(lhs, rhs Node, c Comparator) bool {
	lv, lok := constantValue(lhs)
	rv, rok := constantValue(rhs)
	if !lok || !rok {
		return false
	}
	cmp := lv.Cmp(rv)
	switch c {
	case Eq:
		return cmp == 0
	case Lt:
		return cmp < 0
	case Le:
		return cmp <= 0
	case Gt:
		return cmp > 0
	case Ge:
		return cmp >= 0
	}
	return false
}

// findVariable returns the single symbol name appearing in lhs or rhs.
// multi is true when more than one distinct name is present, which the
// solver does not support.
func findVariable(lhs, rhs Node) (name string, multi bool) {
	seen := map[string]bool{}
	collectSymbols(lhs, seen)
	collectSymbols(rhs, seen)
	if len(seen) > 1 {
		return "", true
	}
	for k := range seen {
		return k, false
	}
	return "", false
}

func collectSymbols(n Node, out map[string]bool) {
	switch v := n.(type) {
	case *Symbol:
		out[v.Name] = true
	case *UnaryMinus:
		collectSymbols(v.Child, out)
	case *Parenthesis:
		collectSymbols(v.Content, out)
	case *Function:
		collectSymbols(v.Arg, out)
	case *Operator:
		for _, c := range v.Children {
			collectSymbols(c, out)
		}
	}
}

func containsSymbol(n Node, name string) bool {
	found := false
	var walk func(Node)
	walk = func(n Node) {
		if found {
			return
		}
		switch v := n.(type) {
		case *Symbol:
			if v.Name == name {
				found = true
			}
		case *UnaryMinus:
			walk(v.Child)
		case *Parenthesis:
			walk(v.Content)
		case *Function:
			walk(v.Arg)
		case *Operator:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return found
}

// splitLinear decomposes a simplified expression into a numeric
// coefficient of varName^1 and the remaining variable-free part. ok is
// false when any addend uses varName at a degree other than exactly
// one, i.e. the expression is not linear in varName.
func splitLinear(n Node, varName string) (coef *big.Rat, constPart Node, ok bool) {
	addends := []Node{n}
	if op, isOp := n.(*Operator); isOp && op.Op == OpAdd {
		addends = op.Children
	}
	acc := big.NewRat(0, 1)
	var constTerms []Node
	for _, a := range addends {
		if t, isTerm := AsPolyTerm(a); isTerm && t.Symbol == varName && isExponentOne(t.Exponent) {
			c, isNum := coefficientAsRat(t)
			if !isNum {
				return nil, nil, false
			}
			acc = new(big.Rat).Add(acc, c)
			continue
		}
		if containsSymbol(a, varName) {
			return nil, nil, false
		}
		constTerms = append(constTerms, a)
	}
	return acc, collapseAddOrZero(constTerms), true
}

func isExponentOne(e Node) bool {
	if e == nil {
		return true
	}
	c, ok := e.(*Constant)
	return ok && c.IsOne()
}

func coefficientAsRat(t PolyTerm) (*big.Rat, bool) {
	base := big.NewRat(1, 1)
	if t.Coef != nil {
		if c, ok := t.Coef.(*Constant); ok {
			base = c.Value
		} else if num, den, ok := AsConstantFraction(t.Coef); ok {
			base = new(big.Rat).Quo(num, den)
		} else {
			return nil, false
		}
	}
	if t.Sign < 0 {
		base = new(big.Rat).Neg(base)
	}
	return base, true
}

func collapseAddOrZero(terms []Node) Node {
	if len(terms) == 0 {
		return Int(0)
	}
	return collapseAdd(terms)
}

func isZeroConst(n Node) bool {
	v, ok := constantValue(n)
	return ok && v.Sign() == 0
}

func isNegativeSum(n Node) bool {
	v, ok := constantValue(n)
	return ok && v.Sign() < 0
}

func smallerCoefficient(a, b *big.Rat) *big.Rat {
	if absRat(a).Cmp(absRat(b)) <= 0 {
		return a
	}
	return b
}

func sign(r *big.Rat) int {
	if r.Sign() < 0 {
		return -1
	}
	return 1
}

func coefNodeOf(r *big.Rat) Node {
	abs := absRat(r)
	if abs.Cmp(big.NewRat(1, 1)) == 0 {
		return nil
	}
	return &Constant{Value: abs}
}
