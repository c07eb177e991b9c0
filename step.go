package mathsteps

import "time"

// rule is one entry in the fixed-order rule list tried at each node.
type rule func(Node) (Node, ChangeStatus)

// rules is the fixed evaluation order: arithmetic collapse, then sign
// rules, then fraction rules, then polynomial-term rules, then
// distribution, then cancellation. Order matters: at a given node, the
// first rule in this list that reports a change wins.
var rules = []rule{
	arithmeticSearch,
	collapseConstantFactors,
	collapseConstantAddends,
	simplifyDoubleUnaryMinus,
	absoluteValueRule,
	addConstantFractions,
	multiplyConstantsAndFractions,
	simplifyFraction,
	combineLikeTerms,
	multiplyLikeTerms,
	multiplyCoefficientAndPolyTerm,
	distribute,
	cancel,
}

// Options tunes Simplify and StepThrough beyond their defaults. The
// zero value uses the default iteration cap and no deadline.
type Options struct {
	// MaxSteps caps the number of rule firings before RuleLoop is
	// reported. Zero means the default cap of 1024.
	MaxSteps int
	// Deadline, if non-zero, is checked between rule firings (never
	// mid-rule); exceeding it returns a *DeadlineExceededError carrying
	// the trace so far, in the same way RuleLoop is reported.
	Deadline time.Time
}

const defaultMaxSteps = 1024

func (o Options) maxSteps() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return defaultMaxSteps
}

// StepRecord is one entry in a simplification trace: the kind of
// change that fired and the tree immediately after it.
type StepRecord struct {
	Kind ChangeKind
	Tree Node
}

// Step performs a single rewrite: a post-order (innermost-first) DFS
// that tries the fixed rule list at each node and returns as soon as
// one rule fires anywhere in the tree. If no rule fires, it reports
// ChangeStatus{Changed: false} and returns n unchanged.
func Step(n Node) (Node, ChangeStatus) {
	if newChild, status, ok := stepChildren(n); ok {
		return newChild, status
	}
	for _, r := range rules {
		if out, status := r(n); status.Changed {
			return normalizeAfterStep(out), status
		}
	}
	return n, unchanged
}

// stepChildren recurses into n's children in source order, returning
// the first child-level change found along with n rebuilt around it.
func stepChildren(n Node) (Node, ChangeStatus, bool) {
	switch v := n.(type) {
	case *Operator:
		for i, c := range v.Children {
			if newChild, status := Step(c); status.Changed {
				children := make([]Node, len(v.Children))
				copy(children, v.Children)
				children[i] = newChild
				return normalizeAfterStep(&Operator{Op: v.Op, Implicit: v.Implicit, Children: children}), status, true
			}
		}
	case *UnaryMinus:
		if newChild, status := Step(v.Child); status.Changed {
			return normalizeAfterStep(Neg(newChild)), status, true
		}
	case *Parenthesis:
		if newChild, status := Step(v.Content); status.Changed {
			return normalizeAfterStep(Paren(newChild)), status, true
		}
	case *Function:
		if newChild, status := Step(v.Arg); status.Changed {
			return normalizeAfterStep(&Function{Name: v.Name, Arg: newChild}), status, true
		}
	}
	return nil, unchanged, false
}

// normalizeAfterStep restores the flatness, canonical-sign, and
// unnecessary-parenthesis invariants after a rule may have disturbed
// them. It runs after every rewrite, since any rule may produce a
// subtree that violates flatness or the sign convention.
func normalizeAfterStep(n Node) Node {
	return RemoveUnnecessaryParens(Flatten(n))
}

// hasUnresolvedAddUnaryMinus reports whether the tree contains an Add
// node with a UnaryMinus child, the shape the display-only
// ResolveAddUnaryMinus step marks as resolved. The engine always
// represents subtraction this way and always prints it as "a - b" (see
// print.go), so resolving it changes nothing structurally; it exists
// purely so a front-end sees one explicit step naming that the
// "a + -b" internal form now displays as subtraction.
func hasUnresolvedAddUnaryMinus(n Node) bool {
	switch v := n.(type) {
	case *Operator:
		if v.Op == OpAdd {
			for _, c := range v.Children {
				if _, ok := c.(*UnaryMinus); ok {
					return true
				}
			}
		}
		for _, c := range v.Children {
			if hasUnresolvedAddUnaryMinus(c) {
				return true
			}
		}
	case *UnaryMinus:
		return hasUnresolvedAddUnaryMinus(v.Child)
	case *Parenthesis:
		return hasUnresolvedAddUnaryMinus(v.Content)
	case *Function:
		return hasUnresolvedAddUnaryMinus(v.Arg)
	}
	return false
}

// findUnsupportedFunction returns the first Function node in n whose
// name the engine does not evaluate, or nil if every function call in
// the tree is "abs".
func findUnsupportedFunction(n Node) Node {
	switch v := n.(type) {
	case *Function:
		if v.Name != "abs" {
			return v
		}
		return findUnsupportedFunction(v.Arg)
	case *Operator:
		for _, c := range v.Children {
			if bad := findUnsupportedFunction(c); bad != nil {
				return bad
			}
		}
	case *UnaryMinus:
		return findUnsupportedFunction(v.Child)
	case *Parenthesis:
		return findUnsupportedFunction(v.Content)
	}
	return nil
}

// Simplify iterates Step to a fixed point, capped by opts (or the
// default cap). It never loops forever: on any error, including
// exceeding the cap, it returns its input n unchanged alongside the
// error; a *RuleLoopError carries the steps taken before the cap.
func Simplify(n Node, opts Options) (Node, error) {
	trace, err := StepThrough(n, opts)
	if err != nil {
		return n, err
	}
	if len(trace) == 0 {
		return Flatten(n), nil
	}
	return trace[len(trace)-1].Tree, nil
}

// StepThrough returns the full ordered trace of (change kind,
// tree-after) records produced by repeatedly calling Step, starting
// from Flatten(n), until no rule fires or opts' cap/deadline is hit.
func StepThrough(n Node, opts Options) ([]StepRecord, error) {
	tree := RemoveUnnecessaryParens(Flatten(n))

	if bad := findUnsupportedFunction(tree); bad != nil {
		return nil, &UnsupportedExpressionError{Node: bad}
	}

	var trace []StepRecord

	if hasUnresolvedAddUnaryMinus(tree) {
		trace = append(trace, StepRecord{Kind: ResolveAddUnaryMinus, Tree: tree})
	}

	max := opts.maxSteps()
	for i := 0; i < max; i++ {
		if !opts.Deadline.IsZero() && time.Now().After(opts.Deadline) {
			return trace, &DeadlineExceededError{Trace: trace}
		}
		next, status := Step(tree)
		if !status.Changed {
			return trace, nil
		}
		tree = next
		trace = append(trace, StepRecord{Kind: status.Kind, Tree: tree})
	}
	return trace, &RuleLoopError{Trace: trace}
}
