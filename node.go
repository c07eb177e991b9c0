// Package mathsteps implements a deterministic, step-annotated symbolic
// algebra rewrite engine.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat), no floating point
//   - One rule fires per step; every step names a ChangeKind
//   - Deterministic rule ordering: same input, same trace, every time
//   - Embeddable in CLIs, HTTP services, and pedagogical front-ends
package mathsteps

import (
	"math/big"
)

// OpKind names an n-ary or binary operator.
type OpKind string

const (
	OpAdd OpKind = "+"
	OpSub OpKind = "-" // only ever appears pre-flatten
	OpMul OpKind = "*"
	OpDiv OpKind = "/"
	OpPow OpKind = "^"
)

// Node is any node in an expression tree. The concrete kinds are
// Operator, UnaryMinus, Parenthesis, Constant, Symbol, and Function.
// Implementations are treated as immutable values: a rewrite produces a
// new Node rather than mutating an existing one.
type Node interface {
	// String renders the node using default ASCII printing rules.
	// Prefer Print for control over formatting; String exists so Node
	// satisfies fmt.Stringer for logs and test failures.
	String() string

	// Equal reports structural (not semantic) equality: the same node
	// shape, source-order children, and equal constant values. It does
	// not evaluate or normalize either side first.
	Equal(other Node) bool

	// isNode is unexported so Node cannot be implemented outside this
	// package; the rewrite engine assumes a closed set of kinds.
	isNode()
}

// Operator is an n-ary (+, *) or binary (-, /, ^) operator node.
type Operator struct {
	Op       OpKind
	Implicit bool // set when the source had no explicit '*'; print-only
	Children []Node
}

func (*Operator) isNode() {}

// NewOperator builds an Operator node. It does not flatten or validate
// arity; callers that need the flatness invariant should run Flatten.
func NewOperator(op OpKind, children ...Node) *Operator {
	return &Operator{Op: op, Children: children}
}

// Add constructs a raw (possibly nested) n-ary sum.
func Add(children ...Node) *Operator { return NewOperator(OpAdd, children...) }

// Mul constructs a raw (possibly nested) n-ary product.
func Mul(children ...Node) *Operator { return NewOperator(OpMul, children...) }

// Frac constructs a binary division node.
func Frac(num, den Node) *Operator { return NewOperator(OpDiv, num, den) }

// Exp constructs a binary power node.
func Exp(base, exponent Node) *Operator { return NewOperator(OpPow, base, exponent) }

func (o *Operator) Equal(other Node) bool {
	oo, ok := other.(*Operator)
	if !ok || oo.Op != o.Op || len(oo.Children) != len(o.Children) {
		return false
	}
	for i := range o.Children {
		if !o.Children[i].Equal(oo.Children[i]) {
			return false
		}
	}
	return true
}

// UnaryMinus negates a single child. Post-flatten, subtraction is
// always represented as Add(a, UnaryMinus(b)).
type UnaryMinus struct{ Child Node }

func (*UnaryMinus) isNode() {}

// Neg builds a UnaryMinus node.
func Neg(child Node) *UnaryMinus { return &UnaryMinus{Child: child} }

func (u *UnaryMinus) Equal(other Node) bool {
	ou, ok := other.(*UnaryMinus)
	return ok && u.Child.Equal(ou.Child)
}

// Parenthesis marks an intentional, source-level grouping. Most
// parentheses are stripped by RemoveUnnecessaryParens; the ones that
// survive change how flattening treats an operator child.
type Parenthesis struct{ Content Node }

func (*Parenthesis) isNode() {}

// Paren wraps a node in an explicit grouping.
func Paren(content Node) *Parenthesis { return &Parenthesis{Content: content} }

func (p *Parenthesis) Equal(other Node) bool {
	op, ok := other.(*Parenthesis)
	return ok && p.Content.Equal(op.Content)
}

// Constant is an exact rational leaf.
type Constant struct{ Value *big.Rat }

func (*Constant) isNode() {}

// Int builds an integer constant.
func Int(n int64) *Constant { return &Constant{Value: big.NewRat(n, 1)} }

// Rat builds a rational constant num/den. Panics if den is zero, the
// same contract math/big.Rat.SetFrac64 uses.
func Rat(num, den int64) *Constant { return &Constant{Value: big.NewRat(num, den)} }

func (c *Constant) Equal(other Node) bool {
	oc, ok := other.(*Constant)
	return ok && c.Value.Cmp(oc.Value) == 0
}

// IsZero reports whether the constant's value is exactly zero.
func (c *Constant) IsZero() bool { return c.Value.Sign() == 0 }

// IsOne reports whether the constant's value is exactly one.
func (c *Constant) IsOne() bool { return c.Value.Cmp(big.NewRat(1, 1)) == 0 }

// IsNegative reports whether the constant's value is strictly negative.
func (c *Constant) IsNegative() bool { return c.Value.Sign() < 0 }

// IsInteger reports whether the constant reduces to a whole number.
func (c *Constant) IsInteger() bool { return c.Value.IsInt() }

// Symbol is a named variable leaf.
type Symbol struct{ Name string }

func (*Symbol) isNode() {}

// Sym builds a symbol leaf.
func Sym(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) Equal(other Node) bool {
	os, ok := other.(*Symbol)
	return ok && s.Name == os.Name
}

// Function is a named single-argument function application. The only
// function the core engine simplifies is "abs"; other names round-trip
// through the tree unevaluated (see UnsupportedExpression).
type Function struct {
	Name string
	Arg  Node
}

func (*Function) isNode() {}

// Abs builds an abs(arg) function node.
func Abs(arg Node) *Function { return &Function{Name: "abs", Arg: arg} }

func (f *Function) Equal(other Node) bool {
	of, ok := other.(*Function)
	return ok && f.Name == of.Name && f.Arg.Equal(of.Arg)
}

// --- shape predicates -------------------------------------------------

// IsConstantFraction reports whether n is exactly Operator('/', [Constant, Constant]).
func IsConstantFraction(n Node) bool {
	op, ok := n.(*Operator)
	if !ok || op.Op != OpDiv || len(op.Children) != 2 {
		return false
	}
	_, numOK := op.Children[0].(*Constant)
	_, denOK := op.Children[1].(*Constant)
	return numOK && denOK
}

// AsConstantFraction extracts the numerator and denominator of a
// constant fraction. Ok is false if n is not that shape.
func AsConstantFraction(n Node) (num, den *big.Rat, ok bool) {
	op, isOp := n.(*Operator)
	if !isOp || op.Op != OpDiv || len(op.Children) != 2 {
		return nil, nil, false
	}
	nc, numOK := op.Children[0].(*Constant)
	dc, denOK := op.Children[1].(*Constant)
	if !numOK || !denOK {
		return nil, nil, false
	}
	return nc.Value, dc.Value, true
}

// IsFullyConstant reports whether every leaf of the subtree is a
// Constant (arithmeticSearch's precondition).
func IsFullyConstant(n Node) bool {
	switch v := n.(type) {
	case *Constant:
		return true
	case *Symbol, *Function:
		return false
	case *UnaryMinus:
		return IsFullyConstant(v.Child)
	case *Parenthesis:
		return IsFullyConstant(v.Content)
	case *Operator:
		for _, c := range v.Children {
			if !IsFullyConstant(c) {
				return false
			}
		}
		return true
	}
	return false
}

// operatorChildren returns n's Children slice itself (not a copy) when
// n is an Operator, or nil for leaves and single-child wrappers.
func operatorChildren(n Node) []Node {
	if op, ok := n.(*Operator); ok {
		return op.Children
	}
	return nil
}
