package mathsteps

import (
	"fmt"
	"math/big"
	"strings"
)

// PrintOptions controls the pretty-printer's output format.
type PrintOptions struct {
	// LaTeX selects LaTeX rendering; the zero value renders ASCII math.
	LaTeX bool
	// ExplicitPlusMinus disables the "a + (-b) prints as a - b" contract,
	// rendering "a + -b" instead. Used by tests that need to see the
	// UnaryMinus explicitly.
	ExplicitPlusMinus bool
	// Colors maps a ColorGroup index (see Colored) to a LaTeX color name.
	// Ignored in ASCII mode.
	Colors map[int]string
}

// Print renders n according to the following contract:
//   - a + (-b) prints as a - b unless ExplicitPlusMinus is set
//   - constant-fraction division prints without spaces: 2/3
//   - other division prints with spaces: x / y
//   - a polynomial term with a fraction coefficient prints as "2/3 x^2"
//   - unary minus on an operator child is parenthesized: -(a+b); on a
//     leaf it is not: -x
//   - ASCII exponents use ^; LaTeX exponents use {base}^{exp}
func Print(n Node, opts PrintOptions) string {
	p := &printer{opts: opts}
	return p.print(n, colorGroupOf(n))
}

func colorGroupOf(n Node) int {
	if g, ok := n.(interface{ ColorGroup() int }); ok {
		return g.ColorGroup()
	}
	return -1
}

type printer struct{ opts PrintOptions }

func (p *printer) wrapColor(s string, group int) string {
	if !p.opts.LaTeX || group < 0 {
		return s
	}
	name, ok := p.opts.Colors[group]
	if !ok {
		return s
	}
	return fmt.Sprintf(`\textcolor{%s}{%s}`, name, s)
}

func (p *printer) print(n Node, group int) string {
	if c, ok := n.(*Colored); ok {
		return p.print(c.Node, c.Group)
	}
	switch v := n.(type) {
	case *Constant:
		return p.wrapColor(p.printConstant(v), group)
	case *Symbol:
		return p.wrapColor(v.Name, group)
	case *UnaryMinus:
		return p.wrapColor(p.printUnaryMinus(v), group)
	case *Parenthesis:
		inner := p.print(v.Content, -1)
		if p.opts.LaTeX {
			return p.wrapColor(`\left(`+inner+`\right)`, group)
		}
		return p.wrapColor("("+inner+")", group)
	case *Function:
		return p.wrapColor(p.printFunction(v), group)
	case *Operator:
		return p.wrapColor(p.printOperator(v), group)
	}
	return "?"
}

func (p *printer) printConstant(c *Constant) string {
	if c.Value.IsInt() {
		return c.Value.Num().String()
	}
	if p.opts.LaTeX {
		num, den := c.Value.Num(), c.Value.Denom()
		sign := ""
		if num.Sign() < 0 {
			sign = "-"
		}
		return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, new(big.Int).Abs(num).String(), den.String())
	}
	return c.Value.RatString()
}

func (p *printer) printUnaryMinus(u *UnaryMinus) string {
	sign := "-"
	switch u.Child.(type) {
	case *Operator:
		inner := p.print(u.Child, -1)
		if p.opts.LaTeX {
			return sign + `\left(` + inner + `\right)`
		}
		return sign + "(" + inner + ")"
	default:
		return sign + p.print(u.Child, -1)
	}
}

func (p *printer) printFunction(f *Function) string {
	arg := p.print(f.Arg, -1)
	if f.Name == "abs" {
		if p.opts.LaTeX {
			return `\left|` + arg + `\right|`
		}
		return "|" + arg + "|"
	}
	if p.opts.LaTeX {
		return `\operatorname{` + f.Name + `}\left(` + arg + `\right)`
	}
	return f.Name + "(" + arg + ")"
}

func (p *printer) printOperator(o *Operator) string {
	switch o.Op {
	case OpAdd:
		return p.printAdd(o)
	case OpMul:
		return p.printMul(o)
	case OpDiv:
		return p.printDiv(o)
	case OpPow:
		return p.printPow(o)
	case OpSub:
		// only appears pre-flatten; render literally for debugging.
		return p.print(o.Children[0], -1) + " - " + p.print(o.Children[1], -1)
	}
	return "?"
}

func (p *printer) printAdd(o *Operator) string {
	var sb strings.Builder
	for i, c := range o.Children {
		if i > 0 {
			if u, ok := c.(*UnaryMinus); ok && !p.opts.ExplicitPlusMinus {
				sb.WriteString(" - ")
				sb.WriteString(p.printAddendNoSign(u.Child))
				continue
			}
			sb.WriteString(" + ")
		}
		sb.WriteString(p.print(c, colorGroupOf(c)))
	}
	return sb.String()
}

// printAddendNoSign prints a term that already had its leading "-"
// consumed by the enclosing "a - b" rendering.
func (p *printer) printAddendNoSign(n Node) string {
	if _, ok := n.(*Operator); ok {
		inner := p.print(n, -1)
		if p.opts.LaTeX {
			return `\left(` + inner + `\right)`
		}
		return "(" + inner + ")"
	}
	return p.print(n, colorGroupOf(n))
}

func (p *printer) printMul(o *Operator) string {
	// Polynomial-term rendering: coefficient (possibly a fraction) and a
	// power printed with a space, never an explicit '*' or nested /.
	if term, ok := AsPolyTerm(o); ok && term.Coef != nil {
		if IsConstantFraction(term.Coef) {
			num, den, _ := AsConstantFraction(term.Coef)
			coefStr := num.RatString() + "/" + den.RatString()
			sign := ""
			if term.Sign < 0 {
				sign = "-"
			}
			return sign + coefStr + " " + p.printPolyBody(term)
		}
	}
	sep := "*"
	if p.opts.LaTeX {
		sep = " "
	}
	parts := make([]string, len(o.Children))
	for i, c := range o.Children {
		s := p.print(c, colorGroupOf(c))
		if needsMulParens(c) {
			if p.opts.LaTeX {
				s = `\left(` + s + `\right)`
			} else {
				s = "(" + s + ")"
			}
		}
		parts[i] = s
	}
	return strings.Join(parts, sep)
}

func (p *printer) printPolyBody(t PolyTerm) string {
	base := t.Symbol
	if t.Exponent != nil {
		if p.opts.LaTeX {
			return base + "^{" + p.print(t.Exponent, -1) + "}"
		}
		return base + "^" + p.print(t.Exponent, -1)
	}
	return base
}

func needsMulParens(n Node) bool {
	op, ok := n.(*Operator)
	return ok && op.Op == OpAdd
}

func (p *printer) printDiv(o *Operator) string {
	num, den := o.Children[0], o.Children[1]
	if IsConstantFraction(o) {
		if p.opts.LaTeX {
			nv, dv, _ := AsConstantFraction(o)
			return fmt.Sprintf(`\frac{%s}{%s}`, nv.RatString(), dv.RatString())
		}
		return p.print(num, -1) + "/" + p.print(den, -1)
	}
	if p.opts.LaTeX {
		return `\frac{` + p.print(num, -1) + `}{` + p.print(den, -1) + `}`
	}
	numStr, denStr := p.print(num, -1), p.print(den, -1)
	if _, ok := num.(*Operator); ok {
		numStr = "(" + numStr + ")"
	}
	if _, ok := den.(*Operator); ok {
		denStr = "(" + denStr + ")"
	}
	return numStr + " / " + denStr
}

func (p *printer) printPow(o *Operator) string {
	base, exp := o.Children[0], o.Children[1]
	baseStr := p.print(base, -1)
	if op, ok := base.(*Operator); ok && (op.Op == OpAdd || op.Op == OpMul) {
		baseStr = "(" + baseStr + ")"
	}
	if p.opts.LaTeX {
		return baseStr + "^{" + p.print(exp, -1) + "}"
	}
	return baseStr + "^" + p.print(exp, -1)
}

// Colored wraps a Node with a color-group tag consumed only by the
// LaTeX renderer (see PrintOptions.Colors). A caller attaches one with
// Colorize to highlight a subtree; Step and StepThrough never add one.
// Every other Node method delegates to the wrapped node, so a
// Colored node is otherwise indistinguishable from its content.
type Colored struct {
	Node
	Group int
}

// Colorize tags n with a color group for the next Print call.
func Colorize(n Node, group int) *Colored { return &Colored{Node: n, Group: group} }

// ColorGroup satisfies the printer's color hook.
func (c *Colored) ColorGroup() int { return c.Group }

func (c *Colored) Equal(other Node) bool {
	if oc, ok := other.(*Colored); ok {
		return c.Node.Equal(oc.Node)
	}
	return c.Node.Equal(other)
}

func (c *Colored) String() string { return Print(c.Node, PrintOptions{}) }

// String implementations delegate to the ASCII printer.
func (o *Operator) String() string    { return Print(o, PrintOptions{}) }
func (u *UnaryMinus) String() string  { return Print(u, PrintOptions{}) }
func (p *Parenthesis) String() string { return Print(p, PrintOptions{}) }
func (c *Constant) String() string    { return Print(c, PrintOptions{}) }
func (s *Symbol) String() string      { return Print(s, PrintOptions{}) }
func (f *Function) String() string    { return Print(f, PrintOptions{}) }
