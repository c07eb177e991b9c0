package mathsteps

import "fmt"

// UnsupportedExpressionError reports a subtree the engine does not
// model, e.g. a Function node with a name outside {"abs"}. StepThrough
// returns an empty trace and Simplify returns the input unchanged when
// this is returned — the caller always gets a well-formed (if
// unsimplified) tree back, never a partial mutation.
type UnsupportedExpressionError struct {
	Node Node
}

func (e *UnsupportedExpressionError) Error() string {
	return fmt.Sprintf("mathsteps: unsupported expression: %s", e.Node.String())
}

// UnsolvableError reports that the equation solver could not isolate
// the variable: the degree in the variable exceeds one, or the
// equation's constraints conflict. NoSolution distinguishes "the
// system proved there is no value that satisfies this" from
// "the solver is not capable of this equation shape".
type UnsolvableError struct {
	Reason     string
	NoSolution bool
}

func (e *UnsolvableError) Error() string { return "mathsteps: unsolvable: " + e.Reason }

// RuleLoopError indicates the iteration cap in Simplify/StepThrough was
// exceeded. This is always a bug — some rule undid another's work — so
// it carries the trace collected so far to make it reproducible.
type RuleLoopError struct {
	Trace []StepRecord
}

func (e *RuleLoopError) Error() string {
	return fmt.Sprintf("mathsteps: rule loop: exceeded step cap after %d steps", len(e.Trace))
}

// DeadlineExceededError indicates a caller-supplied wall-clock deadline
// (Options.Deadline) elapsed between rule firings.
type DeadlineExceededError struct {
	Trace []StepRecord
}

func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("mathsteps: deadline exceeded after %d steps", len(e.Trace))
}
