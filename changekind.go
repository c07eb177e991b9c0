package mathsteps

// ChangeKind is a member of the closed vocabulary used in step records.
// Front-ends key rendering and copy off this exact set; a rule may
// never report a kind outside it.
type ChangeKind string

const (
	AddFractions         ChangeKind = "ADD_FRACTIONS"
	CommonDenominator    ChangeKind = "COMMON_DENOMINATOR"
	MultiplyFractions    ChangeKind = "MULTIPLY_FRACTIONS"
	SimplifyFraction     ChangeKind = "SIMPLIFY_FRACTION"
	DividePolyTerm       ChangeKind = "DIVIDE_POLY_TERM"
	CombineLikeTerms     ChangeKind = "COMBINE_LIKE_TERMS"
	MultiplyPolyTerms    ChangeKind = "MULTIPLY_POLY_TERMS"
	Distribute           ChangeKind = "DISTRIBUTE"
	Cancel               ChangeKind = "CANCEL"
	Arithmetic           ChangeKind = "ARITHMETIC"
	ResolveAddUnaryMinus ChangeKind = "RESOLVE_ADD_UNARY_MINUS"
	DoubleUnaryMinus     ChangeKind = "DOUBLE_UNARY_MINUS"
	AbsoluteValue        ChangeKind = "ABSOLUTE_VALUE"

	SubtractFromBothSides ChangeKind = "SUBTRACT_FROM_BOTH_SIDES"
	AddToBothSides        ChangeKind = "ADD_TO_BOTH_SIDES"
	MultiplyBothSides     ChangeKind = "MULTIPLY_BOTH_SIDES"
	DivideFromBothSides   ChangeKind = "DIVIDE_FROM_BOTH_SIDES"
	SwapSides             ChangeKind = "SWAP_SIDES"
)

// ChangeStatus is a rule's report: whether it fired, and if so why.
type ChangeStatus struct {
	Changed bool
	Kind    ChangeKind
}

// unchanged is the zero ChangeStatus, returned by every rule that did
// not match its input.
var unchanged = ChangeStatus{}

func changed(kind ChangeKind) ChangeStatus { return ChangeStatus{Changed: true, Kind: kind} }
