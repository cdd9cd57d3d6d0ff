package hornc

// BinaryConstraintOp enumerates the binary comparison relations shared by
// the clause AST and the RAM tree.
type BinaryConstraintOp uint8

const (
	BinaryEQ BinaryConstraintOp = iota
	BinaryFEQ
	BinaryNE
	BinaryLT
	BinaryLE
	BinaryGT
	BinaryGE
)

// Symbol returns the source-level symbol for the operator
func (op BinaryConstraintOp) Symbol() string {
	switch op {
	case BinaryEQ, BinaryFEQ:
		return "="
	case BinaryNE:
		return "!="
	case BinaryLT:
		return "<"
	case BinaryLE:
		return "<="
	case BinaryGT:
		return ">"
	case BinaryGE:
		return ">="
	default:
		return "?"
	}
}

// IsEquality reports whether the operator is an equality relation,
// integer or float.
func (op BinaryConstraintOp) IsEquality() bool {
	return op == BinaryEQ || op == BinaryFEQ
}

// AggregateOp enumerates aggregation operators. Typed variants carry the
// resolved numeric kind the same way numeric constants do.
type AggregateOp uint8

const (
	AggUnset AggregateOp = iota
	AggCount
	AggMin
	AggMax
	AggSum
	AggMean
	AggFMin
	AggFMax
	AggFSum
	AggFMean
	AggUMin
	AggUMax
	AggUSum
)

// String returns the surface name of the aggregate operator
func (op AggregateOp) String() string {
	switch op {
	case AggCount:
		return "count"
	case AggMin, AggFMin, AggUMin:
		return "min"
	case AggMax, AggFMax, AggUMax:
		return "max"
	case AggSum, AggFSum, AggUSum:
		return "sum"
	case AggMean, AggFMean:
		return "mean"
	default:
		return "?"
	}
}

// FunctorOp enumerates intrinsic functor operations after type resolution.
type FunctorOp uint8

const (
	FunctorUnset FunctorOp = iota
	FunctorAdd
	FunctorSub
	FunctorMul
	FunctorDiv
	FunctorMod
	FunctorExp
	FunctorNeg
	FunctorCat
	FunctorOrd
	FunctorStrlen
	FunctorRange
	FunctorURange
	FunctorFRange
)

// Symbol returns the infix symbol for arithmetic functors, or the surface
// name for named functors.
func (op FunctorOp) Symbol() string {
	switch op {
	case FunctorAdd:
		return "+"
	case FunctorSub:
		return "-"
	case FunctorMul:
		return "*"
	case FunctorDiv:
		return "/"
	case FunctorMod:
		return "%"
	case FunctorExp:
		return "^"
	case FunctorNeg:
		return "-"
	case FunctorCat:
		return "cat"
	case FunctorOrd:
		return "ord"
	case FunctorStrlen:
		return "strlen"
	case FunctorRange:
		return "range"
	case FunctorURange:
		return "urange"
	case FunctorFRange:
		return "frange"
	default:
		return "?"
	}
}

// IsInfix reports whether the functor prints in infix position
func (op FunctorOp) IsInfix() bool {
	switch op {
	case FunctorAdd, FunctorSub, FunctorMul, FunctorDiv, FunctorMod, FunctorExp:
		return true
	default:
		return false
	}
}

// IsMultiResult reports whether the functor generates multiple result
// tuples and therefore owns a nesting level instead of being a plain
// expression.
func (op FunctorOp) IsMultiResult() bool {
	switch op {
	case FunctorRange, FunctorURange, FunctorFRange:
		return true
	default:
		return false
	}
}

// NumericType is the resolved type of a numeric constant or polymorphic
// functor.
type NumericType uint8

const (
	NumericUnset NumericType = iota
	NumericInt
	NumericUint
	NumericFloat
)

// String returns the type name
func (t NumericType) String() string {
	switch t {
	case NumericInt:
		return "number"
	case NumericUint:
		return "unsigned"
	case NumericFloat:
		return "float"
	default:
		return "unset"
	}
}
