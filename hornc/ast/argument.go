package ast

import (
	"strings"

	"github.com/wbrown/janus-hornc/hornc"
)

// Argument is a term appearing in an atom, constraint, or functor. The
// interface is sealed: the lowerer switches exhaustively over the concrete
// variants below.
type Argument interface {
	argument()
	String() string
}

// Variable is a named clause variable.
type Variable struct {
	Name string
}

func (*Variable) argument() {}

func (v *Variable) String() string {
	return v.Name
}

// UnnamedVariable is the "_" wildcard.
type UnnamedVariable struct{}

func (*UnnamedVariable) argument() {}

func (*UnnamedVariable) String() string {
	return "_"
}

// NumericConstant is a numeric literal. Value keeps the source lexeme so
// radix prefixes survive until constant coding; Type is filled in by the
// host's type resolution and may be unset for untyped program text.
type NumericConstant struct {
	Value string
	Type  hornc.NumericType
}

func (*NumericConstant) argument() {}

func (c *NumericConstant) String() string {
	return c.Value
}

// StringConstant is a quoted string literal.
type StringConstant struct {
	Value string
}

func (*StringConstant) argument() {}

func (c *StringConstant) String() string {
	return "\"" + c.Value + "\""
}

// NilConstant is the empty record literal.
type NilConstant struct{}

func (*NilConstant) argument() {}

func (*NilConstant) String() string {
	return "nil"
}

// RecordInit constructs a record value from its field arguments.
type RecordInit struct {
	Args []Argument
}

func (*RecordInit) argument() {}

func (r *RecordInit) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range r.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// IntrinsicFunctor is a built-in functor application. FinalOp carries the
// overload picked by type resolution; Function keeps the surface name for
// printing before resolution has run.
type IntrinsicFunctor struct {
	Function string
	FinalOp  hornc.FunctorOp
	Args     []Argument
}

func (*IntrinsicFunctor) argument() {}

func (f *IntrinsicFunctor) String() string {
	op := f.FinalOp
	if op.IsInfix() && len(f.Args) == 2 {
		return "(" + f.Args[0].String() + op.Symbol() + f.Args[1].String() + ")"
	}
	if op == hornc.FunctorNeg && len(f.Args) == 1 {
		return "(-" + f.Args[0].String() + ")"
	}
	name := f.Function
	if op != hornc.FunctorUnset {
		name = op.Symbol()
	}
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Aggregator computes an aggregate over its own body literals. Target is
// nil for count. FinalOp carries the typed overload after resolution; the
// surface printing always uses the base operator name.
type Aggregator struct {
	Operator hornc.AggregateOp
	FinalOp  hornc.AggregateOp
	Target   Argument
	Body     []Literal
}

func (*Aggregator) argument() {}

func (a *Aggregator) String() string {
	var sb strings.Builder
	sb.WriteString(a.Operator.String())
	sb.WriteByte(' ')
	if a.Target != nil {
		sb.WriteString(a.Target.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(": { ")
	for i, l := range a.Body {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// ResolvedOp returns the typed operator when resolution has run, falling
// back to the base operator.
func (a *Aggregator) ResolvedOp() hornc.AggregateOp {
	if a.FinalOp != hornc.AggUnset {
		return a.FinalOp
	}
	return a.Operator
}
