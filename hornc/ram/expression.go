package ram

import (
	"strconv"
	"strings"

	"github.com/wbrown/janus-hornc/hornc"
)

// Expression is a value computed inside a query. Sealed.
type Expression interface {
	expression()
	String() string
}

// TupleElement reads one element of the tuple bound at a nesting level.
type TupleElement struct {
	Level   int
	Element int
}

func (*TupleElement) expression() {}

func (e *TupleElement) String() string {
	return "t" + strconv.Itoa(e.Level) + "." + strconv.Itoa(e.Element)
}

// SignedConstant is a signed integer constant in the RAM domain.
type SignedConstant struct {
	Value hornc.RamDomain
}

func (*SignedConstant) expression() {}

func (c *SignedConstant) String() string {
	return "number(" + strconv.FormatInt(c.Value, 10) + ")"
}

// UnsignedConstant is an unsigned integer constant.
type UnsignedConstant struct {
	Value uint64
}

func (*UnsignedConstant) expression() {}

func (c *UnsignedConstant) String() string {
	return "unsigned(" + strconv.FormatUint(c.Value, 10) + ")"
}

// FloatConstant is a floating point constant.
type FloatConstant struct {
	Value float64
}

func (*FloatConstant) expression() {}

func (c *FloatConstant) String() string {
	return "float(" + strconv.FormatFloat(c.Value, 'g', -1, 64) + ")"
}

// UndefValue is the wildcard expression used for unnamed positions.
type UndefValue struct{}

func (*UndefValue) expression() {}

func (*UndefValue) String() string {
	return "undef"
}

// IntrinsicOperator applies a built-in functor to argument expressions.
type IntrinsicOperator struct {
	Op   hornc.FunctorOp
	Args []Expression
}

func (*IntrinsicOperator) expression() {}

func (o *IntrinsicOperator) String() string {
	if o.Op.IsInfix() && len(o.Args) == 2 {
		return "(" + o.Args[0].String() + o.Op.Symbol() + o.Args[1].String() + ")"
	}
	if o.Op == hornc.FunctorNeg && len(o.Args) == 1 {
		return "(-" + o.Args[0].String() + ")"
	}
	var sb strings.Builder
	sb.WriteString(o.Op.Symbol())
	sb.WriteByte('(')
	for i, a := range o.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// PackRecord packs its argument expressions into a record value.
type PackRecord struct {
	Args []Expression
}

func (*PackRecord) expression() {}

func (p *PackRecord) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range p.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}
