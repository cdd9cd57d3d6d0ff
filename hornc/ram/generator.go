package ram

import (
	"strconv"
	"strings"

	"github.com/wbrown/janus-hornc/hornc"
)

// Aggregate scans a relation, folds the target expression over the tuples
// satisfying the condition, and binds the result at element 0 of Level.
type Aggregate struct {
	Op       hornc.AggregateOp
	Relation string
	Level    int
	Target   Expression
	Cond     Condition
	Nested   Operation
}

func (*Aggregate) operation() {}

func (a *Aggregate) print(sb *strings.Builder, indent int) {
	writeIndent(sb, indent)
	sb.WriteString("t" + strconv.Itoa(a.Level) + ".0 = " + strings.ToUpper(a.Op.String()))
	if a.Target != nil {
		sb.WriteString(" " + a.Target.String())
	}
	sb.WriteString(" FOR ALL t" + strconv.Itoa(a.Level) + " IN " + a.Relation)
	if _, trivial := a.Cond.(*True); !trivial {
		sb.WriteString(" WHERE " + a.Cond.String())
	}
	sb.WriteString("\n")
	a.Nested.print(sb, indent+1)
}

func (a *Aggregate) String() string {
	return render(a)
}

// NestedIntrinsicOp enumerates the multi-result functors that own a
// nesting level.
type NestedIntrinsicOp uint8

const (
	NestedRange NestedIntrinsicOp = iota
	NestedURange
	NestedFRange
)

// String returns the surface name of the generator
func (op NestedIntrinsicOp) String() string {
	switch op {
	case NestedRange:
		return "RANGE"
	case NestedURange:
		return "URANGE"
	case NestedFRange:
		return "FRANGE"
	default:
		return "?"
	}
}

// NestedIntrinsicOperator runs its nested operation once per generated
// result, binding each result at element 0 of Level.
type NestedIntrinsicOperator struct {
	Op     NestedIntrinsicOp
	Level  int
	Args   []Expression
	Nested Operation
}

func (*NestedIntrinsicOperator) operation() {}

func (n *NestedIntrinsicOperator) print(sb *strings.Builder, indent int) {
	writeIndent(sb, indent)
	sb.WriteString("t" + strconv.Itoa(n.Level) + ".0 = " + n.Op.String() + "(" + joinExpressions(n.Args) + ")\n")
	n.Nested.print(sb, indent+1)
}

func (n *NestedIntrinsicOperator) String() string {
	return render(n)
}
