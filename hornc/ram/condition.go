package ram

import (
	"github.com/wbrown/janus-hornc/hornc"
)

// Condition is a boolean test inside a query. Sealed.
type Condition interface {
	condition()
	String() string
}

// True is the trivially satisfied condition.
type True struct{}

func (*True) condition() {}

func (*True) String() string {
	return "true"
}

// Conjunction is the logical AND of two conditions.
type Conjunction struct {
	Lhs Condition
	Rhs Condition
}

func (*Conjunction) condition() {}

func (c *Conjunction) String() string {
	return c.Lhs.String() + " AND " + c.Rhs.String()
}

// Conjoin combines two conditions, treating nil as absent. Returns nil
// when both sides are nil.
func Conjoin(lhs, rhs Condition) Condition {
	if lhs == nil {
		return rhs
	}
	if rhs == nil {
		return lhs
	}
	return &Conjunction{Lhs: lhs, Rhs: rhs}
}

// Negation inverts a condition.
type Negation struct {
	Operand Condition
}

func (*Negation) condition() {}

func (n *Negation) String() string {
	return "NOT " + n.Operand.String()
}

// EmptinessCheck tests whether a relation holds no tuples.
type EmptinessCheck struct {
	Relation string
}

func (*EmptinessCheck) condition() {}

func (c *EmptinessCheck) String() string {
	return "ISEMPTY(" + c.Relation + ")"
}

// ExistenceCheck tests whether a tuple is present in a relation. Undef
// values act as wildcards.
type ExistenceCheck struct {
	Relation string
	Values   []Expression
}

func (*ExistenceCheck) condition() {}

func (c *ExistenceCheck) String() string {
	return "(" + joinExpressions(c.Values) + ") IN " + c.Relation
}

// Constraint compares two expressions with a binary operator.
type Constraint struct {
	Op  hornc.BinaryConstraintOp
	Lhs Expression
	Rhs Expression
}

func (*Constraint) condition() {}

func (c *Constraint) String() string {
	return "(" + c.Lhs.String() + " " + c.Op.Symbol() + " " + c.Rhs.String() + ")"
}
