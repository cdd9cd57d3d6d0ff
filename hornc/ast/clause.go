package ast

import (
	"strings"

	"github.com/wbrown/janus-hornc/hornc"
)

// Clause is a single Horn clause: a head atom and zero or more body
// literals. A clause with an empty body is a fact.
type Clause struct {
	Head   *Atom
	Body   []Literal
	Plan   *ExecutionPlan
	SrcLoc hornc.SrcLocation
}

// IsFact reports whether the clause has an empty body
func (c *Clause) IsFact() bool {
	return len(c.Body) == 0
}

// BodyAtoms returns the positive atoms of the body in source order.
func (c *Clause) BodyAtoms() []*Atom {
	var atoms []*Atom
	for _, l := range c.Body {
		if a, ok := l.(*Atom); ok {
			atoms = append(atoms, a)
		}
	}
	return atoms
}

// String renders the clause on a single line, e.g.
// "path(x,y) :- edge(x,y)."
func (c *Clause) String() string {
	var sb strings.Builder
	sb.WriteString(c.Head.String())
	if len(c.Body) > 0 {
		sb.WriteString(" :- ")
		for i, l := range c.Body {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(l.String())
		}
	}
	sb.WriteByte('.')
	return sb.String()
}

// ExecutionPlan maps a clause version to a 1-based permutation of the
// clause's body atoms. Versions without an order run the atoms in source
// order.
type ExecutionPlan struct {
	orders map[int][]int
}

// NewExecutionPlan creates an empty plan
func NewExecutionPlan() *ExecutionPlan {
	return &ExecutionPlan{orders: make(map[int][]int)}
}

// SetOrder assigns a 1-based atom permutation to a version
func (p *ExecutionPlan) SetOrder(version int, order []int) {
	p.orders[version] = order
}

// Order returns the permutation for a version, if one was set
func (p *ExecutionPlan) Order(version int) ([]int, bool) {
	o, ok := p.orders[version]
	return o, ok
}

// MaxVersion returns the highest version with an assigned order, or -1
// when the plan is empty.
func (p *ExecutionPlan) MaxVersion() int {
	max := -1
	for v := range p.orders {
		if v > max {
			max = v
		}
	}
	return max
}

// Relation describes a relation's signature as the lowerer needs it:
// total arity and the trailing auxiliary columns the host adds for
// provenance or subsumption bookkeeping.
type Relation struct {
	Name     hornc.QualifiedName
	Arity    int
	AuxArity int
}
