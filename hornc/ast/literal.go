package ast

import (
	"strings"

	"github.com/wbrown/janus-hornc/hornc"
)

// Literal is a clause body element. Sealed the same way Argument is.
type Literal interface {
	literal()
	String() string
}

// Node is anything that can own an operation nesting level: atoms scanned
// by the generated query and record inits unpacked by it.
type Node interface {
	String() string
}

// Atom is a positive relation literal.
type Atom struct {
	Name hornc.QualifiedName
	Args []Argument
}

func (*Atom) literal() {}

// Arity returns the number of arguments
func (a *Atom) Arity() int {
	return len(a.Args)
}

func (a *Atom) String() string {
	var sb strings.Builder
	sb.WriteString(a.Name.String())
	if len(a.Args) > 0 {
		sb.WriteByte('(')
		for i, arg := range a.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(arg.String())
		}
		sb.WriteByte(')')
	} else {
		sb.WriteString("()")
	}
	return sb.String()
}

// Negation is a negated relation literal.
type Negation struct {
	Atom *Atom
}

func (*Negation) literal() {}

func (n *Negation) String() string {
	return "!" + n.Atom.String()
}

// BinaryConstraint is a binary comparison between two arguments.
type BinaryConstraint struct {
	Op  hornc.BinaryConstraintOp
	Lhs Argument
	Rhs Argument
}

func (*BinaryConstraint) literal() {}

func (c *BinaryConstraint) String() string {
	return c.Lhs.String() + " " + c.Op.Symbol() + " " + c.Rhs.String()
}
