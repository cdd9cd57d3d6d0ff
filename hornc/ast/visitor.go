package ast

// walkArgument applies fn to arg and then to its children depth-first.
// Aggregator bodies are visited after the aggregate target.
func walkArgument(arg Argument, fn func(Argument)) {
	fn(arg)
	switch a := arg.(type) {
	case *RecordInit:
		for _, child := range a.Args {
			walkArgument(child, fn)
		}
	case *IntrinsicFunctor:
		for _, child := range a.Args {
			walkArgument(child, fn)
		}
	case *Aggregator:
		if a.Target != nil {
			walkArgument(a.Target, fn)
		}
		for _, l := range a.Body {
			walkLiteral(l, fn)
		}
	}
}

func walkLiteral(lit Literal, fn func(Argument)) {
	switch l := lit.(type) {
	case *Atom:
		for _, arg := range l.Args {
			walkArgument(arg, fn)
		}
	case *Negation:
		for _, arg := range l.Atom.Args {
			walkArgument(arg, fn)
		}
	case *BinaryConstraint:
		walkArgument(l.Lhs, fn)
		walkArgument(l.Rhs, fn)
	}
}

// VisitArguments walks every argument of the clause depth-first, head
// first, then the body literals in source order.
func VisitArguments(c *Clause, fn func(Argument)) {
	for _, arg := range c.Head.Args {
		walkArgument(arg, fn)
	}
	for _, l := range c.Body {
		walkLiteral(l, fn)
	}
}

// VisitAggregators walks the clause and applies fn to every aggregator,
// including aggregators nested inside other arguments.
func VisitAggregators(c *Clause, fn func(*Aggregator)) {
	VisitArguments(c, func(a Argument) {
		if agg, ok := a.(*Aggregator); ok {
			fn(agg)
		}
	})
}

// VisitFunctors walks the clause and applies fn to every intrinsic
// functor application.
func VisitFunctors(c *Clause, fn func(*IntrinsicFunctor)) {
	VisitArguments(c, func(a Argument) {
		if f, ok := a.(*IntrinsicFunctor); ok {
			fn(f)
		}
	})
}

// VisitBinaryConstraints applies fn to every binary constraint in the
// clause body, skipping constraints nested inside aggregator bodies.
func VisitBinaryConstraints(c *Clause, fn func(*BinaryConstraint)) {
	for _, l := range c.Body {
		if bc, ok := l.(*BinaryConstraint); ok {
			fn(bc)
		}
	}
}

// VisitVariables applies fn to every named variable in the clause.
func VisitVariables(c *Clause, fn func(*Variable)) {
	VisitArguments(c, func(a Argument) {
		if v, ok := a.(*Variable); ok {
			fn(v)
		}
	})
}
