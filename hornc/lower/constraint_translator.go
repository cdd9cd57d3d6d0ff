package lower

import (
	"fmt"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/ram"
)

// translateConstraint maps a body literal to the RAM condition filtering
// for it, or nil for positive atoms, which are handled by scans.
func translateConstraint(ctx Context, st *hornc.SymbolTable, vi *ValueIndex, lit ast.Literal) (ram.Condition, error) {
	switch l := lit.(type) {
	case *ast.Atom:
		return nil, nil

	case *ast.BinaryConstraint:
		lhs, err := translateValue(ctx, st, vi, l.Lhs)
		if err != nil {
			return nil, fmt.Errorf("translating constraint lhs: %w", err)
		}
		rhs, err := translateValue(ctx, st, vi, l.Rhs)
		if err != nil {
			return nil, fmt.Errorf("translating constraint rhs: %w", err)
		}
		return &ram.Constraint{Op: l.Op, Lhs: lhs, Rhs: rhs}, nil

	case *ast.Negation:
		return negationCondition(ctx, st, vi, l.Atom, ctx.ConcreteName(l.Atom.Name))

	default:
		return nil, fmt.Errorf("cannot translate literal %s", lit)
	}
}

// negationCondition builds the absence test for a negated atom against
// the named physical relation. Nullary atoms reduce to an emptiness
// check; otherwise the existence check pads the relation's auxiliary
// columns with wildcards.
func negationCondition(ctx Context, st *hornc.SymbolTable, vi *ValueIndex, atom *ast.Atom, relation string) (ram.Condition, error) {
	userArity := atom.Arity()
	if userArity == 0 {
		return &ram.EmptinessCheck{Relation: relation}, nil
	}

	aux := ctx.AuxiliaryArity(atom)
	values := make([]ram.Expression, 0, userArity+aux)
	for _, arg := range atom.Args {
		v, err := translateValue(ctx, st, vi, arg)
		if err != nil {
			return nil, fmt.Errorf("translating negated atom %s: %w", atom, err)
		}
		values = append(values, v)
	}
	for i := 0; i < aux; i++ {
		values = append(values, &ram.UndefValue{})
	}
	return &ram.Negation{
		Operand: &ram.ExistenceCheck{Relation: relation, Values: values},
	}, nil
}

// atomExistenceValues translates an atom's arguments plus auxiliary
// wildcard padding for membership tests against its relation.
func atomExistenceValues(ctx Context, st *hornc.SymbolTable, vi *ValueIndex, atom *ast.Atom) ([]ram.Expression, error) {
	aux := ctx.AuxiliaryArity(atom)
	values := make([]ram.Expression, 0, atom.Arity()+aux)
	for _, arg := range atom.Args {
		v, err := translateValue(ctx, st, vi, arg)
		if err != nil {
			return nil, fmt.Errorf("translating atom %s: %w", atom, err)
		}
		values = append(values, v)
	}
	for i := 0; i < aux; i++ {
		values = append(values, &ram.UndefValue{})
	}
	return values, nil
}
