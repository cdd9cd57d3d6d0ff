package lower

import (
	"fmt"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/ram"
)

// translateValue maps a clause argument to the RAM expression reading or
// computing it against the value index.
func translateValue(ctx Context, st *hornc.SymbolTable, vi *ValueIndex, arg ast.Argument) (ram.Expression, error) {
	switch a := arg.(type) {
	case *ast.Variable:
		loc, ok := vi.DefinitionPoint(a.Name)
		if !ok {
			return nil, fmt.Errorf("variable %s has no definition point", a.Name)
		}
		return &ram.TupleElement{Level: loc.Level, Element: loc.Element}, nil

	case *ast.UnnamedVariable:
		return &ram.UndefValue{}, nil

	case *ast.NumericConstant, *ast.StringConstant, *ast.NilConstant:
		return TranslateConstant(st, arg)

	case *ast.RecordInit:
		values := make([]ram.Expression, len(a.Args))
		for i, child := range a.Args {
			v, err := translateValue(ctx, st, vi, child)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return &ram.PackRecord{Args: values}, nil

	case *ast.Aggregator:
		loc, ok := vi.GeneratorLoc(a)
		if !ok {
			return nil, fmt.Errorf("aggregator %s has no generator level", a)
		}
		return &ram.TupleElement{Level: loc.Level, Element: loc.Element}, nil

	case *ast.IntrinsicFunctor:
		if ctx.IsMultiResult(a) {
			loc, ok := vi.GeneratorLoc(a)
			if !ok {
				return nil, fmt.Errorf("functor %s has no generator level", a)
			}
			return &ram.TupleElement{Level: loc.Level, Element: loc.Element}, nil
		}
		args := make([]ram.Expression, len(a.Args))
		for i, child := range a.Args {
			v, err := translateValue(ctx, st, vi, child)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return &ram.IntrinsicOperator{Op: a.FinalOp, Args: args}, nil

	default:
		return nil, fmt.Errorf("cannot translate argument %s", arg)
	}
}
