package lower

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/ram"
)

// ConstantRamRepresentation folds a constant argument into the flat RAM
// domain. Strings intern through the symbol table; nil is the empty
// record reference; numerics parse by resolved type, with unsigned and
// float values reinterpreted bit-for-bit.
func ConstantRamRepresentation(st *hornc.SymbolTable, arg ast.Argument) (hornc.RamDomain, error) {
	switch c := arg.(type) {
	case *ast.StringConstant:
		return st.Lookup(c.Value), nil
	case *ast.NilConstant:
		return 0, nil
	case *ast.NumericConstant:
		switch c.Type {
		case hornc.NumericInt:
			v, err := strconv.ParseInt(c.Value, 0, 64)
			if err != nil {
				return 0, fmt.Errorf("parsing signed constant %q: %w", c.Value, err)
			}
			return v, nil
		case hornc.NumericUint:
			v, err := strconv.ParseUint(c.Value, 0, 64)
			if err != nil {
				return 0, fmt.Errorf("parsing unsigned constant %q: %w", c.Value, err)
			}
			return int64(v), nil
		case hornc.NumericFloat:
			v, err := strconv.ParseFloat(c.Value, 64)
			if err != nil {
				return 0, fmt.Errorf("parsing float constant %q: %w", c.Value, err)
			}
			return int64(math.Float64bits(v)), nil
		default:
			return 0, fmt.Errorf("numeric constant %q has no resolved type", c.Value)
		}
	default:
		return 0, fmt.Errorf("argument %s is not a constant", arg)
	}
}

// TranslateConstant lifts a constant argument into a typed RAM constant
// expression. Numeric constants keep their resolved kind; strings and
// nil produce signed constants over their domain encoding.
func TranslateConstant(st *hornc.SymbolTable, arg ast.Argument) (ram.Expression, error) {
	switch c := arg.(type) {
	case *ast.NumericConstant:
		switch c.Type {
		case hornc.NumericInt:
			v, err := strconv.ParseInt(c.Value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing signed constant %q: %w", c.Value, err)
			}
			return &ram.SignedConstant{Value: v}, nil
		case hornc.NumericUint:
			v, err := strconv.ParseUint(c.Value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing unsigned constant %q: %w", c.Value, err)
			}
			return &ram.UnsignedConstant{Value: v}, nil
		case hornc.NumericFloat:
			v, err := strconv.ParseFloat(c.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing float constant %q: %w", c.Value, err)
			}
			return &ram.FloatConstant{Value: v}, nil
		default:
			return nil, fmt.Errorf("numeric constant %q has no resolved type", c.Value)
		}
	case *ast.StringConstant, *ast.NilConstant:
		v, err := ConstantRamRepresentation(st, arg)
		if err != nil {
			return nil, err
		}
		return &ram.SignedConstant{Value: v}, nil
	default:
		return nil, fmt.Errorf("argument %s is not a constant", arg)
	}
}

// isConstant reports whether the argument is a constant of any kind
func isConstant(arg ast.Argument) bool {
	switch arg.(type) {
	case *ast.NumericConstant, *ast.StringConstant, *ast.NilConstant:
		return true
	default:
		return false
	}
}
