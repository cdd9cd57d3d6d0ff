package main

import (
	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
)

// demo is a small self-contained program exercising one lowering shape.
type demo struct {
	name      string
	relations []*ast.Relation
	clauses   []*ast.Clause
	scc       map[string]bool
}

func v(name string) *ast.Variable {
	return &ast.Variable{Name: name}
}

func str(value string) *ast.StringConstant {
	return &ast.StringConstant{Value: value}
}

func num(value string) *ast.NumericConstant {
	return &ast.NumericConstant{Value: value, Type: hornc.NumericInt}
}

func atom(name string, args ...ast.Argument) *ast.Atom {
	return &ast.Atom{Name: hornc.ParseQualifiedName(name), Args: args}
}

func rel(name string, arity int) *ast.Relation {
	return &ast.Relation{Name: hornc.ParseQualifiedName(name), Arity: arity}
}

func clause(file string, line int, head *ast.Atom, body ...ast.Literal) *ast.Clause {
	return &ast.Clause{
		Head: head,
		Body: body,
		SrcLoc: hornc.SrcLocation{
			File:      file,
			StartLine: line,
			StartCol:  1,
			EndLine:   line,
			EndCol:    40,
		},
	}
}

func demos() []demo {
	return []demo{
		groundFactsDemo(),
		joinWithConstantDemo(),
		negationDemo(),
		recordUnpackDemo(),
		aggregationDemo(),
		transitiveClosureDemo(),
	}
}

func groundFactsDemo() demo {
	return demo{
		name:      "ground facts",
		relations: []*ast.Relation{rel("graph.edge", 2)},
		clauses: []*ast.Clause{
			clause("graph.dl", 1, atom("graph.edge", str("a"), str("b"))),
			clause("graph.dl", 2, atom("graph.edge", str("b"), str("c"))),
			clause("graph.dl", 3, atom("graph.edge", str("c"), str("d"))),
		},
	}
}

func joinWithConstantDemo() demo {
	return demo{
		name: "join with constant",
		relations: []*ast.Relation{
			rel("graph.edge", 2),
			rel("graph.hop", 2),
		},
		clauses: []*ast.Clause{
			clause("graph.dl", 5,
				atom("graph.hop", v("x"), v("z")),
				atom("graph.edge", v("x"), v("y")),
				atom("graph.edge", v("y"), v("z")),
			),
			clause("graph.dl", 6,
				atom("graph.hop", str("a"), v("z")),
				atom("graph.edge", str("a"), v("y")),
				atom("graph.edge", v("y"), v("z")),
			),
		},
	}
}

func negationDemo() demo {
	return demo{
		name: "negation",
		relations: []*ast.Relation{
			rel("graph.node", 1),
			rel("graph.reach", 1),
			rel("graph.isolated", 1),
		},
		clauses: []*ast.Clause{
			clause("graph.dl", 10,
				atom("graph.isolated", v("x")),
				atom("graph.node", v("x")),
				&ast.Negation{Atom: atom("graph.reach", v("x"))},
			),
		},
	}
}

func recordUnpackDemo() demo {
	return demo{
		name: "record unpack",
		relations: []*ast.Relation{
			rel("list.cell", 1),
			rel("list.head", 1),
		},
		clauses: []*ast.Clause{
			clause("list.dl", 3,
				atom("list.head", v("x")),
				atom("list.cell", &ast.RecordInit{Args: []ast.Argument{v("x"), v("rest")}}),
			),
		},
	}
}

func aggregationDemo() demo {
	body := []ast.Literal{
		atom("sales.order", &ast.UnnamedVariable{}, v("y")),
	}
	agg := &ast.Aggregator{
		Operator: hornc.AggSum,
		FinalOp:  hornc.AggSum,
		Target:   v("y"),
		Body:     body,
	}
	return demo{
		name: "aggregation",
		relations: []*ast.Relation{
			rel("sales.order", 2),
			rel("sales.total", 1),
		},
		clauses: []*ast.Clause{
			clause("sales.dl", 4,
				atom("sales.total", v("s")),
				&ast.BinaryConstraint{Op: hornc.BinaryEQ, Lhs: v("s"), Rhs: agg},
			),
		},
	}
}

func transitiveClosureDemo() demo {
	recursive := clause("graph.dl", 21,
		atom("graph.path", v("x"), v("z")),
		atom("graph.path", v("x"), v("y")),
		atom("graph.path", v("y"), v("z")),
	)
	return demo{
		name: "transitive closure",
		relations: []*ast.Relation{
			rel("graph.edge", 2),
			rel("graph.path", 2),
		},
		clauses: []*ast.Clause{
			clause("graph.dl", 20,
				atom("graph.path", v("x"), v("y")),
				atom("graph.edge", v("x"), v("y")),
			),
			recursive,
		},
		scc: map[string]bool{"graph.path": true},
	}
}
