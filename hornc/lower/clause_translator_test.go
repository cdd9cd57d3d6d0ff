package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/ram"
)

func testVar(name string) *ast.Variable {
	return &ast.Variable{Name: name}
}

func testAtom(name string, args ...ast.Argument) *ast.Atom {
	return &ast.Atom{Name: hornc.ParseQualifiedName(name), Args: args}
}

func testClause(head *ast.Atom, body ...ast.Literal) *ast.Clause {
	return &ast.Clause{
		Head:   head,
		Body:   body,
		SrcLoc: hornc.SrcLocation{File: "test.dl", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 40},
	}
}

func testContext(t *testing.T, rels ...*ast.Relation) *ProgramContext {
	t.Helper()
	ctx := NewProgramContext()
	for _, rel := range rels {
		require.NoError(t, ctx.RegisterRelation(rel))
	}
	return ctx
}

func testRel(name string, arity int) *ast.Relation {
	return &ast.Relation{Name: hornc.ParseQualifiedName(name), Arity: arity}
}

// unwrapQuery asserts the statement is a query and returns its operation
func unwrapQuery(t *testing.T, stmt ram.Statement) ram.Operation {
	t.Helper()
	q, ok := stmt.(*ram.Query)
	require.True(t, ok, "expected *ram.Query, got %T", stmt)
	return q.Op
}

func TestLowerFact(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2))
	st := hornc.NewSymbolTable()

	c := testClause(testAtom("graph.edge",
		&ast.StringConstant{Value: "a"},
		&ast.StringConstant{Value: "b"}))

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	op := unwrapQuery(t, stmt)
	proj, ok := op.(*ram.Project)
	require.True(t, ok)
	assert.Equal(t, "graph.edge", proj.Relation)
	require.Len(t, proj.Values, 2)
	assert.Equal(t, &ram.SignedConstant{Value: st.Lookup("a")}, proj.Values[0])
	assert.Equal(t, &ram.SignedConstant{Value: st.Lookup("b")}, proj.Values[1])
}

func TestLowerFactRejectsVariables(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2))
	st := hornc.NewSymbolTable()

	c := testClause(testAtom("graph.edge", testVar("x"), &ast.StringConstant{Value: "b"}))

	_, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a constant")
	assert.Contains(t, err.Error(), "test.dl")
}

func TestLowerSimpleJoin(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.hop", 2))
	st := hornc.NewSymbolTable()

	// hop(x,z) :- edge(x,y), edge(y,z).
	c := testClause(
		testAtom("graph.hop", testVar("x"), testVar("z")),
		testAtom("graph.edge", testVar("x"), testVar("y")),
		testAtom("graph.edge", testVar("y"), testVar("z")),
	)

	tr := NewClauseTranslator(ctx, st)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Levels())

	expected := "QUERY\n" +
		"  FOR t0 IN graph.edge\n" +
		"    IF NOT ISEMPTY(graph.edge)\n" +
		"      FOR t1 IN graph.edge\n" +
		"        IF NOT ISEMPTY(graph.edge)\n" +
		"          IF (t0.1 = t1.0)\n" +
		"            PROJECT (t0.0,t1.1) INTO graph.hop"
	assert.Equal(t, expected, stmt.String())
}

func TestLowerConstantInAtom(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.reach", 1))
	st := hornc.NewSymbolTable()

	// reach(y) :- edge("a", y).
	c := testClause(
		testAtom("graph.reach", testVar("y")),
		testAtom("graph.edge", &ast.StringConstant{Value: "a"}, testVar("y")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	// The scan wraps the emptiness filter, which wraps the constant
	// pinning filter.
	scan, ok := unwrapQuery(t, stmt).(*ram.Scan)
	require.True(t, ok)
	assert.Equal(t, "graph.edge", scan.Relation)
	assert.Equal(t, 0, scan.Level)

	emptyFilter, ok := scan.Nested.(*ram.Filter)
	require.True(t, ok)
	_, ok = emptyFilter.Cond.(*ram.Negation)
	require.True(t, ok)

	constFilter, ok := emptyFilter.Nested.(*ram.Filter)
	require.True(t, ok)
	cons, ok := constFilter.Cond.(*ram.Constraint)
	require.True(t, ok)
	assert.Equal(t, hornc.BinaryEQ, cons.Op)
	assert.Equal(t, &ram.TupleElement{Level: 0, Element: 0}, cons.Lhs)
	assert.Equal(t, &ram.SignedConstant{Value: st.Lookup("a")}, cons.Rhs)
}

func TestLowerFloatConstantUsesFloatEquality(t *testing.T) {
	ctx := testContext(t, testRel("m.point", 1), testRel("m.hit", 1))
	st := hornc.NewSymbolTable()

	c := testClause(
		testAtom("m.hit", testVar("x")),
		testAtom("m.point", &ast.NumericConstant{Value: "2.5", Type: hornc.NumericFloat}),
		testAtom("m.point", testVar("x")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)
	assert.Contains(t, stmt.String(), "(t0.0 = float(2.5))")
}

func TestLowerNegation(t *testing.T) {
	ctx := testContext(t,
		testRel("graph.node", 1),
		testRel("graph.reach", 1),
		testRel("graph.isolated", 1))
	st := hornc.NewSymbolTable()

	// isolated(x) :- node(x), !reach(x).
	c := testClause(
		testAtom("graph.isolated", testVar("x")),
		testAtom("graph.node", testVar("x")),
		&ast.Negation{Atom: testAtom("graph.reach", testVar("x"))},
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	expected := "QUERY\n" +
		"  FOR t0 IN graph.node\n" +
		"    IF NOT ISEMPTY(graph.node)\n" +
		"      IF NOT (t0.0) IN graph.reach\n" +
		"        PROJECT (t0.0) INTO graph.isolated"
	assert.Equal(t, expected, stmt.String())
}

func TestLowerNegationPadsAuxiliaryArity(t *testing.T) {
	reach := testRel("graph.reach", 3)
	reach.AuxArity = 2
	ctx := testContext(t, testRel("graph.node", 1), reach, testRel("graph.isolated", 1))
	st := hornc.NewSymbolTable()

	c := testClause(
		testAtom("graph.isolated", testVar("x")),
		testAtom("graph.node", testVar("x")),
		&ast.Negation{Atom: testAtom("graph.reach", testVar("x"))},
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)
	assert.Contains(t, stmt.String(), "IF NOT (t0.0,undef,undef) IN graph.reach")
}

func TestLowerNullaryNegation(t *testing.T) {
	ctx := testContext(t, testRel("p", 1), testRel("stop", 0), testRel("q", 1))
	st := hornc.NewSymbolTable()

	c := testClause(
		testAtom("q", testVar("x")),
		testAtom("p", testVar("x")),
		&ast.Negation{Atom: testAtom("stop")},
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)
	assert.Contains(t, stmt.String(), "IF ISEMPTY(stop)")
}

func TestLowerRecordUnpack(t *testing.T) {
	ctx := testContext(t, testRel("list.cell", 1), testRel("list.head", 1))
	st := hornc.NewSymbolTable()

	// head(x) :- cell([x, rest]).
	rec := &ast.RecordInit{Args: []ast.Argument{testVar("x"), testVar("rest")}}
	c := testClause(
		testAtom("list.head", testVar("x")),
		testAtom("list.cell", rec),
	)

	tr := NewClauseTranslator(ctx, st)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Levels())

	expected := "QUERY\n" +
		"  FOR t0 IN list.cell\n" +
		"    IF NOT ISEMPTY(list.cell)\n" +
		"      UNPACK t1 ARITY 2 FROM t0.0\n" +
		"        PROJECT (t1.0) INTO list.head"
	assert.Equal(t, expected, stmt.String())
}

func TestLowerPackRecordInHead(t *testing.T) {
	ctx := testContext(t, testRel("pair.raw", 2), testRel("pair.boxed", 1))
	st := hornc.NewSymbolTable()

	// boxed([x,y]) :- raw(x,y).
	c := testClause(
		testAtom("pair.boxed", &ast.RecordInit{Args: []ast.Argument{testVar("x"), testVar("y")}}),
		testAtom("pair.raw", testVar("x"), testVar("y")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)
	assert.Contains(t, stmt.String(), "PROJECT ([t0.0,t0.1]) INTO pair.boxed")
}

func TestLowerAggregation(t *testing.T) {
	ctx := testContext(t, testRel("sales.order", 2), testRel("sales.total", 1))
	st := hornc.NewSymbolTable()

	// total(s) :- s = sum y : { order(_, y) }.
	agg := &ast.Aggregator{
		Operator: hornc.AggSum,
		Target:   testVar("y"),
		Body: []ast.Literal{
			testAtom("sales.order", &ast.UnnamedVariable{}, testVar("y")),
		},
	}
	c := testClause(
		testAtom("sales.total", testVar("s")),
		&ast.BinaryConstraint{Op: hornc.BinaryEQ, Lhs: testVar("s"), Rhs: agg},
	)

	tr := NewClauseTranslator(ctx, st)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Levels())

	aggOp, ok := unwrapQuery(t, stmt).(*ram.Aggregate)
	require.True(t, ok)
	assert.Equal(t, hornc.AggSum, aggOp.Op)
	assert.Equal(t, "sales.order", aggOp.Relation)
	assert.Equal(t, 0, aggOp.Level)
	assert.Equal(t, &ram.TupleElement{Level: 0, Element: 1}, aggOp.Target)
	_, trivial := aggOp.Cond.(*ram.True)
	assert.True(t, trivial)
}

func TestLowerAggregationWithOuterBinding(t *testing.T) {
	ctx := testContext(t,
		testRel("sales.order", 2),
		testRel("sales.customer", 1),
		testRel("sales.spend", 2))
	st := hornc.NewSymbolTable()

	// spend(c, s) :- customer(c), s = sum y : { order(c, y) }.
	agg := &ast.Aggregator{
		Operator: hornc.AggSum,
		Target:   testVar("y"),
		Body: []ast.Literal{
			testAtom("sales.order", testVar("c"), testVar("y")),
		},
	}
	c := testClause(
		testAtom("sales.spend", testVar("c"), testVar("s")),
		testAtom("sales.customer", testVar("c")),
		&ast.BinaryConstraint{Op: hornc.BinaryEQ, Lhs: testVar("s"), Rhs: agg},
	)

	tr := NewClauseTranslator(ctx, st)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Levels())

	// The aggregate sits at level 1; its first column must be equated
	// with the customer scan binding c at level 0.
	text := stmt.String()
	assert.Contains(t, text, "t1.0 = SUM t1.1 FOR ALL t1 IN sales.order")
	assert.Contains(t, text, "(t1.0 = t0.0)")
}

func TestLowerAggregatorCountWithoutTarget(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.size", 1))
	st := hornc.NewSymbolTable()

	agg := &ast.Aggregator{
		Operator: hornc.AggCount,
		Body: []ast.Literal{
			testAtom("graph.edge", &ast.UnnamedVariable{}, &ast.UnnamedVariable{}),
		},
	}
	c := testClause(
		testAtom("graph.size", testVar("n")),
		&ast.BinaryConstraint{Op: hornc.BinaryEQ, Lhs: testVar("n"), Rhs: agg},
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	aggOp, ok := unwrapQuery(t, stmt).(*ram.Aggregate)
	require.True(t, ok)
	assert.Equal(t, hornc.AggCount, aggOp.Op)
	assert.Nil(t, aggOp.Target)
}

func TestLowerAggregatorRequiresSingleBodyAtom(t *testing.T) {
	ctx := testContext(t, testRel("p", 1), testRel("q", 1), testRel("r", 1))
	st := hornc.NewSymbolTable()

	agg := &ast.Aggregator{
		Operator: hornc.AggCount,
		Body: []ast.Literal{
			testAtom("p", &ast.UnnamedVariable{}),
			testAtom("q", &ast.UnnamedVariable{}),
		},
	}
	c := testClause(
		testAtom("r", testVar("n")),
		&ast.BinaryConstraint{Op: hornc.BinaryEQ, Lhs: testVar("n"), Rhs: agg},
	)

	_, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body atoms")
	assert.Contains(t, err.Error(), "test.dl")
}

func TestLowerMultiResultFunctor(t *testing.T) {
	ctx := testContext(t, testRel("nums", 1))
	st := hornc.NewSymbolTable()

	// nums(x) :- x = range(1, 5).
	rng := &ast.IntrinsicFunctor{
		Function: "range",
		FinalOp:  hornc.FunctorRange,
		Args: []ast.Argument{
			&ast.NumericConstant{Value: "1", Type: hornc.NumericInt},
			&ast.NumericConstant{Value: "5", Type: hornc.NumericInt},
		},
	}
	c := testClause(
		testAtom("nums", testVar("x")),
		&ast.BinaryConstraint{Op: hornc.BinaryEQ, Lhs: testVar("x"), Rhs: rng},
	)

	tr := NewClauseTranslator(ctx, st)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Levels())

	gen, ok := unwrapQuery(t, stmt).(*ram.NestedIntrinsicOperator)
	require.True(t, ok)
	assert.Equal(t, ram.NestedRange, gen.Op)
	assert.Equal(t, 0, gen.Level)
	require.Len(t, gen.Args, 2)
	assert.Equal(t, &ram.SignedConstant{Value: 1}, gen.Args[0])
	assert.Equal(t, &ram.SignedConstant{Value: 5}, gen.Args[1])
}

func TestLowerPlainFunctorStaysExpression(t *testing.T) {
	ctx := testContext(t, testRel("m.in", 1), testRel("m.out", 1))
	st := hornc.NewSymbolTable()

	// out(x+1) :- in(x).
	inc := &ast.IntrinsicFunctor{
		FinalOp: hornc.FunctorAdd,
		Args:    []ast.Argument{testVar("x"), &ast.NumericConstant{Value: "1", Type: hornc.NumericInt}},
	}
	c := testClause(
		testAtom("m.out", inc),
		testAtom("m.in", testVar("x")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)
	assert.Contains(t, stmt.String(), "PROJECT ((t0.0+number(1))) INTO m.out")
}

func TestLowerNullaryHead(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("nonempty", 0))
	st := hornc.NewSymbolTable()

	// nonempty() :- edge(x, y).
	c := testClause(
		testAtom("nonempty"),
		testAtom("graph.edge", testVar("x"), testVar("y")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	expected := "QUERY\n" +
		"  IF ISEMPTY(nonempty)\n" +
		"    FOR t0 IN graph.edge\n" +
		"      BREAK IF NOT ISEMPTY(nonempty)\n" +
		"        IF NOT ISEMPTY(graph.edge)\n" +
		"          IF ISEMPTY(nonempty)\n" +
		"            PROJECT () INTO nonempty"
	assert.Equal(t, expected, stmt.String())
}

func TestLowerNullaryBodyAtomEmitsNoScan(t *testing.T) {
	ctx := testContext(t, testRel("cond", 0), testRel("flag", 0))
	st := hornc.NewSymbolTable()

	// flag() :- cond().
	c := testClause(testAtom("flag"), testAtom("cond"))

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	expected := "QUERY\n" +
		"  IF ISEMPTY(flag)\n" +
		"    IF NOT ISEMPTY(cond)\n" +
		"      IF ISEMPTY(flag)\n" +
		"        PROJECT () INTO flag"
	assert.Equal(t, expected, stmt.String())
}

func TestLowerAllUnnamedAtomEmitsNoScan(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("flag", 0))
	st := hornc.NewSymbolTable()

	// flag() :- edge(_, _).
	c := testClause(
		testAtom("flag"),
		testAtom("graph.edge", &ast.UnnamedVariable{}, &ast.UnnamedVariable{}),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)
	assert.NotContains(t, stmt.String(), "FOR t0")
	assert.Contains(t, stmt.String(), "IF NOT ISEMPTY(graph.edge)")
}

func TestLowerUngroundedVariableFails(t *testing.T) {
	ctx := testContext(t, testRel("p", 1), testRel("q", 1))
	st := hornc.NewSymbolTable()

	// p(x) :- q(y).
	c := testClause(
		testAtom("p", testVar("x")),
		testAtom("q", testVar("y")),
	)

	_, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no definition point")
	assert.Contains(t, err.Error(), "test.dl")
}

func TestLowerRecursiveVersionZero(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.path", 2))
	st := hornc.NewSymbolTable()

	// path(x,z) :- path(x,y), path(y,z).
	body0 := testAtom("graph.path", testVar("x"), testVar("y"))
	body1 := testAtom("graph.path", testVar("y"), testVar("z"))
	c := testClause(testAtom("graph.path", testVar("x"), testVar("z")), body0, body1)
	sccAtoms := []*ast.Atom{body0, body1}

	tr := NewRecursiveClauseTranslator(ctx, st, sccAtoms, 0)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)

	expected := "QUERY\n" +
		"  FOR t0 IN @delta_graph.path\n" +
		"    IF NOT ISEMPTY(@delta_graph.path)\n" +
		"      FOR t1 IN graph.path\n" +
		"        IF NOT ISEMPTY(graph.path)\n" +
		"          IF NOT (t0.1,t1.1) IN @delta_graph.path\n" +
		"            IF NOT (t0.0,t1.1) IN @new_graph.path\n" +
		"              IF (t0.1 = t1.0)\n" +
		"                PROJECT (t0.0,t1.1) INTO @new_graph.path"
	assert.Equal(t, expected, stmt.String())
}

func TestLowerRecursiveVersionOne(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.path", 2))
	st := hornc.NewSymbolTable()

	body0 := testAtom("graph.path", testVar("x"), testVar("y"))
	body1 := testAtom("graph.path", testVar("y"), testVar("z"))
	c := testClause(testAtom("graph.path", testVar("x"), testVar("z")), body0, body1)
	sccAtoms := []*ast.Atom{body0, body1}

	tr := NewRecursiveClauseTranslator(ctx, st, sccAtoms, 1)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)

	text := stmt.String()
	// The second version reads the delta for the second atom and has no
	// trailing delta negations.
	assert.Contains(t, text, "FOR t0 IN graph.path")
	assert.Contains(t, text, "FOR t1 IN @delta_graph.path")
	assert.Contains(t, text, "IF NOT (t0.0,t1.1) IN @new_graph.path")
	assert.NotContains(t, text, "IF NOT (t1.0,t1.1) IN @delta_graph.path")
}

func TestLowerPlanReordersAtoms(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.path", 2))
	st := hornc.NewSymbolTable()

	// path(x,z) :- path(x,y), edge(y,z). with plan version 0: [2, 1]
	body0 := testAtom("graph.path", testVar("x"), testVar("y"))
	body1 := testAtom("graph.edge", testVar("y"), testVar("z"))
	c := testClause(testAtom("graph.path", testVar("x"), testVar("z")), body0, body1)
	c.Plan = ast.NewExecutionPlan()
	c.Plan.SetOrder(0, []int{2, 1})

	tr := NewRecursiveClauseTranslator(ctx, st, []*ast.Atom{body0}, 0)
	stmt, err := tr.Translate(c, c)
	require.NoError(t, err)

	// The edge atom now owns level 0 and the delta-read path atom owns
	// level 1.
	text := stmt.String()
	assert.Contains(t, text, "FOR t0 IN graph.edge")
	assert.Contains(t, text, "FOR t1 IN @delta_graph.path")
}

func TestLowerPlanRejectsBadPermutation(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.path", 2))
	st := hornc.NewSymbolTable()

	body0 := testAtom("graph.path", testVar("x"), testVar("y"))
	body1 := testAtom("graph.edge", testVar("y"), testVar("z"))
	c := testClause(testAtom("graph.path", testVar("x"), testVar("z")), body0, body1)
	c.Plan = ast.NewExecutionPlan()
	c.Plan.SetOrder(0, []int{2, 2})

	tr := NewRecursiveClauseTranslator(ctx, st, []*ast.Atom{body0}, 0)
	_, err := tr.Translate(c, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a permutation")
}

func TestLowerProfileAnnotationText(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.reach", 1))
	ctx.EnableProfiling()
	st := hornc.NewSymbolTable()

	c := testClause(
		testAtom("graph.reach", testVar("y")),
		testAtom("graph.edge", testVar("x"), testVar("y")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	scan, ok := unwrapQuery(t, stmt).(*ram.Scan)
	require.True(t, ok)
	assert.Equal(t,
		"@frequency-atom;graph.reach;0;"+
			"graph.reach(y) :- graph.edge(x,y).;"+
			"graph.edge(x,y);"+
			"graph.reach(y) :- graph.edge(x,y).;"+
			"0;",
		scan.Profile)
}

func TestLowerWithoutProfilingLeavesScanUnannotated(t *testing.T) {
	ctx := testContext(t, testRel("graph.edge", 2), testRel("graph.reach", 1))
	st := hornc.NewSymbolTable()

	c := testClause(
		testAtom("graph.reach", testVar("y")),
		testAtom("graph.edge", testVar("x"), testVar("y")),
	)

	stmt, err := NewClauseTranslator(ctx, st).Translate(c, c)
	require.NoError(t, err)

	scan, ok := unwrapQuery(t, stmt).(*ram.Scan)
	require.True(t, ok)
	assert.Empty(t, scan.Profile)
}
