package lower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/ram"
)

// ClauseTranslator lowers a single clause into a RAM statement. A
// translator is single-use: each clause version gets a fresh one.
type ClauseTranslator struct {
	ctx        Context
	st         *hornc.SymbolTable
	index      *ValueIndex
	operators  []ast.Node
	generators []ast.Argument
	sccAtoms   []*ast.Atom
	version    int
	recursive  bool
}

// NewClauseTranslator creates a translator for non-recursive lowering
func NewClauseTranslator(ctx Context, st *hornc.SymbolTable) *ClauseTranslator {
	return &ClauseTranslator{
		ctx:   ctx,
		st:    st,
		index: NewValueIndex(),
	}
}

// NewRecursiveClauseTranslator creates a translator lowering one version
// of a clause inside an SCC. sccAtoms are the body atoms whose relations
// belong to the SCC, in source order; version selects which of them is
// read from the delta relation.
func NewRecursiveClauseTranslator(ctx Context, st *hornc.SymbolTable, sccAtoms []*ast.Atom, version int) *ClauseTranslator {
	return &ClauseTranslator{
		ctx:       ctx,
		st:        st,
		index:     NewValueIndex(),
		sccAtoms:  sccAtoms,
		version:   version,
		recursive: true,
	}
}

// Levels returns the number of nesting levels the lowered query uses.
func (t *ClauseTranslator) Levels() int {
	return len(t.operators) + len(t.generators)
}

// Translate lowers the clause. original is the clause before any host
// rewriting; its text feeds profile annotations.
func (t *ClauseTranslator) Translate(clause, original *ast.Clause) (ram.Statement, error) {
	if clause.IsFact() {
		if t.recursive {
			return nil, locatedErrorf(clause, "recursive lowering of a fact")
		}
		return t.createFactQuery(clause)
	}
	return t.createRuleQuery(clause, original)
}

// locatedErrorf formats a structural violation with the clause's source
// location.
func locatedErrorf(clause *ast.Clause, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", clause.SrcLoc, fmt.Sprintf(format, args...))
}

// clauseAtomName resolves the physical relation an atom reads or writes
// in this clause version.
func (t *ClauseTranslator) clauseAtomName(clause *ast.Clause, atom *ast.Atom) string {
	if !t.recursive {
		return t.ctx.ConcreteName(atom.Name)
	}
	if atom == clause.Head {
		return t.ctx.NewName(atom.Name)
	}
	if t.version < len(t.sccAtoms) && atom == t.sccAtoms[t.version] {
		return t.ctx.DeltaName(atom.Name)
	}
	return t.ctx.ConcreteName(atom.Name)
}

// --- fact lowering ---

func (t *ClauseTranslator) createFactQuery(clause *ast.Clause) (ram.Statement, error) {
	for _, arg := range clause.Head.Args {
		if !isConstant(arg) {
			return nil, locatedErrorf(clause, "fact argument %s is not a constant", arg)
		}
	}
	proj, err := t.createProjection(clause)
	if err != nil {
		return nil, err
	}
	return &ram.Query{Op: proj}, nil
}

// --- rule lowering ---

func (t *ClauseTranslator) createRuleQuery(clause, original *ast.Clause) (ram.Statement, error) {
	if err := t.indexClause(clause); err != nil {
		return nil, err
	}

	op, err := t.createProjection(clause)
	if err != nil {
		return nil, err
	}
	if op, err = t.addVariableBindingConstraints(op); err != nil {
		return nil, err
	}
	if op, err = t.addBodyLiteralConstraints(clause, op); err != nil {
		return nil, err
	}
	if op, err = t.addGeneratorLevels(clause, op); err != nil {
		return nil, err
	}
	if op, err = t.addVariableIntroductions(clause, original, op); err != nil {
		return nil, err
	}
	op = t.addEntryPoint(clause, op)
	return &ram.Query{Op: op}, nil
}

// --- indexing ---

// atomOrdering returns the body atoms in execution order: source order,
// unless the clause plan imposes a permutation for this version.
func (t *ClauseTranslator) atomOrdering(clause *ast.Clause) ([]*ast.Atom, error) {
	atoms := clause.BodyAtoms()
	if clause.Plan == nil {
		return atoms, nil
	}
	order, ok := clause.Plan.Order(t.version)
	if !ok {
		return atoms, nil
	}
	if len(order) != len(atoms) {
		return nil, locatedErrorf(clause, "plan for version %d orders %d atoms, clause has %d",
			t.version, len(order), len(atoms))
	}
	reordered := make([]*ast.Atom, len(atoms))
	seen := make(map[int]bool, len(order))
	for i, pos := range order {
		idx := pos - 1
		if idx < 0 || idx >= len(atoms) || seen[idx] {
			return nil, locatedErrorf(clause, "plan for version %d is not a permutation", t.version)
		}
		seen[idx] = true
		reordered[i] = atoms[idx]
	}
	return reordered, nil
}

// addOperatorLevel reserves the next operator level for a node
func (t *ClauseTranslator) addOperatorLevel(node ast.Node) int {
	level := len(t.operators)
	t.operators = append(t.operators, node)
	return level
}

// addGeneratorLevel reserves a level after all operator levels. Operator
// indexing finishes before any generator registers, so the combined
// range stays dense.
func (t *ClauseTranslator) addGeneratorLevel(arg ast.Argument) int {
	level := len(t.operators) + len(t.generators)
	t.generators = append(t.generators, arg)
	return level
}

func (t *ClauseTranslator) indexClause(clause *ast.Clause) error {
	if err := t.indexAtoms(clause); err != nil {
		return err
	}
	if err := t.indexAggregators(clause); err != nil {
		return err
	}
	t.indexMultiResultFunctors(clause)
	return nil
}

func (t *ClauseTranslator) indexAtoms(clause *ast.Clause) error {
	atoms, err := t.atomOrdering(clause)
	if err != nil {
		return err
	}
	for _, atom := range atoms {
		level := t.addOperatorLevel(atom)
		t.indexNodeArguments(level, atom.Args)
	}
	return nil
}

// indexNodeArguments records variable references at the given level and
// opens a fresh operator level for every record pattern encountered.
func (t *ClauseTranslator) indexNodeArguments(level int, args []ast.Argument) {
	for i, arg := range args {
		switch a := arg.(type) {
		case *ast.Variable:
			t.index.AddVarReference(a.Name, Location{Level: level, Element: i})
		case *ast.RecordInit:
			t.index.SetRecordDefinition(a, Location{Level: level, Element: i})
			unpackLevel := t.addOperatorLevel(a)
			t.indexNodeArguments(unpackLevel, a.Args)
		}
	}
}

func (t *ClauseTranslator) addGenerator(arg ast.Argument) {
	level := t.addGeneratorLevel(arg)
	t.index.SetGeneratorLoc(arg, Location{Level: level, Element: 0})
}

func (t *ClauseTranslator) indexAggregators(clause *ast.Clause) error {
	// Register every aggregator as a generator first so value
	// introductions can resolve their locations.
	ast.VisitAggregators(clause, func(agg *ast.Aggregator) {
		t.addGenerator(agg)
	})

	// Index the aggregator bodies.
	var err error
	ast.VisitAggregators(clause, func(agg *ast.Aggregator) {
		if err != nil {
			return
		}
		err = t.indexAggregatorBody(clause, agg)
	})
	if err != nil {
		return err
	}

	// Record value introductions of the form V = <agg>.
	ast.VisitBinaryConstraints(clause, func(bc *ast.BinaryConstraint) {
		if !bc.Op.IsEquality() {
			return
		}
		v, okVar := bc.Lhs.(*ast.Variable)
		agg, okAgg := bc.Rhs.(*ast.Aggregator)
		if okVar && okAgg {
			if loc, ok := t.index.GeneratorLoc(agg); ok {
				t.index.AddVarReference(v.Name, loc)
			}
		}
	})
	return nil
}

// aggregatorAtom returns the single atom of an aggregator body.
func (t *ClauseTranslator) aggregatorAtom(clause *ast.Clause, agg *ast.Aggregator) (*ast.Atom, error) {
	var atoms []*ast.Atom
	for _, l := range agg.Body {
		if a, ok := l.(*ast.Atom); ok {
			atoms = append(atoms, a)
		}
	}
	if len(atoms) != 1 {
		return nil, locatedErrorf(clause, "aggregator %s has %d body atoms, expected 1", agg, len(atoms))
	}
	return atoms[0], nil
}

func (t *ClauseTranslator) indexAggregatorBody(clause *ast.Clause, agg *ast.Aggregator) error {
	loc, ok := t.index.GeneratorLoc(agg)
	if !ok {
		return locatedErrorf(clause, "aggregator %s was not registered as a generator", agg)
	}
	atom, err := t.aggregatorAtom(clause, agg)
	if err != nil {
		return err
	}
	for i, arg := range atom.Args {
		if v, isVar := arg.(*ast.Variable); isVar {
			t.index.AddVarReference(v.Name, Location{Level: loc.Level, Element: i})
		}
	}
	return nil
}

func (t *ClauseTranslator) indexMultiResultFunctors(clause *ast.Clause) {
	ast.VisitFunctors(clause, func(f *ast.IntrinsicFunctor) {
		if t.ctx.IsMultiResult(f) {
			t.addGenerator(f)
		}
	})

	ast.VisitBinaryConstraints(clause, func(bc *ast.BinaryConstraint) {
		if !bc.Op.IsEquality() {
			return
		}
		v, okVar := bc.Lhs.(*ast.Variable)
		f, okFun := bc.Rhs.(*ast.IntrinsicFunctor)
		if okVar && okFun && t.ctx.IsMultiResult(f) {
			if loc, ok := t.index.GeneratorLoc(f); ok {
				t.index.AddVarReference(v.Name, loc)
			}
		}
	})
}

// --- building ---

func (t *ClauseTranslator) createProjection(clause *ast.Clause) (ram.Operation, error) {
	relation := t.clauseAtomName(clause, clause.Head)

	values := make([]ram.Expression, 0, len(clause.Head.Args))
	for _, arg := range clause.Head.Args {
		v, err := translateValue(t.ctx, t.st, t.index, arg)
		if err != nil {
			return nil, locatedErrorf(clause, "translating head argument %s: %v", arg, err)
		}
		values = append(values, v)
	}

	var op ram.Operation = &ram.Project{Relation: relation, Values: values}

	// A nullary head inserts at most once.
	if clause.Head.Arity() == 0 {
		op = &ram.Filter{Cond: &ram.EmptinessCheck{Relation: relation}, Nested: op}
	}
	return op, nil
}

// addVariableBindingConstraints equates the first appearance of each
// variable with every later appearance. References bound by generators
// are skipped; the generator instantiation equates them itself.
func (t *ClauseTranslator) addVariableBindingConstraints(op ram.Operation) (ram.Operation, error) {
	for _, name := range t.index.VariableNames() {
		refs := t.index.References(name)
		first := refs[0]
		for _, loc := range refs[1:] {
			if t.index.IsGeneratorLevel(loc.Level) {
				continue
			}
			op = &ram.Filter{
				Cond: &ram.Constraint{
					Op:  hornc.BinaryEQ,
					Lhs: &ram.TupleElement{Level: first.Level, Element: first.Element},
					Rhs: &ram.TupleElement{Level: loc.Level, Element: loc.Element},
				},
				Nested: op,
			}
		}
	}
	return op, nil
}

func (t *ClauseTranslator) addBodyLiteralConstraints(clause *ast.Clause, op ram.Operation) (ram.Operation, error) {
	for _, lit := range clause.Body {
		cond, err := translateConstraint(t.ctx, t.st, t.index, lit)
		if err != nil {
			return nil, locatedErrorf(clause, "translating body literal %s: %v", lit, err)
		}
		if cond != nil {
			op = &ram.Filter{Cond: cond, Nested: op}
		}
	}

	if t.recursive {
		// Tuples already produced in this iteration are not produced
		// again.
		if clause.Head.Arity() > 0 {
			cond, err := negationCondition(t.ctx, t.st, t.index, clause.Head,
				t.ctx.NewName(clause.Head.Name))
			if err != nil {
				return nil, locatedErrorf(clause, "negating head: %v", err)
			}
			op = &ram.Filter{Cond: cond, Nested: op}
		}

		// Later versions cover the combinations where a following SCC
		// atom matches the delta, so those are excluded here.
		for _, prev := range t.sccAtoms[t.version+1:] {
			if prev.Arity() == 0 {
				continue
			}
			values, err := atomExistenceValues(t.ctx, t.st, t.index, prev)
			if err != nil {
				return nil, locatedErrorf(clause, "negating delta atom %s: %v", prev, err)
			}
			op = &ram.Filter{
				Cond: &ram.Negation{
					Operand: &ram.ExistenceCheck{
						Relation: t.ctx.DeltaName(prev.Name),
						Values:   values,
					},
				},
				Nested: op,
			}
		}
	}
	return op, nil
}

func (t *ClauseTranslator) addGeneratorLevels(clause *ast.Clause, op ram.Operation) (ram.Operation, error) {
	level := len(t.operators) + len(t.generators) - 1
	for i := len(t.generators) - 1; i >= 0; i-- {
		var err error
		switch gen := t.generators[i].(type) {
		case *ast.Aggregator:
			op, err = t.instantiateAggregator(clause, gen, level, op)
		case *ast.IntrinsicFunctor:
			op, err = t.instantiateMultiResultFunctor(clause, gen, level, op)
		default:
			err = locatedErrorf(clause, "unsupported generator %s", t.generators[i])
		}
		if err != nil {
			return nil, err
		}
		level--
	}
	return op, nil
}

func (t *ClauseTranslator) instantiateAggregator(clause *ast.Clause, agg *ast.Aggregator, level int, op ram.Operation) (ram.Operation, error) {
	atom, err := t.aggregatorAtom(clause, agg)
	if err != nil {
		return nil, err
	}

	var cond ram.Condition
	for _, lit := range agg.Body {
		c, err := translateConstraint(t.ctx, t.st, t.index, lit)
		if err != nil {
			return nil, locatedErrorf(clause, "translating aggregator literal %s: %v", lit, err)
		}
		cond = ram.Conjoin(cond, c)
	}

	for i, arg := range atom.Args {
		if v, isVar := arg.(*ast.Variable); isVar {
			// Equate against the first reference that is not this
			// column itself, so shared variables connect the aggregate
			// to the outer scope.
			for _, loc := range t.index.References(v.Name) {
				if loc.Level != level || loc.Element != i {
					cond = ram.Conjoin(cond, &ram.Constraint{
						Op:  hornc.BinaryEQ,
						Lhs: &ram.TupleElement{Level: level, Element: i},
						Rhs: &ram.TupleElement{Level: loc.Level, Element: loc.Element},
					})
					break
				}
			}
		} else {
			value, err := translateValue(t.ctx, t.st, t.index, arg)
			if err != nil {
				return nil, locatedErrorf(clause, "translating aggregator argument %s: %v", arg, err)
			}
			if _, undef := value.(*ram.UndefValue); !undef {
				cond = ram.Conjoin(cond, &ram.Constraint{
					Op:  hornc.BinaryEQ,
					Lhs: &ram.TupleElement{Level: level, Element: i},
					Rhs: value,
				})
			}
		}
	}

	var target ram.Expression
	if agg.Target != nil {
		target, err = translateValue(t.ctx, t.st, t.index, agg.Target)
		if err != nil {
			return nil, locatedErrorf(clause, "translating aggregate target %s: %v", agg.Target, err)
		}
	}

	if cond == nil {
		cond = &ram.True{}
	}

	return &ram.Aggregate{
		Op:       agg.ResolvedOp(),
		Relation: t.clauseAtomName(clause, atom),
		Level:    level,
		Target:   target,
		Cond:     cond,
		Nested:   op,
	}, nil
}

func (t *ClauseTranslator) instantiateMultiResultFunctor(clause *ast.Clause, f *ast.IntrinsicFunctor, level int, op ram.Operation) (ram.Operation, error) {
	args := make([]ram.Expression, 0, len(f.Args))
	for _, arg := range f.Args {
		v, err := translateValue(t.ctx, t.st, t.index, arg)
		if err != nil {
			return nil, locatedErrorf(clause, "translating functor argument %s: %v", arg, err)
		}
		args = append(args, v)
	}

	var nestedOp ram.NestedIntrinsicOp
	switch f.FinalOp {
	case hornc.FunctorRange:
		nestedOp = ram.NestedRange
	case hornc.FunctorURange:
		nestedOp = ram.NestedURange
	case hornc.FunctorFRange:
		nestedOp = ram.NestedFRange
	default:
		return nil, locatedErrorf(clause, "functor %s is not a generator", f)
	}

	return &ram.NestedIntrinsicOperator{
		Op:     nestedOp,
		Level:  level,
		Args:   args,
		Nested: op,
	}, nil
}

func (t *ClauseTranslator) addVariableIntroductions(clause, original *ast.Clause, op ram.Operation) (ram.Operation, error) {
	for level := len(t.operators) - 1; level >= 0; level-- {
		var err error
		switch node := t.operators[level].(type) {
		case *ast.Atom:
			op, err = t.addAtomScan(clause, original, node, level, op)
		case *ast.RecordInit:
			op, err = t.addRecordUnpack(clause, node, level, op)
		default:
			err = locatedErrorf(clause, "unsupported operator node %s", t.operators[level])
		}
		if err != nil {
			return nil, err
		}
	}
	return op, nil
}

func (t *ClauseTranslator) addAtomScan(clause, original *ast.Clause, atom *ast.Atom, level int, op ram.Operation) (ram.Operation, error) {
	relation := t.clauseAtomName(clause, atom)

	op, err := t.addConstantConstraints(clause, level, atom.Args, op)
	if err != nil {
		return nil, err
	}

	op = &ram.Filter{
		Cond:   &ram.Negation{Operand: &ram.EmptinessCheck{Relation: relation}},
		Nested: op,
	}

	if atom.Arity() == 0 || allArgsUnnamed(atom) {
		return op, nil
	}

	// A nullary head stops all iteration once it is derived.
	if clause.Head.Arity() == 0 {
		headRelation := t.clauseAtomName(clause, clause.Head)
		op = &ram.Break{
			Cond:   &ram.Negation{Operand: &ram.EmptinessCheck{Relation: headRelation}},
			Nested: op,
		}
	}

	var profile string
	if t.ctx.ProfileEnabled() {
		profile = t.frequencyAnnotation(clause, original, atom, level)
	}

	return &ram.Scan{
		Relation: relation,
		Level:    level,
		Nested:   op,
		Profile:  profile,
	}, nil
}

// frequencyAnnotation builds the semicolon-delimited profile text
// attached to scans.
func (t *ClauseTranslator) frequencyAnnotation(clause, original *ast.Clause, atom *ast.Atom, level int) string {
	var sb strings.Builder
	sb.WriteString("@frequency-atom;")
	sb.WriteString(clause.Head.Name.String())
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(t.version))
	sb.WriteByte(';')
	sb.WriteString(hornc.Stringify(clause.String()))
	sb.WriteByte(';')
	sb.WriteString(hornc.Stringify(atom.String()))
	sb.WriteByte(';')
	sb.WriteString(hornc.Stringify(original.String()))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(level))
	sb.WriteByte(';')
	return sb.String()
}

func (t *ClauseTranslator) addRecordUnpack(clause *ast.Clause, rec *ast.RecordInit, level int, op ram.Operation) (ram.Operation, error) {
	op, err := t.addConstantConstraints(clause, level, rec.Args, op)
	if err != nil {
		return nil, err
	}

	loc, ok := t.index.RecordDefinition(rec)
	if !ok {
		return nil, locatedErrorf(clause, "record %s has no definition point", rec)
	}
	return &ram.UnpackRecord{
		Level:  level,
		Arity:  len(rec.Args),
		Source: &ram.TupleElement{Level: loc.Level, Element: loc.Element},
		Nested: op,
	}, nil
}

// addConstantConstraints pins the level's constant columns with equality
// filters. Float constants compare with float equality.
func (t *ClauseTranslator) addConstantConstraints(clause *ast.Clause, level int, args []ast.Argument, op ram.Operation) (ram.Operation, error) {
	for i, arg := range args {
		if !isConstant(arg) {
			continue
		}
		value, err := TranslateConstant(t.st, arg)
		if err != nil {
			return nil, locatedErrorf(clause, "translating constant %s: %v", arg, err)
		}
		eqOp := hornc.BinaryEQ
		if nc, ok := arg.(*ast.NumericConstant); ok && nc.Type == hornc.NumericFloat {
			eqOp = hornc.BinaryFEQ
		}
		op = &ram.Filter{
			Cond: &ram.Constraint{
				Op:  eqOp,
				Lhs: &ram.TupleElement{Level: level, Element: i},
				Rhs: value,
			},
			Nested: op,
		}
	}
	return op, nil
}

// addEntryPoint guards the whole query for nullary heads: once the head
// relation holds its tuple there is nothing left to derive.
func (t *ClauseTranslator) addEntryPoint(clause *ast.Clause, op ram.Operation) ram.Operation {
	if clause.Head.Arity() != 0 {
		return op
	}
	return &ram.Filter{
		Cond:   &ram.EmptinessCheck{Relation: t.clauseAtomName(clause, clause.Head)},
		Nested: op,
	}
}

func allArgsUnnamed(atom *ast.Atom) bool {
	for _, arg := range atom.Args {
		if _, ok := arg.(*ast.UnnamedVariable); !ok {
			return false
		}
	}
	return true
}
