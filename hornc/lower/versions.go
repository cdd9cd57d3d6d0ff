package lower

import (
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/annotations"
	"github.com/wbrown/janus-hornc/hornc/ast"
	"github.com/wbrown/janus-hornc/hornc/ram"
)

// Options carries per-run lowering settings.
type Options struct {
	// Collector receives lowering events when non-nil.
	Collector *annotations.Collector
}

func (o *Options) collector() *annotations.Collector {
	if o == nil {
		return nil
	}
	return o.Collector
}

// LowerClause lowers a non-recursive clause, fact or rule, into a single
// RAM statement.
func LowerClause(ctx Context, st *hornc.SymbolTable, clause *ast.Clause, opts *Options) (ram.Statement, error) {
	start := time.Now()
	t := NewClauseTranslator(ctx, st)
	stmt, err := t.Translate(clause, clause)
	if err != nil {
		opts.collector().AddTiming(annotations.ErrorTranslation, start, map[string]interface{}{
			"error": err,
		})
		return nil, err
	}

	if clause.IsFact() {
		opts.collector().AddTiming(annotations.FactLowered, start, map[string]interface{}{
			"clause":   clause.String(),
			"relation": ctx.ConcreteName(clause.Head.Name),
		})
	} else {
		opts.collector().AddTiming(annotations.ClauseLowered, start, map[string]interface{}{
			"clause": clause.String(),
			"levels": t.Levels(),
		})
	}

	log.WithFields(log.Fields{
		"clause": clause.String(),
		"levels": t.Levels(),
	}).Debug("lowered clause")

	return stmt, nil
}

// LowerClauseVersions lowers a recursive clause into one statement per
// SCC-local body atom. scc names the relations of the clause's strongly
// connected component.
func LowerClauseVersions(ctx Context, st *hornc.SymbolTable, clause *ast.Clause, scc map[string]bool, opts *Options) ([]ram.Statement, error) {
	sccAtoms := sccBodyAtoms(clause, scc)

	var stmts []ram.Statement
	for version := range sccAtoms {
		stmt, err := lowerClauseVersion(ctx, st, clause, sccAtoms, version, opts)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	// Every version the plan names must have been produced.
	if clause.Plan != nil {
		if maxVersion := clause.Plan.MaxVersion(); len(sccAtoms) <= maxVersion {
			return nil, locatedErrorf(clause,
				"execution plan orders version %d but only %d versions were generated",
				maxVersion, len(sccAtoms))
		}
	}

	return stmts, nil
}

// sccBodyAtoms returns the body atoms whose relations are in the SCC, in
// source order.
func sccBodyAtoms(clause *ast.Clause, scc map[string]bool) []*ast.Atom {
	var atoms []*ast.Atom
	for _, atom := range clause.BodyAtoms() {
		if scc[atom.Name.String()] {
			atoms = append(atoms, atom)
		}
	}
	return atoms
}

func lowerClauseVersion(ctx Context, st *hornc.SymbolTable, clause *ast.Clause, sccAtoms []*ast.Atom, version int, opts *Options) (ram.Statement, error) {
	start := time.Now()
	t := NewRecursiveClauseTranslator(ctx, st, sccAtoms, version)
	rule, err := t.Translate(clause, clause)
	if err != nil {
		opts.collector().AddTiming(annotations.ErrorTranslation, start, map[string]interface{}{
			"error": err,
		})
		return nil, err
	}

	if ctx.ProfileEnabled() {
		rule = &ram.LogRelationTimer{
			Message:  recursiveRuleTimerMessage(clause, version),
			Relation: ctx.NewName(clause.Head.Name),
			Nested:   rule,
		}
	}

	rule = &ram.DebugInfo{
		Message: clause.String() + "\nin file " + clause.SrcLoc.String(),
		Nested:  rule,
	}

	opts.collector().AddTiming(annotations.VersionEmitted, start, map[string]interface{}{
		"relation": clause.Head.Name.String(),
		"version":  version,
		"delta":    ctx.DeltaName(sccAtoms[version].Name),
		"levels":   t.Levels(),
		"clause":   clause.String(),
	})

	log.WithFields(log.Fields{
		"relation": clause.Head.Name.String(),
		"version":  version,
		"delta":    ctx.DeltaName(sccAtoms[version].Name),
	}).Debug("emitted clause version")

	return ram.NewSequence(rule), nil
}

// recursiveRuleTimerMessage builds the semicolon-delimited timer text the
// profiler parses for recursive rules.
func recursiveRuleTimerMessage(clause *ast.Clause, version int) string {
	var sb strings.Builder
	sb.WriteString("@t-recursive-rule;")
	sb.WriteString(clause.Head.Name.String())
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(version))
	sb.WriteByte(';')
	sb.WriteString(clause.SrcLoc.String())
	sb.WriteByte(';')
	sb.WriteString(hornc.Stringify(clause.String()))
	sb.WriteByte(';')
	return sb.String()
}
