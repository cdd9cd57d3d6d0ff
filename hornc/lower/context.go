package lower

import (
	"fmt"

	"github.com/wbrown/janus-hornc/hornc"
	"github.com/wbrown/janus-hornc/hornc/ast"
)

// Context supplies the program-level facts the clause lowerer needs:
// relation signatures, physical relation naming, and which functors
// generate multiple results. Implementations must be safe for reuse
// across clauses.
type Context interface {
	// Relation returns the descriptor for a qualified name.
	Relation(name hornc.QualifiedName) (*ast.Relation, bool)

	// AuxiliaryArity returns the number of trailing bookkeeping columns
	// of the atom's relation.
	AuxiliaryArity(atom *ast.Atom) int

	// ConcreteName returns the physical name of the stable relation.
	ConcreteName(name hornc.QualifiedName) string

	// DeltaName returns the physical name of the delta relation used
	// during semi-naive evaluation.
	DeltaName(name hornc.QualifiedName) string

	// NewName returns the physical name of the new-tuples relation used
	// during semi-naive evaluation.
	NewName(name hornc.QualifiedName) string

	// IsMultiResult reports whether the functor generates multiple
	// result tuples.
	IsMultiResult(f *ast.IntrinsicFunctor) bool

	// ProfileEnabled reports whether frequency annotations and relation
	// timers should be attached to generated queries.
	ProfileEnabled() bool
}

// ProgramContext is the standard Context backed by an explicit relation
// registry.
type ProgramContext struct {
	relations map[string]*ast.Relation
	profile   bool
}

// NewProgramContext creates an empty context
func NewProgramContext() *ProgramContext {
	return &ProgramContext{
		relations: make(map[string]*ast.Relation),
	}
}

// EnableProfiling turns on frequency annotations and relation timers
func (c *ProgramContext) EnableProfiling() {
	c.profile = true
}

// RegisterRelation adds a relation descriptor to the registry. Returns
// an error if the name is already taken.
func (c *ProgramContext) RegisterRelation(rel *ast.Relation) error {
	key := rel.Name.String()
	if _, ok := c.relations[key]; ok {
		return fmt.Errorf("relation %s already registered", key)
	}
	c.relations[key] = rel
	return nil
}

// Relation returns the descriptor for a qualified name
func (c *ProgramContext) Relation(name hornc.QualifiedName) (*ast.Relation, bool) {
	rel, ok := c.relations[name.String()]
	return rel, ok
}

// AuxiliaryArity returns the auxiliary column count of the atom's relation
func (c *ProgramContext) AuxiliaryArity(atom *ast.Atom) int {
	if rel, ok := c.relations[atom.Name.String()]; ok {
		return rel.AuxArity
	}
	return 0
}

// ConcreteName returns the relation's qualified name unchanged
func (c *ProgramContext) ConcreteName(name hornc.QualifiedName) string {
	return name.String()
}

// DeltaName prefixes the qualified name with the delta marker
func (c *ProgramContext) DeltaName(name hornc.QualifiedName) string {
	return "@delta_" + name.String()
}

// NewName prefixes the qualified name with the new-tuples marker
func (c *ProgramContext) NewName(name hornc.QualifiedName) string {
	return "@new_" + name.String()
}

// IsMultiResult reports whether the functor's resolved operation
// generates multiple results.
func (c *ProgramContext) IsMultiResult(f *ast.IntrinsicFunctor) bool {
	return f.FinalOp.IsMultiResult()
}

// ProfileEnabled reports whether profiling output was requested
func (c *ProgramContext) ProfileEnabled() bool {
	return c.profile
}
