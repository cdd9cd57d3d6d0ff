package lower

import (
	"sort"

	"github.com/wbrown/janus-hornc/hornc/ast"
)

// Location is a coordinate inside the generated query: a nesting level
// and an element index within that level's tuple.
type Location struct {
	Level   int
	Element int
}

// Compare orders locations by level, then element
func (l Location) Compare(other Location) int {
	if l.Level != other.Level {
		if l.Level < other.Level {
			return -1
		}
		return 1
	}
	switch {
	case l.Element < other.Element:
		return -1
	case l.Element > other.Element:
		return 1
	default:
		return 0
	}
}

// ValueIndex records where each clause value lives in the generated
// query. Variable references are kept as ordered sets so the smallest
// location is always the definition point. Generator results and record
// definitions are tracked by AST node identity.
type ValueIndex struct {
	varRefs       map[string][]Location
	recordDefs    map[*ast.RecordInit]Location
	generatorLocs map[ast.Argument]Location
	generatorLvls map[int]bool
}

// NewValueIndex creates an empty index
func NewValueIndex() *ValueIndex {
	return &ValueIndex{
		varRefs:       make(map[string][]Location),
		recordDefs:    make(map[*ast.RecordInit]Location),
		generatorLocs: make(map[ast.Argument]Location),
		generatorLvls: make(map[int]bool),
	}
}

// AddVarReference records that the named variable is bound at the given
// location. Duplicate locations collapse.
func (vi *ValueIndex) AddVarReference(name string, loc Location) {
	refs := vi.varRefs[name]
	i := sort.Search(len(refs), func(i int) bool {
		return refs[i].Compare(loc) >= 0
	})
	if i < len(refs) && refs[i] == loc {
		return
	}
	refs = append(refs, Location{})
	copy(refs[i+1:], refs[i:])
	refs[i] = loc
	vi.varRefs[name] = refs
}

// References returns the ordered reference set for a variable
func (vi *ValueIndex) References(name string) []Location {
	return vi.varRefs[name]
}

// DefinitionPoint returns the smallest location referencing the variable.
func (vi *ValueIndex) DefinitionPoint(name string) (Location, bool) {
	refs := vi.varRefs[name]
	if len(refs) == 0 {
		return Location{}, false
	}
	return refs[0], true
}

// IsDefined reports whether the variable has at least one reference
func (vi *ValueIndex) IsDefined(name string) bool {
	return len(vi.varRefs[name]) > 0
}

// VariableNames returns all indexed variable names in sorted order.
func (vi *ValueIndex) VariableNames() []string {
	names := make([]string, 0, len(vi.varRefs))
	for name := range vi.varRefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetRecordDefinition records the level unpacking a record pattern
func (vi *ValueIndex) SetRecordDefinition(rec *ast.RecordInit, loc Location) {
	vi.recordDefs[rec] = loc
}

// RecordDefinition returns the unpack location of a record pattern
func (vi *ValueIndex) RecordDefinition(rec *ast.RecordInit) (Location, bool) {
	loc, ok := vi.recordDefs[rec]
	return loc, ok
}

// SetGeneratorLoc records where a generator's single result is bound.
// The level is marked so variable-binding constraints skip it.
func (vi *ValueIndex) SetGeneratorLoc(gen ast.Argument, loc Location) {
	vi.generatorLocs[gen] = loc
	vi.generatorLvls[loc.Level] = true
}

// GeneratorLoc returns the result location of a generator
func (vi *ValueIndex) GeneratorLoc(gen ast.Argument) (Location, bool) {
	loc, ok := vi.generatorLocs[gen]
	return loc, ok
}

// IsGeneratorLevel reports whether the level is owned by a generator.
func (vi *ValueIndex) IsGeneratorLevel(level int) bool {
	return vi.generatorLvls[level]
}
