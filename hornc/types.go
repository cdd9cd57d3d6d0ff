package hornc

import (
	"fmt"
	"strings"
)

// RamDomain is the flat integer domain every RAM value lives in.
// Signed, unsigned, and float values are all reinterpreted into it;
// strings are represented by their symbol table index.
type RamDomain = int64

// QualifiedName identifies a relation, e.g. "graph.edge".
type QualifiedName struct {
	parts []string
}

// NewQualifiedName creates a qualified name from dot-joined parts
func NewQualifiedName(parts ...string) QualifiedName {
	return QualifiedName{parts: parts}
}

// ParseQualifiedName splits a dot-joined name into a QualifiedName
func ParseQualifiedName(name string) QualifiedName {
	return QualifiedName{parts: strings.Split(name, ".")}
}

// String returns the dot-joined name
func (q QualifiedName) String() string {
	return strings.Join(q.parts, ".")
}

// Parts returns the name components
func (q QualifiedName) Parts() []string {
	return q.parts
}

// Compare compares two qualified names lexicographically
func (q QualifiedName) Compare(other QualifiedName) int {
	return strings.Compare(q.String(), other.String())
}

// SrcLocation is a source code span attached to clauses for diagnostics
// and debug annotations.
type SrcLocation struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String formats the location the way diagnostics print it,
// e.g. "graph.dl [2:1-2:34]"
func (l SrcLocation) String() string {
	if l.File == "" && l.StartLine == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s [%d:%d-%d:%d]", l.File, l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}

// Stringify escapes clause and atom text for embedding in semicolon-delimited
// annotation strings. The escaping is part of the output stability contract:
// profile log parsers depend on it.
func Stringify(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case ';':
			sb.WriteString(`\;`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
