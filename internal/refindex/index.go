// Package refindex collects every declared identifier of an ISA-JSON document and
// every place one entity points at another.
package refindex

import (
	"fmt"
	"strings"
)

// Kind is the kind of a declared entity.
type Kind string

const (
	KindProtocol       Kind = "protocol"
	KindParameter      Kind = "parameter"
	KindFactor         Kind = "factor"
	KindSource         Kind = "source"
	KindSample         Kind = "sample"
	KindMaterial       Kind = "material"
	KindDataFile       Kind = "data file"
	KindProcess        Kind = "process"
	KindTermSource     Kind = "term source"
	KindCharacteristic Kind = "characteristic category"
	KindUnit           Kind = "unit category"
)

// Role is the semantic role of a reference field.
type Role string

const (
	RoleSource         Role = "source link"
	RoleSample         Role = "sample link"
	RoleDataFile       Role = "data-file link"
	RoleMaterial       Role = "material link"
	RoleProcess        Role = "process link"
	RoleProtocol       Role = "protocol-ref link"
	RoleFactor         Role = "factor link"
	RoleParameter      Role = "parameter link"
	RoleCharacteristic Role = "characteristic link"
	RoleUnit           Role = "unit link"
	RoleTermSource     Role = "term-source link"
)

// roleKinds lists the roles whose target must be declared as one particular kind.
var roleKinds = map[Role]Kind{
	RoleProtocol:  KindProtocol,
	RoleParameter: KindParameter,
	RoleFactor:    KindFactor,
	RoleProcess:   KindProcess,
}

// roleForNode picks the role of a process input/output or derivesFrom link from the
// prefix of the target id.
func roleForNode(id string) Role {
	switch {
	case strings.HasPrefix(id, "#source/"):
		return RoleSource
	case strings.HasPrefix(id, "#sample/"):
		return RoleSample
	case strings.HasPrefix(id, "#data/"):
		return RoleDataFile
	default:
		return RoleMaterial
	}
}

const studyLocSuffix = "(study location autocalculated by validator - Study ID in JSON not present)"

// Scope names the study enclosing a declaration or reference.
// Study is the 1-based position of the study; 0 means the investigation itself.
type Scope struct {
	Study   int
	StudyID string
}

// InvestigationScope is the scope of entities outside any study.
func InvestigationScope() Scope {
	return Scope{}
}

// IsInvestigation reports whether the scope is the investigation.
func (s Scope) IsInvestigation() bool {
	return s.Study == 0
}

// SameStudy reports whether both scopes name the same study.
func (s Scope) SameStudy(other Scope) bool {
	return s.Study == other.Study
}

// String returns the scope as used in findings.
func (s Scope) String() string {
	switch {
	case s.IsInvestigation():
		return "investigation"
	case s.StudyID != "":
		return "study " + s.StudyID
	default:
		return fmt.Sprintf("study loc %d %s", s.Study, studyLocSuffix)
	}
}

// Declaration records where an identifier is declared.
type Declaration struct {
	ID       string
	Kind     Kind
	Scope    Scope
	Location string
}

// Reference records a field pointing at an identifier.
// SourceID is the identifier of the referencing entity, empty when it has none.
type Reference struct {
	SourceID string
	TargetID string
	Role     Role
	Scope    Scope
	Location string
}

// Index is the reference graph of one document. It is built once and read-only afterwards.
type Index struct {
	declarations []Declaration
	byID         map[string][]int
	termSources  map[string][]int
	references   []Reference
}

func newIndex() *Index {
	return &Index{
		byID:        make(map[string][]int),
		termSources: make(map[string][]int),
	}
}

func (idx *Index) declare(d Declaration) {
	if d.ID == "" {
		return
	}
	idx.declarations = append(idx.declarations, d)
	pos := len(idx.declarations) - 1
	if d.Kind == KindTermSource {
		idx.termSources[d.ID] = append(idx.termSources[d.ID], pos)
		return
	}
	idx.byID[d.ID] = append(idx.byID[d.ID], pos)
}

func (idx *Index) reference(r Reference) {
	idx.references = append(idx.references, r)
}

// Declarations returns all declarations in document order.
func (idx *Index) Declarations() []Declaration {
	out := make([]Declaration, len(idx.declarations))
	copy(out, idx.declarations)
	return out
}

// DeclarationsOf returns the declarations of one kind in document order.
func (idx *Index) DeclarationsOf(kind Kind) []Declaration {
	var out []Declaration
	for _, d := range idx.declarations {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// References returns all references in document order.
func (idx *Index) References() []Reference {
	out := make([]Reference, len(idx.references))
	copy(out, idx.references)
	return out
}

// ReferencesTo returns the references whose target is id, in document order.
func (idx *Index) ReferencesTo(id string, role Role) []Reference {
	var out []Reference
	for _, r := range idx.references {
		if r.TargetID == id && r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

// Lookup returns the first declaration of an identifier.
func (idx *Index) Lookup(id string) (Declaration, bool) {
	positions, ok := idx.byID[id]
	if !ok {
		return Declaration{}, false
	}
	return idx.declarations[positions[0]], true
}

// LookupTermSource returns the first declaration of a term source by name.
func (idx *Index) LookupTermSource(name string) (Declaration, bool) {
	positions, ok := idx.termSources[name]
	if !ok {
		return Declaration{}, false
	}
	return idx.declarations[positions[0]], true
}

// Resolves reports whether the target of r is declared. Matching is exact.
// Term-source links only match term sources. Protocol, parameter, factor and process
// links only match declarations of that kind; every other role matches any @id
// declaration.
func (idx *Index) Resolves(r Reference) bool {
	if r.Role == RoleTermSource {
		_, ok := idx.LookupTermSource(r.TargetID)
		return ok
	}
	kind, typed := roleKinds[r.Role]
	if !typed {
		_, ok := idx.Lookup(r.TargetID)
		return ok
	}
	for _, pos := range idx.byID[r.TargetID] {
		if idx.declarations[pos].Kind == kind {
			return true
		}
	}
	return false
}

// Duplicates returns every repeated declaration of an identifier after its first one,
// in document order.
func (idx *Index) Duplicates() []Declaration {
	var out []Declaration
	for pos, d := range idx.declarations {
		positions := idx.byID[d.ID]
		if d.Kind == KindTermSource {
			positions = idx.termSources[d.ID]
		}
		if len(positions) > 1 && positions[0] != pos {
			out = append(out, d)
		}
	}
	return out
}
