// Package usage audits declarations that should be referenced at least once.
package usage

import (
	"github.com/scan-io-git/isaval/internal/refindex"
	"github.com/scan-io-git/isaval/internal/report"
)

// rule binds a declaration kind to the reference role that counts as a use of it.
type rule struct {
	kind       refindex.Kind
	role       refindex.Role
	code       report.Code
	studyScope bool
}

var rules = []rule{
	{kind: refindex.KindProtocol, role: refindex.RoleProtocol, code: report.CodeProtocolUnused, studyScope: true},
	{kind: refindex.KindFactor, role: refindex.RoleFactor, code: report.CodeFactorUnused, studyScope: true},
	{kind: refindex.KindTermSource, role: refindex.RoleTermSource, code: report.CodeTermSourceUnused},
}

// Audit returns a warning for every protocol or factor not referenced from within the
// study that declares it, and for every term source not referenced anywhere.
// It never returns errors.
func Audit(idx *refindex.Index) []report.Finding {
	var findings []report.Finding
	for _, r := range rules {
		for _, d := range idx.DeclarationsOf(r.kind) {
			if used(idx, d, r) {
				continue
			}
			if r.studyScope {
				findings = append(findings, report.NotUsedInScope(r.code, d.Location, d.ID, d.Scope.String()))
			} else {
				findings = append(findings, report.TermSourceNotUsed(d.Location, d.ID))
			}
		}
	}
	return findings
}

func used(idx *refindex.Index, d refindex.Declaration, r rule) bool {
	for _, ref := range idx.ReferencesTo(d.ID, r.role) {
		if !r.studyScope || ref.Scope.SameStudy(d.Scope) {
			return true
		}
	}
	return false
}
