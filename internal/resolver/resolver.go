// Package resolver reports references whose target identifier is not declared.
package resolver

import (
	"github.com/scan-io-git/isaval/internal/refindex"
	"github.com/scan-io-git/isaval/internal/report"
)

// Resolve returns one finding per dangling reference, in document order, followed by
// one finding per repeated declaration. Dangling references to the same identifier are
// reported individually.
func Resolve(idx *refindex.Index) []report.Finding {
	var findings []report.Finding
	for _, ref := range idx.References() {
		if idx.Resolves(ref) {
			continue
		}
		findings = append(findings, dangling(ref))
	}
	for _, d := range idx.Duplicates() {
		findings = append(findings, report.DuplicateDeclaration(d.Location, d.ID))
	}
	return findings
}

func dangling(ref refindex.Reference) report.Finding {
	switch ref.Role {
	case refindex.RoleSource:
		return report.NodeNotFound(report.CodeSourceLink, ref.Location, ref.TargetID)
	case refindex.RoleSample:
		return report.NodeNotFound(report.CodeSampleLink, ref.Location, ref.TargetID)
	case refindex.RoleDataFile:
		return report.NodeNotFound(report.CodeDataFileLink, ref.Location, ref.TargetID)
	case refindex.RoleProtocol:
		return report.ProtocolNotDeclared(ref.Location, ref.TargetID)
	case refindex.RoleProcess:
		return report.ObjectNotDeclared(report.CodeProcessLink, ref.Location, ref.TargetID)
	case refindex.RoleFactor:
		return report.ObjectNotDeclared(report.CodeFactorLink, ref.Location, ref.TargetID)
	case refindex.RoleParameter:
		return report.ObjectNotDeclared(report.CodeParameterLink, ref.Location, ref.TargetID)
	case refindex.RoleCharacteristic:
		return report.ObjectNotDeclared(report.CodeCharacteristicLink, ref.Location, ref.TargetID)
	case refindex.RoleUnit:
		return report.ObjectNotDeclared(report.CodeUnitLink, ref.Location, ref.TargetID)
	case refindex.RoleTermSource:
		return report.TermSourceNotDeclared(ref.Location, ref.TargetID)
	default:
		return report.NodeNotFound(report.CodeMaterialLink, ref.Location, ref.TargetID)
	}
}
