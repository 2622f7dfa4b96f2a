package refindex

import (
	"fmt"

	"github.com/scan-io-git/isaval/internal/isajson"
)

// Build walks the document once, in document order, and returns its index.
// It never fails: dangling or duplicated identifiers are judged by later passes.
func Build(doc *isajson.Investigation) *Index {
	b := &builder{idx: newIndex()}
	if doc != nil {
		b.investigation(doc)
	}
	return b.idx
}

type builder struct {
	idx *Index
}

func field(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func item(base, name string, i int) string {
	return fmt.Sprintf("%s[%d]", field(base, name), i)
}

func (b *builder) investigation(inv *isajson.Investigation) {
	scope := InvestigationScope()

	for i, osr := range inv.OntologySourceReferences {
		b.idx.declare(Declaration{ID: osr.Name, Kind: KindTermSource, Scope: scope, Location: item("", "ontologySourceReferences", i)})
	}
	b.publications(inv.Publications, scope, inv.ID, "")
	b.people(inv.People, scope, inv.ID, "")

	for i := range inv.Studies {
		study := &inv.Studies[i]
		b.study(study, Scope{Study: i + 1, StudyID: study.ID}, item("", "studies", i))
	}
}

func (b *builder) study(s *isajson.Study, scope Scope, path string) {
	b.publications(s.Publications, scope, s.ID, path)
	b.people(s.People, scope, s.ID, path)
	for i := range s.StudyDesignDescriptors {
		b.annotation(&s.StudyDesignDescriptors[i], scope, s.ID, item(path, "studyDesignDescriptors", i))
	}
	b.characteristicCategories(s.CharacteristicCategories, scope, path)
	b.unitCategories(s.UnitCategories, scope, path)

	for i := range s.Protocols {
		b.protocol(&s.Protocols[i], scope, item(path, "protocols", i))
	}
	for i, f := range s.Factors {
		loc := item(path, "factors", i)
		b.idx.declare(Declaration{ID: f.ID, Kind: KindFactor, Scope: scope, Location: loc})
		b.annotation(f.FactorType, scope, f.ID, field(loc, "factorType"))
	}

	materials := field(path, "materials")
	for i, src := range s.Materials.Sources {
		loc := item(materials, "sources", i)
		b.idx.declare(Declaration{ID: src.ID, Kind: KindSource, Scope: scope, Location: loc})
		b.characteristics(src.Characteristics, scope, src.ID, loc)
	}
	for i := range s.Materials.Samples {
		b.sample(&s.Materials.Samples[i], scope, item(materials, "samples", i))
	}
	for i := range s.Materials.OtherMaterials {
		b.material(&s.Materials.OtherMaterials[i], scope, item(materials, "otherMaterials", i))
	}

	for i := range s.ProcessSequence {
		b.process(&s.ProcessSequence[i], scope, item(path, "processSequence", i))
	}
	for i := range s.Assays {
		b.assay(&s.Assays[i], scope, item(path, "assays", i))
	}
}

func (b *builder) assay(a *isajson.Assay, scope Scope, path string) {
	b.annotation(a.MeasurementType, scope, a.ID, field(path, "measurementType"))
	b.annotation(a.TechnologyType, scope, a.ID, field(path, "technologyType"))
	b.characteristicCategories(a.CharacteristicCategories, scope, path)
	b.unitCategories(a.UnitCategories, scope, path)

	for i, df := range a.DataFiles {
		b.idx.declare(Declaration{ID: df.ID, Kind: KindDataFile, Scope: scope, Location: item(path, "dataFiles", i)})
	}

	materials := field(path, "materials")
	for i, ref := range a.Materials.Samples {
		b.idx.reference(Reference{SourceID: a.ID, TargetID: ref.ID, Role: RoleSample, Scope: scope, Location: item(materials, "samples", i)})
	}
	for i := range a.Materials.OtherMaterials {
		b.material(&a.Materials.OtherMaterials[i], scope, item(materials, "otherMaterials", i))
	}

	for i := range a.ProcessSequence {
		b.process(&a.ProcessSequence[i], scope, item(path, "processSequence", i))
	}
}

func (b *builder) protocol(p *isajson.Protocol, scope Scope, path string) {
	b.idx.declare(Declaration{ID: p.ID, Kind: KindProtocol, Scope: scope, Location: path})
	b.annotation(p.ProtocolType, scope, p.ID, field(path, "protocolType"))
	for i, param := range p.Parameters {
		loc := item(path, "parameters", i)
		b.idx.declare(Declaration{ID: param.ID, Kind: KindParameter, Scope: scope, Location: loc})
		b.annotation(param.ParameterName, scope, p.ID, field(loc, "parameterName"))
	}
	for i, c := range p.Components {
		b.annotation(c.ComponentType, scope, p.ID, field(item(path, "components", i), "componentType"))
	}
}

func (b *builder) sample(s *isajson.Sample, scope Scope, path string) {
	b.idx.declare(Declaration{ID: s.ID, Kind: KindSample, Scope: scope, Location: path})
	b.characteristics(s.Characteristics, scope, s.ID, path)
	for i, fv := range s.FactorValues {
		loc := item(path, "factorValues", i)
		b.link(fv.Category, RoleFactor, scope, s.ID, field(loc, "category"))
		b.link(fv.Unit, RoleUnit, scope, s.ID, field(loc, "unit"))
		b.annotation(fv.Value.Annotation, scope, s.ID, field(loc, "value"))
	}
	for i, ref := range s.DerivesFrom {
		b.idx.reference(Reference{SourceID: s.ID, TargetID: ref.ID, Role: RoleSource, Scope: scope, Location: item(path, "derivesFrom", i)})
	}
}

func (b *builder) material(m *isajson.Material, scope Scope, path string) {
	b.idx.declare(Declaration{ID: m.ID, Kind: KindMaterial, Scope: scope, Location: path})
	b.characteristics(m.Characteristics, scope, m.ID, path)
	for i, ref := range m.DerivesFrom {
		b.idx.reference(Reference{SourceID: m.ID, TargetID: ref.ID, Role: roleForNode(ref.ID), Scope: scope, Location: item(path, "derivesFrom", i)})
	}
}

func (b *builder) process(p *isajson.Process, scope Scope, path string) {
	b.idx.declare(Declaration{ID: p.ID, Kind: KindProcess, Scope: scope, Location: path})
	b.link(p.ExecutesProtocol, RoleProtocol, scope, p.ID, field(path, "executesProtocol"))
	for i, pv := range p.ParameterValues {
		loc := item(path, "parameterValues", i)
		b.link(pv.Category, RoleParameter, scope, p.ID, field(loc, "category"))
		b.link(pv.Unit, RoleUnit, scope, p.ID, field(loc, "unit"))
		b.annotation(pv.Value.Annotation, scope, p.ID, field(loc, "value"))
	}
	b.link(p.PreviousProcess, RoleProcess, scope, p.ID, field(path, "previousProcess"))
	b.link(p.NextProcess, RoleProcess, scope, p.ID, field(path, "nextProcess"))
	for i, ref := range p.Inputs {
		b.idx.reference(Reference{SourceID: p.ID, TargetID: ref.ID, Role: roleForNode(ref.ID), Scope: scope, Location: item(path, "inputs", i)})
	}
	for i, ref := range p.Outputs {
		b.idx.reference(Reference{SourceID: p.ID, TargetID: ref.ID, Role: roleForNode(ref.ID), Scope: scope, Location: item(path, "outputs", i)})
	}
}

func (b *builder) characteristics(values []isajson.MaterialAttributeValue, scope Scope, owner, path string) {
	for i, c := range values {
		loc := item(path, "characteristics", i)
		b.link(c.Category, RoleCharacteristic, scope, owner, field(loc, "category"))
		b.link(c.Unit, RoleUnit, scope, owner, field(loc, "unit"))
		b.annotation(c.Value.Annotation, scope, owner, field(loc, "value"))
	}
}

func (b *builder) characteristicCategories(categories []isajson.MaterialAttribute, scope Scope, path string) {
	for i, c := range categories {
		loc := item(path, "characteristicCategories", i)
		b.idx.declare(Declaration{ID: c.ID, Kind: KindCharacteristic, Scope: scope, Location: loc})
		b.annotation(c.CharacteristicType, scope, c.ID, field(loc, "characteristicType"))
	}
}

func (b *builder) unitCategories(units []isajson.OntologyAnnotation, scope Scope, path string) {
	for i := range units {
		loc := item(path, "unitCategories", i)
		b.idx.declare(Declaration{ID: units[i].ID, Kind: KindUnit, Scope: scope, Location: loc})
		b.annotation(&units[i], scope, units[i].ID, loc)
	}
}

func (b *builder) publications(pubs []isajson.Publication, scope Scope, owner, path string) {
	for i, p := range pubs {
		b.annotation(p.Status, scope, owner, field(item(path, "publications", i), "status"))
	}
}

func (b *builder) people(people []isajson.Person, scope Scope, owner, path string) {
	for i, p := range people {
		loc := item(path, "people", i)
		for j := range p.Roles {
			b.annotation(&p.Roles[j], scope, owner, item(loc, "roles", j))
		}
	}
}

func (b *builder) annotation(a *isajson.OntologyAnnotation, scope Scope, owner, path string) {
	if a == nil || a.TermSource == "" {
		return
	}
	b.idx.reference(Reference{SourceID: owner, TargetID: a.TermSource, Role: RoleTermSource, Scope: scope, Location: field(path, "termSource")})
}

func (b *builder) link(ref *isajson.Ref, role Role, scope Scope, owner, path string) {
	if ref == nil {
		return
	}
	b.idx.reference(Reference{SourceID: owner, TargetID: ref.ID, Role: role, Scope: scope, Location: path})
}
