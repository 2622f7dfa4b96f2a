package refindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/isaval/internal/isajson"
)

const graphDoc = `{
	"ontologySourceReferences": [{"name": "PATO"}, {"name": "OBI"}],
	"studies": [
		{
			"protocols": [{"@id": "#protocol/1", "protocolType": {"annotationValue": "extraction", "termSource": "OBI"},
				"parameters": [{"@id": "#parameter/1"}]}],
			"factors": [{"@id": "#factor/1"}],
			"characteristicCategories": [{"@id": "#characteristic_category/1"}],
			"unitCategories": [{"@id": "#unit/1", "annotationValue": "mg"}],
			"materials": {
				"sources": [{"@id": "#source/1", "characteristics": [
					{"category": {"@id": "#characteristic_category/1"}, "value": {"annotationValue": "female", "termSource": "PATO"}}
				]}],
				"samples": [{"@id": "#sample/1", "derivesFrom": [{"@id": "#source/1"}],
					"factorValues": [{"category": {"@id": "#factor/1"}, "value": 5, "unit": {"@id": "#unit/1"}}]}]
			},
			"processSequence": [{"@id": "#process/1", "executesProtocol": {"@id": "#protocol/1"},
				"parameterValues": [{"category": {"@id": "#parameter/1"}, "value": 1}],
				"nextProcess": {"@id": "#process/2"},
				"inputs": [{"@id": "#source/1"}], "outputs": [{"@id": "#sample/1"}]}],
			"assays": [{
				"dataFiles": [{"@id": "#data/a_file.dat", "name": "a_file.dat"}],
				"materials": {"samples": [{"@id": "#sample/1"}], "otherMaterials": [{"@id": "#material/1", "derivesFrom": [{"@id": "#sample/1"}]}]},
				"processSequence": [{"@id": "#process/2", "executesProtocol": {"@id": "#protocol/1"},
					"previousProcess": {"@id": "#process/1"},
					"inputs": [{"@id": "#material/1"}], "outputs": [{"@id": "#data/a_file.dat"}]}]
			}]
		},
		{"@id": "#study/two", "protocols": [{"@id": "#protocol/1"}]}
	]
}`

func buildIndex(t *testing.T, doc string) *Index {
	t.Helper()
	inv, err := isajson.Decode([]byte(doc))
	require.NoError(t, err)
	return Build(inv)
}

func TestBuildDeclarations(t *testing.T) {
	idx := buildIndex(t, graphDoc)

	kinds := map[Kind][]string{}
	for _, d := range idx.Declarations() {
		kinds[d.Kind] = append(kinds[d.Kind], d.ID)
	}

	assert.Equal(t, []string{"PATO", "OBI"}, kinds[KindTermSource])
	assert.Equal(t, []string{"#protocol/1", "#protocol/1"}, kinds[KindProtocol])
	assert.Equal(t, []string{"#parameter/1"}, kinds[KindParameter])
	assert.Equal(t, []string{"#factor/1"}, kinds[KindFactor])
	assert.Equal(t, []string{"#source/1"}, kinds[KindSource])
	assert.Equal(t, []string{"#sample/1"}, kinds[KindSample])
	assert.Equal(t, []string{"#material/1"}, kinds[KindMaterial])
	assert.Equal(t, []string{"#data/a_file.dat"}, kinds[KindDataFile])
	assert.Equal(t, []string{"#process/1", "#process/2"}, kinds[KindProcess])
	assert.Equal(t, []string{"#characteristic_category/1"}, kinds[KindCharacteristic])
	assert.Equal(t, []string{"#unit/1"}, kinds[KindUnit])

	protocol, ok := idx.Lookup("#protocol/1")
	require.True(t, ok)
	assert.Equal(t, 1, protocol.Scope.Study)
	assert.Equal(t, "studies[0].protocols[0]", protocol.Location)

	_, ok = idx.LookupTermSource("PATO")
	assert.True(t, ok)
	_, ok = idx.Lookup("PATO")
	assert.False(t, ok)
}

func TestBuildReferences(t *testing.T) {
	idx := buildIndex(t, graphDoc)

	roles := map[Role][]string{}
	for _, r := range idx.References() {
		roles[r.Role] = append(roles[r.Role], r.TargetID)
		assert.True(t, idx.Resolves(r), "reference %s at %s should resolve", r.TargetID, r.Location)
	}

	assert.Equal(t, []string{"OBI", "PATO"}, roles[RoleTermSource])
	assert.Equal(t, []string{"#source/1", "#source/1"}, roles[RoleSource])
	assert.Equal(t, []string{"#sample/1", "#sample/1", "#sample/1"}, roles[RoleSample])
	assert.Equal(t, []string{"#material/1"}, roles[RoleMaterial])
	assert.Equal(t, []string{"#data/a_file.dat"}, roles[RoleDataFile])
	assert.Equal(t, []string{"#protocol/1", "#protocol/1"}, roles[RoleProtocol])
	assert.Equal(t, []string{"#process/2", "#process/1"}, roles[RoleProcess])
	assert.Equal(t, []string{"#parameter/1"}, roles[RoleParameter])
	assert.Equal(t, []string{"#factor/1"}, roles[RoleFactor])
	assert.Equal(t, []string{"#characteristic_category/1"}, roles[RoleCharacteristic])
	assert.Equal(t, []string{"#unit/1"}, roles[RoleUnit])

	protocolRefs := idx.ReferencesTo("#protocol/1", RoleProtocol)
	require.Len(t, protocolRefs, 2)
	assert.Equal(t, "studies[0].processSequence[0].executesProtocol", protocolRefs[0].Location)
	assert.Equal(t, "studies[0].assays[0].processSequence[0].executesProtocol", protocolRefs[1].Location)
	assert.Equal(t, "#process/2", protocolRefs[1].SourceID)
	assert.Equal(t, 1, protocolRefs[1].Scope.Study)
}

func TestDuplicates(t *testing.T) {
	idx := buildIndex(t, graphDoc)

	dups := idx.Duplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, "#protocol/1", dups[0].ID)
	assert.Equal(t, "studies[1].protocols[0]", dups[0].Location)
	assert.Equal(t, "#study/two", dups[0].Scope.StudyID)
}

func TestResolvesIsExactMatch(t *testing.T) {
	idx := buildIndex(t, graphDoc)

	assert.False(t, idx.Resolves(Reference{TargetID: "#Source/1", Role: RoleSource}))
	assert.False(t, idx.Resolves(Reference{TargetID: "#source/1 ", Role: RoleSource}))
	assert.False(t, idx.Resolves(Reference{TargetID: "#source/1", Role: RoleTermSource}))
	assert.False(t, idx.Resolves(Reference{TargetID: "pato", Role: RoleTermSource}))
	assert.False(t, idx.Resolves(Reference{TargetID: "", Role: RoleProcess}))
}

func TestResolvesChecksKind(t *testing.T) {
	idx := buildIndex(t, graphDoc)

	assert.True(t, idx.Resolves(Reference{TargetID: "#factor/1", Role: RoleFactor}))
	assert.False(t, idx.Resolves(Reference{TargetID: "#characteristic_category/1", Role: RoleFactor}))
	assert.False(t, idx.Resolves(Reference{TargetID: "#factor/1", Role: RoleParameter}))
	assert.False(t, idx.Resolves(Reference{TargetID: "#parameter/1", Role: RoleProtocol}))
	assert.False(t, idx.Resolves(Reference{TargetID: "#protocol/1", Role: RoleProcess}))
	assert.True(t, idx.Resolves(Reference{TargetID: "#unit/1", Role: RoleCharacteristic}))
}

func TestBuildKeepsEmptyTargets(t *testing.T) {
	idx := buildIndex(t, `{"studies": [{"processSequence": [
		{"@id": "#process/1", "nextProcess": {"@id": ""}, "inputs": [{"@id": ""}]}
	]}]}`)

	refs := idx.References()
	require.Len(t, refs, 2)
	assert.Equal(t, RoleProcess, refs[0].Role)
	assert.Equal(t, RoleMaterial, refs[1].Role)
	assert.Empty(t, refs[1].TargetID)
}

func TestScopeString(t *testing.T) {
	assert.Equal(t, "investigation", InvestigationScope().String())
	assert.Equal(t,
		"study loc 1 (study location autocalculated by validator - Study ID in JSON not present)",
		Scope{Study: 1}.String())
	assert.Equal(t, "study #study/two", Scope{Study: 2, StudyID: "#study/two"}.String())
	assert.True(t, Scope{Study: 2}.SameStudy(Scope{Study: 2, StudyID: "x"}))
}

func TestBuildNilDocument(t *testing.T) {
	idx := Build(nil)
	assert.Empty(t, idx.Declarations())
	assert.Empty(t, idx.References())
}

func TestRoleForNode(t *testing.T) {
	assert.Equal(t, RoleSource, roleForNode("#source/1"))
	assert.Equal(t, RoleSample, roleForNode("#sample/1"))
	assert.Equal(t, RoleDataFile, roleForNode("#data/a_file.dat"))
	assert.Equal(t, RoleMaterial, roleForNode("#material/1"))
	assert.Equal(t, RoleMaterial, roleForNode("#extract/1"))
}
