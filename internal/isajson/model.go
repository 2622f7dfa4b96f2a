// Package isajson is the typed model of an ISA-JSON investigation document.
package isajson

// Ref is a link to another entity by its "@id".
type Ref struct {
	ID string `json:"@id"`
}

// Comment is a free-text name/value annotation.
type Comment struct {
	Name  string `json:"name,omitempty"`
	Value Value  `json:"value,omitempty"`
}

// OntologySourceReference declares a term source that ontology annotations can name.
type OntologySourceReference struct {
	Name        string    `json:"name"`
	File        string    `json:"file,omitempty"`
	Version     string    `json:"version,omitempty"`
	Description string    `json:"description,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
}

// OntologyAnnotation is a term qualified by the term source it comes from.
type OntologyAnnotation struct {
	ID              string    `json:"@id,omitempty"`
	AnnotationValue Value     `json:"annotationValue,omitempty"`
	TermSource      string    `json:"termSource,omitempty"`
	TermAccession   string    `json:"termAccession,omitempty"`
	Comments        []Comment `json:"comments,omitempty"`
}

// Publication describes a publication associated with an investigation or study.
type Publication struct {
	PubMedID   string              `json:"pubMedID,omitempty"`
	DOI        string              `json:"doi,omitempty"`
	AuthorList string              `json:"authorList,omitempty"`
	Title      string              `json:"title,omitempty"`
	Status     *OntologyAnnotation `json:"status,omitempty"`
	Comments   []Comment           `json:"comments,omitempty"`
}

// Person is a contact of an investigation or study.
type Person struct {
	ID          string               `json:"@id,omitempty"`
	LastName    string               `json:"lastName,omitempty"`
	FirstName   string               `json:"firstName,omitempty"`
	MidInitials string               `json:"midInitials,omitempty"`
	Email       string               `json:"email,omitempty"`
	Phone       string               `json:"phone,omitempty"`
	Fax         string               `json:"fax,omitempty"`
	Address     string               `json:"address,omitempty"`
	Affiliation string               `json:"affiliation,omitempty"`
	Roles       []OntologyAnnotation `json:"roles,omitempty"`
	Comments    []Comment            `json:"comments,omitempty"`
}

// Investigation is the document root.
type Investigation struct {
	ID                       string                    `json:"@id,omitempty"`
	Filename                 string                    `json:"filename,omitempty"`
	Identifier               string                    `json:"identifier,omitempty"`
	Title                    string                    `json:"title,omitempty"`
	Description              string                    `json:"description,omitempty"`
	SubmissionDate           string                    `json:"submissionDate,omitempty"`
	PublicReleaseDate        string                    `json:"publicReleaseDate,omitempty"`
	OntologySourceReferences []OntologySourceReference `json:"ontologySourceReferences,omitempty"`
	Publications             []Publication             `json:"publications,omitempty"`
	People                   []Person                  `json:"people,omitempty"`
	Studies                  []Study                   `json:"studies,omitempty"`
	Comments                 []Comment                 `json:"comments,omitempty"`
}

// Study is the unit of usage scope for protocols and factors.
type Study struct {
	ID                       string               `json:"@id,omitempty"`
	Filename                 string               `json:"filename,omitempty"`
	Identifier               string               `json:"identifier,omitempty"`
	Title                    string               `json:"title,omitempty"`
	Description              string               `json:"description,omitempty"`
	SubmissionDate           string               `json:"submissionDate,omitempty"`
	PublicReleaseDate        string               `json:"publicReleaseDate,omitempty"`
	Publications             []Publication        `json:"publications,omitempty"`
	People                   []Person             `json:"people,omitempty"`
	StudyDesignDescriptors   []OntologyAnnotation `json:"studyDesignDescriptors,omitempty"`
	Protocols                []Protocol           `json:"protocols,omitempty"`
	Materials                StudyMaterials       `json:"materials,omitempty"`
	ProcessSequence          []Process            `json:"processSequence,omitempty"`
	Assays                   []Assay              `json:"assays,omitempty"`
	Factors                  []Factor             `json:"factors,omitempty"`
	CharacteristicCategories []MaterialAttribute  `json:"characteristicCategories,omitempty"`
	UnitCategories           []OntologyAnnotation `json:"unitCategories,omitempty"`
	Comments                 []Comment            `json:"comments,omitempty"`
}

// StudyMaterials holds the material nodes declared by a study.
type StudyMaterials struct {
	Sources        []Source   `json:"sources,omitempty"`
	Samples        []Sample   `json:"samples,omitempty"`
	OtherMaterials []Material `json:"otherMaterials,omitempty"`
}

// Assay holds the measurement part of a study.
type Assay struct {
	ID                       string               `json:"@id,omitempty"`
	Filename                 string               `json:"filename,omitempty"`
	MeasurementType          *OntologyAnnotation  `json:"measurementType,omitempty"`
	TechnologyType           *OntologyAnnotation  `json:"technologyType,omitempty"`
	TechnologyPlatform       string               `json:"technologyPlatform,omitempty"`
	DataFiles                []DataFile           `json:"dataFiles,omitempty"`
	Materials                AssayMaterials       `json:"materials,omitempty"`
	CharacteristicCategories []MaterialAttribute  `json:"characteristicCategories,omitempty"`
	UnitCategories           []OntologyAnnotation `json:"unitCategories,omitempty"`
	ProcessSequence          []Process            `json:"processSequence,omitempty"`
	Comments                 []Comment            `json:"comments,omitempty"`
}

// AssayMaterials lists the samples an assay consumes and the materials it declares.
// Samples are declared by the study; the assay only points at them.
type AssayMaterials struct {
	Samples        []Ref      `json:"samples,omitempty"`
	OtherMaterials []Material `json:"otherMaterials,omitempty"`
}

// Protocol describes a procedure executed by processes.
type Protocol struct {
	ID           string              `json:"@id,omitempty"`
	Name         string              `json:"name,omitempty"`
	ProtocolType *OntologyAnnotation `json:"protocolType,omitempty"`
	Description  string              `json:"description,omitempty"`
	URI          string              `json:"uri,omitempty"`
	Version      string              `json:"version,omitempty"`
	Parameters   []ProtocolParameter `json:"parameters,omitempty"`
	Components   []Component         `json:"components,omitempty"`
	Comments     []Comment           `json:"comments,omitempty"`
}

// ProtocolParameter is a parameter declared by a protocol.
type ProtocolParameter struct {
	ID            string              `json:"@id,omitempty"`
	ParameterName *OntologyAnnotation `json:"parameterName,omitempty"`
}

// Component is an instrument, software or reagent used by a protocol.
type Component struct {
	ComponentName string              `json:"componentName,omitempty"`
	ComponentType *OntologyAnnotation `json:"componentType,omitempty"`
}

// Factor is an independent variable of a study.
type Factor struct {
	ID         string              `json:"@id,omitempty"`
	FactorName string              `json:"factorName,omitempty"`
	FactorType *OntologyAnnotation `json:"factorType,omitempty"`
	Comments   []Comment           `json:"comments,omitempty"`
}

// MaterialAttribute declares a characteristic category.
type MaterialAttribute struct {
	ID                 string              `json:"@id,omitempty"`
	CharacteristicType *OntologyAnnotation `json:"characteristicType,omitempty"`
}

// MaterialAttributeValue is a characteristic of a source, sample or material.
type MaterialAttributeValue struct {
	Category *Ref           `json:"category,omitempty"`
	Value    AttributeValue `json:"value,omitempty"`
	Unit     *Ref           `json:"unit,omitempty"`
	Comments []Comment      `json:"comments,omitempty"`
}

// FactorValue assigns a factor level to a sample.
type FactorValue struct {
	Category *Ref           `json:"category,omitempty"`
	Value    AttributeValue `json:"value,omitempty"`
	Unit     *Ref           `json:"unit,omitempty"`
}

// ProcessParameterValue assigns a value to a protocol parameter in a process.
type ProcessParameterValue struct {
	Category *Ref           `json:"category,omitempty"`
	Value    AttributeValue `json:"value,omitempty"`
	Unit     *Ref           `json:"unit,omitempty"`
}

// Source is a starting material.
type Source struct {
	ID              string                   `json:"@id,omitempty"`
	Name            string                   `json:"name,omitempty"`
	Characteristics []MaterialAttributeValue `json:"characteristics,omitempty"`
	Comments        []Comment                `json:"comments,omitempty"`
}

// Sample is a material derived from sources.
type Sample struct {
	ID              string                   `json:"@id,omitempty"`
	Name            string                   `json:"name,omitempty"`
	Characteristics []MaterialAttributeValue `json:"characteristics,omitempty"`
	FactorValues    []FactorValue            `json:"factorValues,omitempty"`
	DerivesFrom     []Ref                    `json:"derivesFrom,omitempty"`
	Comments        []Comment                `json:"comments,omitempty"`
}

// Material is an intermediate material such as an extract or labeled extract.
type Material struct {
	ID              string                   `json:"@id,omitempty"`
	Name            string                   `json:"name,omitempty"`
	Type            string                   `json:"type,omitempty"`
	Characteristics []MaterialAttributeValue `json:"characteristics,omitempty"`
	DerivesFrom     []Ref                    `json:"derivesFrom,omitempty"`
	Comments        []Comment                `json:"comments,omitempty"`
}

// DataFile is a file produced by an assay. Name is the path relative to the document.
type DataFile struct {
	ID       string    `json:"@id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Type     string    `json:"type,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}

// Process is one application of a protocol in a process sequence.
type Process struct {
	ID               string                  `json:"@id,omitempty"`
	Name             string                  `json:"name,omitempty"`
	ExecutesProtocol *Ref                    `json:"executesProtocol,omitempty"`
	ParameterValues  []ProcessParameterValue `json:"parameterValues,omitempty"`
	Performer        string                  `json:"performer,omitempty"`
	Date             string                  `json:"date,omitempty"`
	PreviousProcess  *Ref                    `json:"previousProcess,omitempty"`
	NextProcess      *Ref                    `json:"nextProcess,omitempty"`
	Inputs           []Ref                   `json:"inputs,omitempty"`
	Outputs          []Ref                   `json:"outputs,omitempty"`
	Comments         []Comment               `json:"comments,omitempty"`
}
