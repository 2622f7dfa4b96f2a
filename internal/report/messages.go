package report

import "strings"

// Message templates. Consumers match on these strings, so they must not change.
const (
	msgEncoding             = "File should be UTF-8 encoding"
	msgNodeNotFound         = "['%s'] not found"
	msgProtocolNotDeclared  = "['%s'] used in a study or assay process sequence not declared"
	msgObjectNotDeclared    = "Object reference %s not declared"
	msgTermSourceUndeclared = "Object reference %s not declared (term source check)"
	msgDuplicateDeclaration = "Object reference %s declared more than once"
	msgNotUsedInScope       = "Object reference %s not used anywhere in %s"
	msgTermSourceNotUsed    = "Object reference %s not used anywhere in investigation (term source check)"
	msgDateFormat           = "Date %s does not conform to ISO8601 format"
	msgDOIFormat            = "DOI %s does not conform to DOI format"
	msgPubMedIDFormat       = "PubMed ID %s is not valid format"
	msgCannotOpenFile       = "Cannot open file %s"
)

// lineBreaks escapes line breaks in document values so every finding stays on one log line.
var lineBreaks = strings.NewReplacer("\r\n", `\r\n`, "\n", `\n`, "\r", `\r`)

func inline(value string) string {
	return lineBreaks.Replace(value)
}

// EncodingWarning reports input that is not UTF-8 encoded.
func EncodingWarning() Finding {
	return NewWarning(CodeEncoding, "", msgEncoding)
}

// NodeNotFound reports a dangling source, sample, data file or material link.
func NodeNotFound(code Code, location, target string) Finding {
	return NewError(code, location, msgNodeNotFound, inline(target))
}

// ProtocolNotDeclared reports an executesProtocol link to an undeclared protocol.
func ProtocolNotDeclared(location, target string) Finding {
	return NewError(CodeProtocolRefLink, location, msgProtocolNotDeclared, inline(target))
}

// ObjectNotDeclared reports a dangling process, parameter, factor, characteristic
// category or unit link.
func ObjectNotDeclared(code Code, location, target string) Finding {
	return NewError(code, location, msgObjectNotDeclared, inline(target))
}

// TermSourceNotDeclared reports an ontology annotation naming an undeclared term source.
func TermSourceNotDeclared(location, name string) Finding {
	return NewWarning(CodeTermSourceLink, location, msgTermSourceUndeclared, inline(name))
}

// DuplicateDeclaration reports an identifier declared by more than one entity.
func DuplicateDeclaration(location, id string) Finding {
	return NewError(CodeDuplicateDeclaration, location, msgDuplicateDeclaration, inline(id))
}

// NotUsedInScope reports a protocol or factor never referenced in its study.
func NotUsedInScope(code Code, location, id, scope string) Finding {
	return NewWarning(code, location, msgNotUsedInScope, inline(id), scope)
}

// TermSourceNotUsed reports a term source never referenced by an ontology annotation.
func TermSourceNotUsed(location, name string) Finding {
	return NewWarning(CodeTermSourceUnused, location, msgTermSourceNotUsed, inline(name))
}

// DateFormat reports a date that is not ISO 8601.
func DateFormat(location, raw string) Finding {
	return NewWarning(CodeDateFormat, location, msgDateFormat, inline(raw))
}

// DOIFormat reports a malformed DOI.
func DOIFormat(location, raw string) Finding {
	return NewWarning(CodeDOIFormat, location, msgDOIFormat, inline(raw))
}

// PubMedIDFormat reports a malformed PubMed ID.
func PubMedIDFormat(location, raw string) Finding {
	return NewWarning(CodePubMedIDFormat, location, msgPubMedIDFormat, inline(raw))
}

// CannotOpenFile reports a data file missing on disk.
func CannotOpenFile(location, filename string) Finding {
	return NewWarning(CodeDataFileMissing, location, msgCannotOpenFile, inline(filename))
}
