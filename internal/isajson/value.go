package isajson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind tells which JSON scalar a Value was decoded from.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a JSON scalar kept as its text. ISA fields such as annotationValue and
// comment values may be either strings or numbers.
type Value struct {
	Raw  string
	Kind ValueKind
}

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*v = Value{}
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = Value{Raw: s, Kind: KindString}
	case bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false")):
		*v = Value{Raw: string(trimmed), Kind: KindBool}
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*v = Value{Raw: n.String(), Kind: KindNumber}
	default:
		return fmt.Errorf("expected a string, number or boolean, got %s", abbreviate(trimmed))
	}
	return nil
}

// String returns the value text.
func (v Value) String() string {
	return v.Raw
}

// IsZero reports whether the value was absent or null.
func (v Value) IsZero() bool {
	return v.Kind == KindNull
}

// AttributeValue is the value of a characteristic, factor value or parameter value:
// either an ontology annotation or a scalar.
type AttributeValue struct {
	Annotation *OntologyAnnotation
	Scalar     Value
}

// UnmarshalJSON decodes objects as ontology annotations and anything else as a scalar.
func (a *AttributeValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var annotation OntologyAnnotation
		if err := json.Unmarshal(trimmed, &annotation); err != nil {
			return err
		}
		*a = AttributeValue{Annotation: &annotation}
		return nil
	}
	var scalar Value
	if err := scalar.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	*a = AttributeValue{Scalar: scalar}
	return nil
}

func abbreviate(data []byte) string {
	const max = 20
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
