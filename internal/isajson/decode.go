package isajson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode decodes a UTF-8 JSON text into an Investigation.
func Decode(data []byte) (*Investigation, error) {
	var inv Investigation
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode investigation: %w", err)
	}
	return &inv, nil
}
