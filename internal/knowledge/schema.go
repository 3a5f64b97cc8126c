package knowledge

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaJSON returns the JSON Schema for the knowledge document,
// generated by reflection. Published as a resource so clients seeding
// their own document can validate it first.
func SchemaJSON() (string, error) {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true
	s := r.Reflect(&Document{})
	s.Title = "Knowledge Document"
	s.Description = "Persisted record of which concepts an owner is known to understand."

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling document schema: %w", err)
	}
	return string(data), nil
}
