package knowledge

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemaJSON_DescribesBothFields(t *testing.T) {
	out, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	for _, field := range []string{"ownerId", "knownConcepts"} {
		if !strings.Contains(out, field) {
			t.Errorf("schema missing %q:\n%s", field, out)
		}
	}
}

func TestSchemaJSON_Deterministic(t *testing.T) {
	a, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON: %v", err)
	}
	b, _ := SchemaJSON()
	if a != b {
		t.Error("schema output differs between calls")
	}
}
