package capability

// FieldType is the wire type of a declared input field.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeBool   FieldType = "boolean"
	TypeNumber FieldType = "number"
)

// Field describes one input field of a capability's contract.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	NonEmpty    bool // strings only: reject "" even when present
	Description string
}

// Schema is a capability's input contract: an ordered list of tagged
// field descriptors. The zero value declares a no-input capability.
type Schema struct {
	Fields []Field
}

// Validate checks raw input against the schema and returns the
// validated payload containing only declared fields. Undeclared fields
// are dropped, not rejected — the transport passes arguments loosely.
func (s Schema) Validate(raw map[string]any) (Input, error) {
	in := make(Input, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			if f.Required {
				return nil, &InputError{Field: f.Name, Reason: "is required"}
			}
			continue
		}

		switch f.Type {
		case TypeString:
			str, ok := v.(string)
			if !ok {
				return nil, &InputError{Field: f.Name, Reason: "must be a string"}
			}
			if f.NonEmpty && str == "" {
				return nil, &InputError{Field: f.Name, Reason: "must not be empty"}
			}
			in[f.Name] = str
		case TypeBool:
			b, ok := v.(bool)
			if !ok {
				return nil, &InputError{Field: f.Name, Reason: "must be a boolean"}
			}
			in[f.Name] = b
		case TypeNumber:
			switch n := v.(type) {
			case float64:
				in[f.Name] = n
			case int:
				in[f.Name] = float64(n)
			default:
				return nil, &InputError{Field: f.Name, Reason: "must be a number"}
			}
		default:
			return nil, &InputError{Field: f.Name, Reason: "has an unsupported type in its contract"}
		}
	}
	return in, nil
}
