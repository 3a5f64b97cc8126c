// Package capability implements the process-wide capability table.
//
// A capability is a named, independently invocable unit of server
// functionality: a guidance text, a readable resource, or a callable
// action. Each entry declares its input contract as an explicit schema
// that is validated before the handler runs, so malformed input is a
// structural failure, never a handler crash.
//
// The registry is an explicit object constructed once at startup and
// passed to the transport layer — no package-level globals, so tests
// can build isolated registries per case.
package capability

import "context"

// Kind classifies a capability for the transport layer.
type Kind string

const (
	// KindGuidance is a fixed instructional text block.
	KindGuidance Kind = "guidance"
	// KindResource is identifier-addressed readable state.
	KindResource Kind = "resource"
	// KindAction is an invocable, possibly side-effecting operation.
	KindAction Kind = "action"
)

// Handler processes a validated input and returns the capability's
// textual result. Failures are propagated to the caller unchanged.
type Handler func(ctx context.Context, in Input) (string, error)

// Capability is a single entry in the registry.
type Capability struct {
	Name        string
	Kind        Kind
	Description string
	Input       Schema
	Handler     Handler

	// URI and MIMEType are set for KindResource only. They give the
	// resource its identifier-based address alongside its registry name.
	URI      string
	MIMEType string
}

// Input is a validated input payload. Accessors assume validation has
// already run — a declared field of the right type, or the zero value.
type Input map[string]any

// String returns the named field as a string, or "" if absent.
func (in Input) String(name string) string {
	s, _ := in[name].(string)
	return s
}

// Bool returns the named field as a bool, or false if absent.
func (in Input) Bool(name string) bool {
	b, _ := in[name].(bool)
	return b
}

// Int returns the named field as an int, or def if absent.
// JSON numbers arrive as float64, so both representations are accepted.
func (in Input) Int(name string, def int) int {
	switch v := in[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
