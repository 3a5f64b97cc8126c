package capability

import (
	"errors"
	"fmt"
)

// Registry-level failures. Both are wrapped with the offending name,
// so test with errors.Is.
var (
	// ErrDuplicateCapability is returned when a name is registered twice,
	// including collisions across kinds. Fatal to process startup.
	ErrDuplicateCapability = errors.New("duplicate capability")

	// ErrUnknownCapability is returned when invoking a name that was
	// never registered — including capabilities whose registration was
	// skipped at startup (e.g. missing provider credential).
	ErrUnknownCapability = errors.New("unknown capability")
)

// InputError reports a field-level schema mismatch in a capability's
// raw input. The handler is never called when validation fails.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: field %q %s", e.Field, e.Reason)
}
