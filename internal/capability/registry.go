package capability

import (
	"context"
	"fmt"
)

// Registry is the process-wide capability table. Registration happens
// once at startup, before the transport starts dispatching; the stdio
// loop then invokes one capability at a time, so no locking is needed.
type Registry struct {
	byName  map[string]*Capability
	ordered []*Capability
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Capability)}
}

// Register adds a capability to the table. The name must be unique
// across all kinds; a collision returns ErrDuplicateCapability and
// leaves the first registration active.
func (r *Registry) Register(c Capability) error {
	if _, exists := r.byName[c.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCapability, c.Name)
	}
	entry := c
	r.byName[c.Name] = &entry
	r.ordered = append(r.ordered, &entry)
	return nil
}

// Invoke validates raw input against the named capability's contract
// and calls its handler, propagating the handler's result or failure
// unchanged. A name that was never registered fails with
// ErrUnknownCapability.
func (r *Registry) Invoke(ctx context.Context, name string, raw map[string]any) (string, error) {
	c, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCapability, name)
	}
	in, err := c.Input.Validate(raw)
	if err != nil {
		return "", err
	}
	return c.Handler(ctx, in)
}

// Lookup returns the named capability, if registered.
func (r *Registry) Lookup(name string) (Capability, bool) {
	c, ok := r.byName[name]
	if !ok {
		return Capability{}, false
	}
	return *c, true
}

// List returns all capabilities in registration order. The order is an
// observable contract: it determines discovery order on the transport
// and is stable across calls.
func (r *Registry) List() []Capability {
	out := make([]Capability, 0, len(r.ordered))
	for _, c := range r.ordered {
		out = append(out, *c)
	}
	return out
}
