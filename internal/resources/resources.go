// Package resources builds the identifier-addressed capabilities.
//
// Resources use URI-based addressing (mentora://...) following MCP
// conventions. The knowledge-state resource exposes the same document
// as the read-state action through a second addressing scheme; both go
// through knowledge.Render, so their content is byte-identical for the
// same underlying state.
package resources

import (
	"context"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/HendryAvila/mentora/internal/knowledge"
)

// Registry names and URIs of the resources.
const (
	StateName = "knowledge-state"
	StateURI  = "mentora://knowledge/state"

	SchemaName = "knowledge-schema"
	SchemaURI  = "mentora://knowledge/schema"
)

// NewState builds the knowledge-state resource.
func NewState(store knowledge.Store) capability.Capability {
	return capability.Capability{
		Name:        StateName,
		Kind:        capability.KindResource,
		Description: "The learner's current knowledge document.",
		URI:         StateURI,
		MIMEType:    "application/json",
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			doc, err := store.Read()
			if err != nil {
				return "", err
			}
			return knowledge.Render(doc)
		},
	}
}

// NewSchema builds the knowledge-schema resource: the JSON Schema a
// seed document must satisfy.
func NewSchema() capability.Capability {
	return capability.Capability{
		Name:        SchemaName,
		Kind:        capability.KindResource,
		Description: "JSON Schema for the knowledge document.",
		URI:         SchemaURI,
		MIMEType:    "application/schema+json",
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			return knowledge.SchemaJSON()
		},
	}
}
