// Package tools builds the action capabilities of the server.
//
// Each file constructs one capability.Capability: the declared input
// contract plus a handler closed over its dependencies. Tools depend
// on interfaces (knowledge.Store, UpdateFetcher, UpdateRecorder), not
// concretions, so tests can substitute fakes.
package tools

import (
	"context"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/HendryAvila/mentora/internal/knowledge"
)

// ReadStateName is the registry name of the read action.
const ReadStateName = "read-state"

// NewReadState builds the read-state action: no input, returns the
// current knowledge document as JSON. Fails only by propagating store
// failures.
func NewReadState(store knowledge.Store) capability.Capability {
	return capability.Capability{
		Name: ReadStateName,
		Kind: capability.KindAction,
		Description: "Read the learner's knowledge document: the owner id and the " +
			"map of concepts with their known flags. Call this before suggesting " +
			"anything new.",
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			doc, err := store.Read()
			if err != nil {
				return "", err
			}
			return knowledge.Render(doc)
		},
	}
}
