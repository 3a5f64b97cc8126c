package tools

import (
	"context"
	"fmt"
	"log"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/HendryAvila/mentora/internal/knowledge"
)

// WriteStateName is the registry name of the mutate action.
const WriteStateName = "write-state"

// UpdateRecorder receives successful mutations for the history log.
// Nil-safe at the call site: a nil recorder means history is disabled.
type UpdateRecorder interface {
	Record(concept string, known bool) error
}

// NewWriteState builds the write-state action. The concept name is
// validated as non-empty by the input contract, so the handler never
// touches storage for invalid input.
func NewWriteState(store knowledge.Store, recorder UpdateRecorder) capability.Capability {
	return capability.Capability{
		Name: WriteStateName,
		Kind: capability.KindAction,
		Description: "Set a concept's known flag in the learner's knowledge document. " +
			"Inserts the concept if absent, overwrites it if present.",
		Input: capability.Schema{
			Fields: []capability.Field{
				{
					Name:        "concept",
					Type:        capability.TypeString,
					Required:    true,
					NonEmpty:    true,
					Description: "Concept name, e.g. 'Flexbox'. Exact string match — be consistent.",
				},
				{
					Name:        "known",
					Type:        capability.TypeBool,
					Required:    true,
					Description: "Whether the learner knows this concept.",
				},
			},
		},
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			concept := in.String("concept")
			known := in.Bool("known")

			if err := store.Update(concept, known); err != nil {
				return "", err
			}

			// History is best-effort: a logging failure must not fail
			// a mutation that already persisted.
			if recorder != nil {
				if err := recorder.Record(concept, known); err != nil {
					log.Printf("WARNING: update history: %v", err)
				}
			}

			state := "known"
			if !known {
				state = "not yet known"
			}
			return fmt.Sprintf("Knowledge updated: %q is now marked as %s.", concept, state), nil
		},
	}
}
