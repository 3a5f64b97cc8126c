// Package prompts builds the guidance capability: the fixed
// instructional text that tells the orchestrating AI how to sequence
// the server's actions.
//
// The text is a contract with the caller, not documentation — it names
// the actions in execution order and states the decision rule. Changing
// it is a behavioral change, and tests pin its structure.
package prompts

import (
	"context"

	"github.com/HendryAvila/mentora/internal/capability"
)

// GuidanceName is the registry name of the guidance capability.
const GuidanceName = "learning-coach"

// Text returns the coach workflow instructions.
func Text() string {
	return `You are a learning coach working with the Mentora knowledge server.

Run this workflow:

1. Call fetch-updates to get a digest of concepts currently worth learning.
   If fetch-updates is not available, ask the learner what they have been
   hearing about lately and use that instead.
2. Call read-state to load the learner's knowledge document.
3. Compare the fetched concepts against knownConcepts in the document and
   pick 1-2 concepts the learner does not know yet. Present them with a
   short explanation of why each matters right now.
4. Ask the learner whether they want to study one of them.
5. When the learner confirms they have learned a concept, call write-state
   with that concept name and known=true so the document stays current.

Rules:
- Never suggest a concept already marked true in knownConcepts.
- Use the exact concept name from the digest when writing state — concept
  names are matched by exact string equality.
- Do not write state without the learner's confirmation.`
}

// NewGuidance builds the guidance capability: no input, no side
// effects, no failure path of its own.
func NewGuidance() capability.Capability {
	return capability.Capability{
		Name: GuidanceName,
		Kind: capability.KindGuidance,
		Description: "Coach workflow: fetch concept updates, read the knowledge " +
			"document, suggest 1-2 new concepts, write back confirmed learning.",
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			return Text(), nil
		},
	}
}
