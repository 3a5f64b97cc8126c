package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/HendryAvila/mentora/internal/history"
)

// UpdateHistoryName is the registry name of the history action.
const UpdateHistoryName = "update-history"

const defaultHistoryLimit = 20

// HistoryReader lists recent mutations from the history log.
type HistoryReader interface {
	Recent(limit int) ([]history.Entry, error)
}

// NewUpdateHistory builds the update-history action: recent write-state
// mutations, newest first. Registered only when the history subsystem
// initialized.
func NewUpdateHistory(reader HistoryReader) capability.Capability {
	return capability.Capability{
		Name: UpdateHistoryName,
		Kind: capability.KindAction,
		Description: "List recent knowledge mutations, newest first. Useful for " +
			"reviewing what the learner worked on lately.",
		Input: capability.Schema{
			Fields: []capability.Field{
				{
					Name:        "limit",
					Type:        capability.TypeNumber,
					Description: fmt.Sprintf("Maximum entries to return. Defaults to %d.", defaultHistoryLimit),
				},
			},
		},
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			limit := in.Int("limit", defaultHistoryLimit)
			if limit <= 0 {
				limit = defaultHistoryLimit
			}

			entries, err := reader.Recent(limit)
			if err != nil {
				return "", err
			}
			if len(entries) == 0 {
				return "No knowledge updates recorded yet.", nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Last %d knowledge update(s):\n", len(entries))
			for _, e := range entries {
				state := "known"
				if !e.Known {
					state = "not yet known"
				}
				fmt.Fprintf(&b, "- [%s] %q → %s\n", e.CreatedAt, e.Concept, state)
			}
			return strings.TrimRight(b.String(), "\n"), nil
		},
	}
}
