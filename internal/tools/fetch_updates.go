package tools

import (
	"context"

	"github.com/HendryAvila/mentora/internal/capability"
)

// FetchUpdatesName is the registry name of the external update action.
const FetchUpdatesName = "fetch-updates"

// UpdateFetcher performs the outbound provider call.
type UpdateFetcher interface {
	FetchConceptUpdates(ctx context.Context) (string, error)
}

// NewFetchUpdates builds the fetch-updates action. The composition
// root registers it only when a provider credential is configured;
// without one, invoking this name is an unknown capability, not a
// configuration error.
func NewFetchUpdates(fetcher UpdateFetcher) capability.Capability {
	return capability.Capability{
		Name: FetchUpdatesName,
		Kind: capability.KindAction,
		Description: "Fetch a digest of concepts currently worth learning from the " +
			"configured provider. One synchronous request, no retry — failures are " +
			"reported, not repaired.",
		Handler: func(ctx context.Context, in capability.Input) (string, error) {
			return fetcher.FetchConceptUpdates(ctx)
		},
	}
}
