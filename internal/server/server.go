// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates concrete implementations,
// decides — once, from configuration — which capabilities exist, registers
// them in the capability registry, and bridges the registry onto the MCP
// transport. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/HendryAvila/mentora/internal/config"
	"github.com/HendryAvila/mentora/internal/history"
	"github.com/HendryAvila/mentora/internal/knowledge"
	"github.com/HendryAvila/mentora/internal/prompts"
	"github.com/HendryAvila/mentora/internal/provider"
	"github.com/HendryAvila/mentora/internal/resources"
	"github.com/HendryAvila/mentora/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// deps holds the constructed collaborators the capability set is built
// from. Fields are nil when the matching subsystem is unavailable.
type deps struct {
	store   knowledge.Store
	fetcher tools.UpdateFetcher
	history *history.Store
}

// New creates and configures the MCP server with all capabilities
// registered. This is the single place where dependencies are resolved.
//
// The returned cleanup function closes the history store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if history init failed.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	d := deps{store: knowledge.NewFileStore(cfg.KnowledgeFile)}

	// The provider client exists only when a credential does. Without
	// one, fetch-updates is never registered — invoking its name is an
	// unknown capability, not a configuration error.
	if cfg.HasProviderCredential() {
		d.fetcher = provider.New(provider.Config{
			APIKey:  cfg.APIKey,
			APIBase: cfg.APIBase,
			Model:   cfg.Model,
		})
	}

	// History is an independent subsystem: if it fails to initialize,
	// the core capabilities keep working. We log a warning and skip
	// registration of the update-history action.
	cleanup := noop
	hist, histErr := history.Open(cfg.HistoryDB)
	if histErr != nil {
		log.Printf("WARNING: update history disabled: %v", histErr)
	} else {
		d.history = hist
		cleanup = func() {
			if err := hist.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	reg := capability.NewRegistry()
	for _, c := range capabilitiesFor(cfg, d) {
		if err := reg.Register(c); err != nil {
			cleanup()
			return nil, noop, fmt.Errorf("registering capabilities: %w", err)
		}
	}

	s := server.NewMCPServer(
		"mentora",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)
	attach(s, reg)

	return s, cleanup, nil
}

// capabilitiesFor maps configuration and available subsystems to the
// set of capabilities to register, in discovery order. Pure: evaluated
// once at startup, and testable without touching the environment.
func capabilitiesFor(cfg config.Config, d deps) []capability.Capability {
	var recorder tools.UpdateRecorder
	if d.history != nil {
		recorder = d.history
	}

	caps := []capability.Capability{
		prompts.NewGuidance(),
		resources.NewState(d.store),
		resources.NewSchema(),
		tools.NewReadState(d.store),
		tools.NewWriteState(d.store, recorder),
	}
	if cfg.HasProviderCredential() {
		caps = append(caps, tools.NewFetchUpdates(d.fetcher))
	}
	if d.history != nil {
		caps = append(caps, tools.NewUpdateHistory(d.history))
	}
	return caps
}

// noop is a no-op cleanup function used as the default when history
// is disabled or hasn't been initialized.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use Mentora effectively.
func serverInstructions() string {
	return `You have access to Mentora, a learning-coach MCP server that tracks
which concepts a learner already knows.

## Capabilities

- learning-coach (prompt): the coach workflow. Read it first.
- read-state: the learner's knowledge document (ownerId + knownConcepts).
- write-state: set a concept's known flag (insert or overwrite).
- fetch-updates: digest of concepts worth learning, from the configured
  provider. Only present when a provider credential is configured.
- update-history: recent write-state mutations, newest first. Only present
  when the history log is available.

## Rules

- Follow the learning-coach sequence: fetch-updates, then read-state, then
  suggest 1-2 unknown concepts, then write-state on confirmation.
- Concept names are matched by exact string equality. Reuse the exact name
  from the digest when writing state.
- Never mark a concept known without the learner confirming it.
- write-state replaces nothing else: all other concepts are preserved.`
}
