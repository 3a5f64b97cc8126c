package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/HendryAvila/mentora/internal/capability"
	"github.com/HendryAvila/mentora/internal/config"
	"github.com/HendryAvila/mentora/internal/history"
	"github.com/HendryAvila/mentora/internal/knowledge"
	"github.com/HendryAvila/mentora/internal/tools"
)

type stubFetcher struct{}

func (stubFetcher) FetchConceptUpdates(ctx context.Context) (string, error) {
	return "digest", nil
}

func testDeps(t *testing.T) deps {
	t.Helper()
	return deps{
		store: knowledge.NewFileStore(filepath.Join(t.TempDir(), "knowledge.json")),
	}
}

func names(caps []capability.Capability) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = c.Name
	}
	return out
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

// --- capabilitiesFor ---

func TestCapabilitiesFor_WithoutCredential(t *testing.T) {
	caps := capabilitiesFor(config.Defaults(), testDeps(t))

	got := names(caps)
	if contains(got, tools.FetchUpdatesName) {
		t.Errorf("fetch-updates registered without a credential: %v", got)
	}

	// The core set is unaffected by the missing credential.
	for _, want := range []string{"learning-coach", "knowledge-state", "knowledge-schema", "read-state", "write-state"} {
		if !contains(got, want) {
			t.Errorf("missing capability %q: %v", want, got)
		}
	}
}

func TestCapabilitiesFor_WithCredential(t *testing.T) {
	cfg := config.Defaults()
	cfg.APIKey = "sk-test"
	d := testDeps(t)
	d.fetcher = stubFetcher{}

	got := names(capabilitiesFor(cfg, d))
	if !contains(got, tools.FetchUpdatesName) {
		t.Errorf("fetch-updates not registered with credential: %v", got)
	}
}

func TestCapabilitiesFor_HistoryOptional(t *testing.T) {
	d := testDeps(t)
	got := names(capabilitiesFor(config.Defaults(), d))
	if contains(got, tools.UpdateHistoryName) {
		t.Errorf("update-history registered without the subsystem: %v", got)
	}

	hist, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer hist.Close()
	d.history = hist

	got = names(capabilitiesFor(config.Defaults(), d))
	if !contains(got, tools.UpdateHistoryName) {
		t.Errorf("update-history missing with the subsystem available: %v", got)
	}
}

func TestCapabilitiesFor_DiscoveryOrder(t *testing.T) {
	// Guidance first, then resources, then actions — the order clients
	// see on discovery.
	got := names(capabilitiesFor(config.Defaults(), testDeps(t)))
	want := []string{"learning-coach", "knowledge-state", "knowledge-schema", "read-state", "write-state"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

// --- registry wiring ---

func TestUnknownCapabilityThroughRegistry(t *testing.T) {
	reg := capability.NewRegistry()
	for _, c := range capabilitiesFor(config.Defaults(), testDeps(t)) {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register %s: %v", c.Name, err)
		}
	}

	// Without a credential the action was never registered, so its
	// name is unknown — not a configuration error.
	_, err := reg.Invoke(context.Background(), tools.FetchUpdatesName, nil)
	if !errors.Is(err, capability.ErrUnknownCapability) {
		t.Errorf("err = %v, want ErrUnknownCapability", err)
	}
}

func TestNew_BuildsServer(t *testing.T) {
	cfg := config.Defaults()
	dir := t.TempDir()
	cfg.KnowledgeFile = filepath.Join(dir, "knowledge.json")
	cfg.HistoryDB = filepath.Join(dir, "history.db")

	s, cleanup, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cleanup()
	if s == nil {
		t.Fatal("New returned nil server")
	}
}

// --- bridge ---

func TestToolDefinition_TranslatesContract(t *testing.T) {
	store := knowledge.NewFileStore(filepath.Join(t.TempDir(), "knowledge.json"))
	def := toolDefinition(tools.NewWriteState(store, nil))

	if def.Name != tools.WriteStateName {
		t.Errorf("Name = %q, want %q", def.Name, tools.WriteStateName)
	}
	props := def.InputSchema.Properties
	if _, ok := props["concept"]; !ok {
		t.Error("concept missing from tool schema")
	}
	if _, ok := props["known"]; !ok {
		t.Error("known missing from tool schema")
	}
	if got := def.InputSchema.Required; len(got) != 2 {
		t.Errorf("Required = %v, want both fields", got)
	}
}
