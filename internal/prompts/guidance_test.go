package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/HendryAvila/mentora/internal/capability"
)

// The guidance text is a contract with the caller: it must name the
// three actions in execution order and state the decision rule.

func TestText_NamesActionsInExecutionOrder(t *testing.T) {
	text := Text()

	fetch := strings.Index(text, "fetch-updates")
	read := strings.Index(text, "read-state")
	write := strings.Index(text, "write-state")

	if fetch == -1 || read == -1 || write == -1 {
		t.Fatalf("guidance missing an action name (fetch=%d read=%d write=%d)", fetch, read, write)
	}
	if !(fetch < read && read < write) {
		t.Errorf("actions out of execution order (fetch=%d read=%d write=%d)", fetch, read, write)
	}
}

func TestText_StatesDecisionRule(t *testing.T) {
	text := Text()

	for _, phrase := range []string{
		"knownConcepts",
		"1-2 concepts",
		"confirm",
	} {
		if !strings.Contains(text, phrase) {
			t.Errorf("guidance missing %q", phrase)
		}
	}
}

func TestNewGuidance_NoInputNoFailure(t *testing.T) {
	c := NewGuidance()

	if c.Name != GuidanceName {
		t.Errorf("Name = %q, want %q", c.Name, GuidanceName)
	}
	if c.Kind != capability.KindGuidance {
		t.Errorf("Kind = %q, want guidance", c.Kind)
	}
	if len(c.Input.Fields) != 0 {
		t.Errorf("Input has %d fields, want none", len(c.Input.Fields))
	}

	out, err := c.Handler(context.Background(), nil)
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	if out != Text() {
		t.Error("handler output differs from the fixed text")
	}
}
