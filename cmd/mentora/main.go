// Mentora: Learning Coach MCP Server
//
// An MCP server that tracks which concepts a learner already knows,
// fetches concepts worth learning from an OpenAI-compatible provider,
// and guides the AI client through a coach workflow.
//
// Usage:
//
//	mentora init <owner-id>   # Seed the knowledge document
//	mentora serve             # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/mentora/internal/config"
	"github.com/HendryAvila/mentora/internal/knowledge"
	mentoraserver "github.com/HendryAvila/mentora/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "init":
		if err := runInit(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("mentora v%s\n", mentoraserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, cleanup, err := mentoraserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	return server.ServeStdio(s)
}

// runInit seeds the knowledge document with an empty concept map, so
// the first read-state call never fails on a missing file.
func runInit(args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("usage: mentora init <owner-id>")
	}

	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := knowledge.NewFileStore(cfg.KnowledgeFile)
	if _, err := store.Read(); err == nil {
		return fmt.Errorf("knowledge document already exists at %s", store.Path())
	}

	if err := store.Write(knowledge.NewDocument(args[0])); err != nil {
		return fmt.Errorf("seeding document: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded knowledge document for %q at %s\n", args[0], store.Path())
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Mentora v%s — Learning Coach MCP Server

Usage:
  mentora init <owner-id>   Seed the knowledge document for an owner
  mentora serve             Start the MCP server (stdio transport)

Environment:
  OPENAI_API_KEY            Enables the fetch-updates action
  MENTORA_MODEL             Provider model identifier (default: gpt-4o-mini)
  MENTORA_KNOWLEDGE_FILE    Knowledge document path (default: knowledge.json)
  MENTORA_CONFIG            Config file path (default: mentora.yaml)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "mentora": {
        "command": "mentora",
        "args": ["serve"]
      }
    }
  }
`, mentoraserver.Version)
}
