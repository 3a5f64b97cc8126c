// Package config loads process configuration: an optional YAML file
// plus environment overrides. The loader takes a lookup function
// instead of reading the environment directly, so tests never mutate
// real environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	EnvAPIKey        = "OPENAI_API_KEY"
	EnvAPIBase       = "OPENAI_API_BASE"
	EnvModel         = "MENTORA_MODEL"
	EnvKnowledgeFile = "MENTORA_KNOWLEDGE_FILE"
	EnvHistoryDB     = "MENTORA_HISTORY_DB"
	EnvConfigFile    = "MENTORA_CONFIG"
)

// DefaultConfigFile is consulted when MENTORA_CONFIG is unset.
const DefaultConfigFile = "mentora.yaml"

// Config holds everything the composition root needs to decide which
// capabilities to register and how to construct them.
type Config struct {
	// APIKey gates the fetch-updates action: when empty, the action is
	// not registered at all. Environment-only — never read from file.
	APIKey string `yaml:"-"`

	APIBase       string `yaml:"api_base"`
	Model         string `yaml:"model"`
	KnowledgeFile string `yaml:"knowledge_file"`
	HistoryDB     string `yaml:"history_db"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Model:         "gpt-4o-mini",
		KnowledgeFile: "knowledge.json",
		HistoryDB:     ".mentora/history.db",
	}
}

// LookupFunc mirrors os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds the effective configuration: defaults, then the YAML
// file (if present), then environment overrides. A configured-but-
// unreadable file is an error; a missing default file is not.
func Load(lookup LookupFunc) (Config, error) {
	cfg := Defaults()

	path := DefaultConfigFile
	explicit := false
	if v, ok := lookup(EnvConfigFile); ok && v != "" {
		path = v
		explicit = true
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine — defaults plus env.
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if v, ok := lookup(EnvAPIKey); ok {
		cfg.APIKey = v
	}
	if v, ok := lookup(EnvAPIBase); ok && v != "" {
		cfg.APIBase = v
	}
	if v, ok := lookup(EnvModel); ok && v != "" {
		cfg.Model = v
	}
	if v, ok := lookup(EnvKnowledgeFile); ok && v != "" {
		cfg.KnowledgeFile = v
	}
	if v, ok := lookup(EnvHistoryDB); ok && v != "" {
		cfg.HistoryDB = v
	}

	return cfg, nil
}

// HasProviderCredential reports whether the external update action can
// be registered.
func (c Config) HasProviderCredential() bool {
	return c.APIKey != ""
}
