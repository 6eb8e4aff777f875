// Package config centralizes environment lookup for gitmsg.
package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultModel is used when GITMSG_MODEL is not set.
const DefaultModel = "gpt-4o-mini"

// apiKeyVars are checked in priority order; the first non-empty value wins.
var apiKeyVars = []string{"GITMSG_API_KEY", "OPENAI_API_KEY", "OPENAI_KEY"}

// Env holds the environment-driven configuration for one invocation.
type Env struct {
	// APIKey authenticates against the generator API.
	APIKey string

	// BaseURL overrides the generator API base URL (OPENAI_BASE_URL).
	BaseURL string

	// Model is the generator model name (GITMSG_MODEL).
	Model string
}

var (
	env     *Env
	envOnce sync.Once
)

// Load returns the process-wide environment configuration, reading a .env
// file from the working directory first when present. Thread-safe, loads
// once on first call.
func Load() *Env {
	envOnce.Do(func() {
		_ = godotenv.Load()
		env = &Env{
			APIKey:  firstEnv(apiKeyVars...),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   getEnvDefault("GITMSG_MODEL", DefaultModel),
		}
	})
	return env
}

// Reset clears the cached environment. Test helper.
func Reset() {
	env = nil
	envOnce = sync.Once{}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

func getEnvDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
