package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the conversational agent subsystem.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	Model     string
	TimeoutMs int // per-send budget for establishing the response stream
}

// DefaultConfig returns a Config with sensible defaults.
// The agent is disabled by default; the app then falls back to the
// scripted offline gateway.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		LogCalls:  false,
		Endpoint:  "http://localhost:11434",
		Model:     "llama3.2",
		TimeoutMs: 15000,
	}
}

// LoadConfig reads agent configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DEEPWORK_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DEEPWORK_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DEEPWORK_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DEEPWORK_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DEEPWORK_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
