package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DEEPWORK_LLM_ENABLED", "true")
	t.Setenv("DEEPWORK_LLM_MODEL", "qwen2.5")
	t.Setenv("DEEPWORK_LLM_TIMEOUT_MS", "2500")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
}

func TestLoadConfig_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("DEEPWORK_LLM_TIMEOUT_MS", "-5")
	cfg := LoadConfig()
	assert.Equal(t, 15000, cfg.TimeoutMs)
}
