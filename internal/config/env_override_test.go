package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_LLM(t *testing.T) {
	t.Run("API_KEY fills the key", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("API_KEY", "generic")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "generic", cfg.LLM.APIKey)
		assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	})

	t.Run("GEMINI_API_KEY wins over API_KEY for gemini", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("API_KEY", "generic")
		t.Setenv("GEMINI_API_KEY", "gem")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gem", cfg.LLM.APIKey)
	})

	t.Run("OPENAI_API_KEY ignored while provider is gemini", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("OPENAI_API_KEY", "oa")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Empty(t, cfg.LLM.APIKey)
	})

	t.Run("SetProvider picks up provider key", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("GEMINI_API_KEY", "gem")
		t.Setenv("OPENAI_API_KEY", "oa")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		require.Equal(t, "gem", cfg.LLM.APIKey)

		cfg.SetProvider(ProviderOpenAI)
		assert.Equal(t, "oa", cfg.LLM.APIKey)
		assert.Equal(t, DefaultOpenAIModel, cfg.LLM.ResolvedModel())
	})

	t.Run("QUEST_MODEL and QUEST_PRINT_DIR", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("QUEST_MODEL", "gemini-2.5-flash")
		t.Setenv("QUEST_PRINT_DIR", "/tmp/trips")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ResolvedModel())
		assert.Equal(t, "/tmp/trips", cfg.Print.OutputDir)
	})
}
