package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"auraquest/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", maskKey(""))
	assert.Equal(t, "****", maskKey("abc"))
	assert.Equal(t, "****6789", maskKey("sk-123456789"))
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("API_KEY", "")

	prev := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() {
		cfgFile = prev
		viper.Reset()
	})

	viper.Set("provider", config.ProviderOpenAI)
	viper.Set("print-format", config.PrintHTML)
	viper.Set("resume-step", config.ResumeLast)
	viper.Set("debug", true)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "openai-key", cfg.LLM.APIKey)
	assert.Equal(t, config.PrintHTML, cfg.Print.Format)
	assert.Equal(t, config.ResumeLast, cfg.Wizard.ResumeStep)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaultsWithoutFlags(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("API_KEY", "")

	prev := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() {
		cfgFile = prev
		viper.Reset()
	})

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, config.PrintMarkdown, cfg.Print.Format)
	assert.Error(t, cfg.Validate(), "missing key must fail validation")
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitConfigCommand(t *testing.T) {
	prevCfg, prevForce := cfgFile, forceInit
	t.Cleanup(func() {
		cfgFile, forceInit = prevCfg, prevForce
		viper.Reset()
	})
	path := filepath.Join(t.TempDir(), "quest", "config.yaml")

	out, err := executeRoot(t, "--config", path, "init-config")
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to "+path)
	require.NotNil(t, logger, "subcommands build the zap logger")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Print, cfg.Print)

	_, err = executeRoot(t, "--config", path, "init-config")
	assert.ErrorContains(t, err, "already exists")

	_, err = executeRoot(t, "--config", path, "init-config", "--force")
	assert.NoError(t, err)
}

func TestShowConfigCommandMasksKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gm-secret-9876")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("API_KEY", "")
	prevCfg := cfgFile
	t.Cleanup(func() {
		cfgFile = prevCfg
		viper.Reset()
	})

	out, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "show-config")
	require.NoError(t, err)
	assert.Contains(t, out, "****9876")
	assert.NotContains(t, out, "gm-secret")
	assert.Contains(t, out, "provider: gemini")
}
