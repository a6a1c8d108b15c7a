package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all AuraQuest configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Generation service
	LLM LLMConfig `yaml:"llm"`

	// Wizard behaviour
	Wizard WizardConfig `yaml:"wizard"`

	// Print/export
	Print PrintConfig `yaml:"print"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// WizardConfig configures the planning wizard.
type WizardConfig struct {
	// Interval between loading status messages
	StatusInterval string `yaml:"status_interval"`

	// Step shown after a failed generation: "first" (default) or "last"
	ResumeStep string `yaml:"resume_step"`
}

// PrintConfig configures itinerary export.
type PrintConfig struct {
	Format    string `yaml:"format"` // markdown, html, pdf, terminal
	OutputDir string `yaml:"output_dir"`

	// Chrome binary for pdf output; empty lets rod download or find one
	BrowserBin string `yaml:"browser_bin"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "AuraQuest",
		Version: "1.0.0",

		LLM: LLMConfig{
			Provider:    ProviderGemini,
			Temperature: 0.7,
		},

		Wizard: WizardConfig{
			StatusInterval: "1s",
			ResumeStep:     ResumeFirst,
		},

		Print: PrintConfig{
			Format:    PrintMarkdown,
			OutputDir: ".",
		},

		Logging: LoggingConfig{
			Level:     "info",
			DebugMode: false,
		},
	}
}

// DefaultPath returns ~/.quest/config.yaml, or a relative path when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".quest", "config.yaml")
	}
	return filepath.Join(home, ".quest", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API_KEY is the generic name; the provider-specific key wins over it.
	if key := os.Getenv("API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if key := providerKey(c.LLM.Provider); key != "" {
		c.LLM.APIKey = key
	}

	if model := os.Getenv("QUEST_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if dir := os.Getenv("QUEST_PRINT_DIR"); dir != "" {
		c.Print.OutputDir = dir
	}
}

// SetProvider switches provider and picks up that provider's key from the
// environment when one is set.
func (c *Config) SetProvider(provider string) {
	c.LLM.Provider = provider
	if key := providerKey(provider); key != "" {
		c.LLM.APIKey = key
	}
}

func providerKey(provider string) string {
	switch provider {
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

// GetStatusInterval returns the loading status cadence as a duration.
func (c *Config) GetStatusInterval() time.Duration {
	d, err := time.ParseDuration(c.Wizard.StatusInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

const (
	ResumeFirst = "first"
	ResumeLast  = "last"
)

const (
	PrintMarkdown = "markdown"
	PrintHTML     = "html"
	PrintPDF      = "pdf"
	PrintTerminal = "terminal"
)

// ValidPrintFormats lists the supported export formats.
var ValidPrintFormats = []string{PrintMarkdown, PrintHTML, PrintPDF, PrintTerminal}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("generation API key not configured (set GEMINI_API_KEY, API_KEY or OPENAI_API_KEY)")
	}

	if !slices.Contains(ValidProviders, c.LLM.Provider) {
		return fmt.Errorf("invalid LLM provider: %s (valid: %v)", c.LLM.Provider, ValidProviders)
	}

	if !slices.Contains(ValidPrintFormats, c.Print.Format) {
		return fmt.Errorf("invalid print format: %s (valid: %v)", c.Print.Format, ValidPrintFormats)
	}

	switch c.Wizard.ResumeStep {
	case ResumeFirst, ResumeLast, "":
	default:
		return fmt.Errorf("invalid wizard.resume_step: %s (valid: first, last)", c.Wizard.ResumeStep)
	}

	return nil
}
