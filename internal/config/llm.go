package config

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-3-pro-preview"
	DefaultOpenAIModel = "gpt-4o"
)

// ValidProviders lists all supported generation providers.
var ValidProviders = []string{ProviderGemini, ProviderOpenAI}

// LLMConfig configures the itinerary generation service.
// There is no timeout: a generation runs until the provider's transport gives up.
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // gemini, openai
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float32 `yaml:"temperature"`
}

// ResolvedModel returns the configured model or the provider default.
func (c LLMConfig) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}
