package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates an LLM provider based on configuration. The provider
// is wrapped in the rate limiter when a request budget is configured.
// An empty provider name returns (nil, nil): LLM comparison disabled.
func NewProvider(config Config) (Provider, error) {
	var (
		provider Provider
		err      error
	)

	switch strings.ToLower(config.Provider) {
	case "openai":
		provider, err = NewOpenAIProvider(config)

	case "ollama":
		provider, err = NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.RequestsPerMinute > 0 {
		provider = NewRateLimited(provider, config.RequestsPerMinute, config.Burst)
	}
	return provider, nil
}
