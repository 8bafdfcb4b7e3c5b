package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mzurbriggen/alpinequery/internal/model"
)

// Provider defines the interface for the LLM-based query parsers the fuzzy
// interpreter is compared against.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Parse interprets a free-text activity query into categorical filters
	Parse(ctx context.Context, query string) (*model.ActivityFilters, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerMinute and Burst feed the rate limiter wrapper
	RequestsPerMinute float64
	Burst             int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Timeout:           30,
		MaxTokens:         400,
		RequestsPerMinute: 20,
		Burst:             3,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:          mc.Provider,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		BaseURL:           mc.BaseURL,
		Timeout:           mc.Timeout,
		MaxTokens:         mc.MaxTokens,
		RequestsPerMinute: mc.RequestsPerMinute,
		Burst:             mc.Burst,
	}
}

// systemPrompt constrains the model to the closed filter vocabulary
const systemPrompt = `You convert tourism-activity search queries into JSON filters.
Respond with a single JSON object and nothing else. Schema:
{"experience": "hiking|sightseeing|adventure|culture|wellness|",
 "duration": "short|half_day|full_day|multi_day|",
 "difficulty": "easy|moderate|hard|expert|",
 "audience": "families|seniors|experts|everyone|",
 "confidence": 0.0-1.0}
Use an empty string for any filter the query does not imply. Never invent
values outside the listed vocabulary.`

// BuildPrompt constructs the user prompt for a query
func BuildPrompt(query string) string {
	return fmt.Sprintf("Query: %q\nJSON:", query)
}

// filterResponse is the JSON shape the providers ask the model for
type filterResponse struct {
	Experience string  `json:"experience"`
	Duration   string  `json:"duration"`
	Difficulty string  `json:"difficulty"`
	Audience   string  `json:"audience"`
	Confidence float64 `json:"confidence"`
}

// ParseFilterJSON extracts the filter object from a model response, tolerating
// surrounding prose or markdown fences.
func ParseFilterJSON(query, response string) (*model.ActivityFilters, error) {
	raw := extractJSONObject(response)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var fr filterResponse
	if err := json.Unmarshal([]byte(raw), &fr); err != nil {
		return nil, fmt.Errorf("malformed filter JSON: %w", err)
	}

	filters := &model.ActivityFilters{
		Query:      query,
		Experience: normalizeLabel(fr.Experience),
		Duration:   normalizeLabel(fr.Duration),
		Difficulty: normalizeLabel(fr.Difficulty),
		Audience:   normalizeLabel(fr.Audience),
		Confidence: clamp01(fr.Confidence),
		Source:     "llm",
	}
	return filters, nil
}

// extractJSONObject returns the first balanced {...} span in s
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
