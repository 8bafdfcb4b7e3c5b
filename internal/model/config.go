package model

import "time"

// Config is the full application configuration.
// Hierarchy (highest to lowest priority): CLI flags, ALPINEQUERY_* env vars,
// ~/.alpinequery/config.yaml, defaults.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Inference InferenceConfig `yaml:"inference" mapstructure:"inference"`
	Evaluate  EvaluateConfig  `yaml:"evaluate" mapstructure:"evaluate"`
}

// CatalogConfig configures the tourism-activity catalog client
type CatalogConfig struct {
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`       // empty: use the built-in mock catalog
	ListingURL string        `yaml:"listing_url" mapstructure:"listing_url"` // optional HTML listing page to scrape
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent  string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxResults int           `yaml:"max_results" mapstructure:"max_results"`
	HTTPProxy  string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// CacheConfig configures the layered response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // empty: memory-only
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// LLMConfig configures the LLM-based comparison parser
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"` // openai, ollama, "" (disabled)
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL           string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout           int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerMinute float64 `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// InferenceConfig exposes the tunable knobs of the fuzzy core
type InferenceConfig struct {
	Resolution    int     `yaml:"resolution" mapstructure:"resolution"`         // discretization steps for defuzzification
	MinSimilarity float64 `yaml:"min_similarity" mapstructure:"min_similarity"` // floor below which a lexicon match is discarded
}

// EvaluateConfig configures evaluation runs
type EvaluateConfig struct {
	Workers       int     `yaml:"workers" mapstructure:"workers"`
	MinTruthValue float64 `yaml:"min_truth_value" mapstructure:"min_truth_value"` // floor for generated summaries
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Timeout:    15 * time.Second,
			UserAgent:  "alpinequery/0.3 (+https://github.com/mzurbriggen/alpinequery)",
			MaxResults: 10,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:          "",
			Timeout:           30,
			MaxTokens:         400,
			RequestsPerMinute: 20,
			Burst:             3,
		},
		Inference: InferenceConfig{
			Resolution:    100,
			MinSimilarity: 0.35,
		},
		Evaluate: EvaluateConfig{
			Workers:       4,
			MinTruthValue: 0.5,
		},
	}
}
