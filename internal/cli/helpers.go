package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mzurbriggen/alpinequery/internal/cache"
	"github.com/mzurbriggen/alpinequery/internal/model"
	"github.com/mzurbriggen/alpinequery/internal/tourism"
)

// loadConfig merges defaults, the config file and environment variables
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "Warning: config unmarshal failed: %v\n", err)
	}

	// API keys come from the environment, never the config file
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if base := os.Getenv("OLLAMA_BASE_URL"); base != "" && cfg.LLM.BaseURL == "" && cfg.LLM.Provider == "ollama" {
		cfg.LLM.BaseURL = base
	}
	return cfg
}

// newCache builds the configured response cache, nil when caching is disabled
func newCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Dir != "" {
		return cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
}

// newCatalogClient wires the catalog client with the configured cache
func newCatalogClient(cfg *model.Config) *tourism.Client {
	return tourism.NewClient(cfg.Catalog, newCache(cfg))
}

// defaultCacheDir returns the on-disk cache location
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alpinequery", "cache")
}
