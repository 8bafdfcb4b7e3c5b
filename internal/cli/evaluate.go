package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mzurbriggen/alpinequery/internal/evaluate"
	"github.com/mzurbriggen/alpinequery/internal/llm"
	"github.com/mzurbriggen/alpinequery/internal/parser"
)

var (
	evalCasesFile string
	evalOutJSON   string
	evalTimeout   time.Duration
	evalLLM       bool
	evalProvider  string
	evalModel     string
	evalWorkers   int
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the interpreter against gold-standard cases",
	Long: `Evaluate runs a YAML file of gold-standard cases (query plus the
expected activity names) through the fuzzy interpreter, scores every run
with fuzzy precision/recall/F1 and a fuzzy confusion matrix, and attaches a
linguistic summary to each result.

With --llm the same cases also run through an LLM-based parser so the two
interpreters can be compared on identical ground.

Example:
  alpinequery evaluate --cases testdata/gold.yaml
  alpinequery evaluate --cases gold.yaml --llm --llm-provider openai
  alpinequery evaluate --cases gold.yaml --json report.json`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evalCasesFile, "cases", "", "gold-standard cases YAML file (required)")
	evaluateCmd.Flags().StringVar(&evalOutJSON, "json", "", "write the full report to this JSON path")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 5*time.Minute, "overall evaluation timeout")
	evaluateCmd.Flags().IntVar(&evalWorkers, "workers", 0, "concurrent evaluation workers (0: config default)")

	evaluateCmd.Flags().BoolVar(&evalLLM, "llm", false, "also run the LLM-based parser for comparison")
	evaluateCmd.Flags().StringVar(&evalProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	evaluateCmd.Flags().StringVar(&evalModel, "llm-model", "", "LLM model name (provider default if empty)")

	_ = evaluateCmd.MarkFlagRequired("cases")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	cases, err := evaluate.LoadCases(evalCasesFile)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d cases from %s\n", len(cases), evalCasesFile)
	}

	var provider llm.Provider
	if evalLLM {
		llmCfg := llm.ConfigFromModel(cfg.LLM)
		llmCfg.Provider = evalProvider
		if evalModel != "" {
			llmCfg.Model = evalModel
		}
		provider, err = llm.NewProvider(llmCfg)
		if err != nil {
			return fmt.Errorf("initializing LLM provider: %w", err)
		}
		if provider == nil {
			return fmt.Errorf("--llm requires a provider name")
		}
		if !provider.IsAvailable(ctx) {
			return fmt.Errorf("LLM provider %s is not available (check API key / endpoint)", provider.Name())
		}
		if c := newCache(cfg); c != nil {
			provider = llm.NewCached(provider, c, cfg.Cache.MemoryTTL)
		}
	}

	if evalWorkers > 0 {
		cfg.Evaluate.Workers = evalWorkers
	}

	p := parser.New(
		parser.WithMinSimilarity(cfg.Inference.MinSimilarity),
		parser.WithResolution(cfg.Inference.Resolution),
	)
	runner := evaluate.NewRunner(p, provider, newCatalogClient(cfg), cfg.Evaluate)

	report, err := runner.Run(ctx, cases)
	if err != nil {
		return err
	}
	report.CasesFile = evalCasesFile

	evaluate.Render(os.Stdout, report)

	if evalOutJSON != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		if err := os.WriteFile(evalOutJSON, data, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "\nFull report written to %s\n", evalOutJSON)
	}
	return nil
}
