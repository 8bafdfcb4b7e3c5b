package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzurbriggen/alpinequery/internal/parser"
)

var (
	parseJSON    bool
	parseExplain bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <query>",
	Short: "Interpret a free-text query into structured filters",
	Long: `Parse runs a free-text activity query through the fuzzy interpreter
and prints the extracted categorical filters with their confidence.

Example:
  alpinequery parse "easy hike for seniors, half day"
  alpinequery parse "challenging multi-day trek" --explain
  alpinequery parse "thermal spa afternoon" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the result as JSON")
	parseCmd.Flags().BoolVar(&parseExplain, "explain", false, "show per-filter matches and confidence bands")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	p := parser.New(
		parser.WithMinSimilarity(cfg.Inference.MinSimilarity),
		parser.WithResolution(cfg.Inference.Resolution),
	)

	filters := p.Parse(args[0])

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(filters)
	}

	fmt.Printf("Query: %q\n\n", filters.Query)
	printFilter("experience", filters.Experience)
	printFilter("duration", filters.Duration)
	printFilter("difficulty", filters.Difficulty)
	printFilter("audience", filters.Audience)
	fmt.Printf("\nOverall confidence: %.2f\n", filters.Confidence)

	if parseExplain {
		fmt.Println("\nMatches:")
		for _, m := range filters.Matches {
			fmt.Printf("  %-11s %-12s via %q  similarity=%.2f confidence=%.2f %v\n",
				m.Category, m.Label, m.Term, m.Similarity, m.Confidence, m.Bands)
		}
	}
	return nil
}

func printFilter(name, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Printf("  %-11s %s\n", name, value)
}
