package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mzurbriggen/alpinequery/internal/parser"
)

var (
	searchJSON    bool
	searchTimeout time.Duration
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Interpret a query and search the activity catalog",
	Long: `Search parses a free-text query and runs the resulting filters
against the activity catalog (the built-in mock catalog unless a catalog
base URL is configured).

Example:
  alpinequery search "easy hike for seniors, half day"
  alpinequery search "castle visit with kids" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 30*time.Second, "overall search timeout")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	p := parser.New(
		parser.WithMinSimilarity(cfg.Inference.MinSimilarity),
		parser.WithResolution(cfg.Inference.Resolution),
	)
	client := newCatalogClient(cfg)

	filters := p.Parse(args[0])
	activities, err := client.Search(ctx, filters)
	if err != nil {
		return fmt.Errorf("searching catalog: %w", err)
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(activities)
	}

	fmt.Printf("Query: %q  (confidence %.2f)\n\n", filters.Query, filters.Confidence)
	if len(activities) == 0 {
		fmt.Println("No matching activities.")
		return nil
	}
	for i, a := range activities {
		fmt.Printf("%2d. %-34s %s/%s/%s  score=%.2f\n",
			i+1, a.Name, a.Experience, a.Duration, a.Difficulty, a.Score)
	}
	return nil
}
