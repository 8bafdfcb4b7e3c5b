package evaluate

import (
	"fmt"
	"io"
	"strings"

	"github.com/mzurbriggen/alpinequery/internal/model"
)

// Render writes a human-readable comparison report
func Render(w io.Writer, report *model.ComparisonReport) {
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w, "  Query Interpretation Evaluation")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintln(w)

	for i, res := range report.Results {
		fmt.Fprintf(w, "Case %d: %q\n", i+1, res.Case.Query)
		renderRun(w, res.Fuzzy)
		if res.LLM != nil {
			renderRun(w, *res.LLM)
		}
		fmt.Fprintln(w)
	}

	renderAggregate(w, report.Fuzzy)
	if report.LLM != nil {
		renderAggregate(w, *report.LLM)
		renderVerdict(w, report.Fuzzy, *report.LLM)
	}
}

func renderRun(w io.Writer, run model.ParserRun) {
	fmt.Fprintf(w, "  [%s] ", run.Source)
	if run.Error != "" {
		fmt.Fprintf(w, "error: %s\n", run.Error)
		return
	}
	var parts []string
	for _, category := range []string{
		model.CategoryExperience, model.CategoryDuration,
		model.CategoryDifficulty, model.CategoryAudience,
	} {
		if v := run.Filters.Value(category); v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", category, v))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "(no filters)")
	}
	fmt.Fprintf(w, "%s  confidence=%.2f", strings.Join(parts, " "), run.Filters.Confidence)
	if run.FilterAccuracy != nil {
		fmt.Fprintf(w, "  filter-accuracy=%.2f", *run.FilterAccuracy)
	}
	fmt.Fprintln(w)

	m := run.Metrics
	if m.Unmeasurable {
		fmt.Fprintf(w, "         metrics: %s\n", m.Note)
		return
	}
	fmt.Fprintf(w, "         precision=%.3f recall=%.3f f1=%.3f\n", m.Precision, m.Recall, m.F1)
	fmt.Fprintf(w, "         %s\n", m.Summary.Statement)
}

func renderAggregate(w io.Writer, agg model.Aggregate) {
	fmt.Fprintf(w, "%s parser over %d cases: precision=%.3f recall=%.3f f1=%.3f",
		agg.Source, agg.Cases, agg.Precision, agg.Recall, agg.F1)
	if agg.FilterAccuracy != nil {
		fmt.Fprintf(w, " filter-accuracy=%.3f", *agg.FilterAccuracy)
	}
	fmt.Fprintln(w)
	if len(agg.Summaries) > 0 {
		fmt.Fprintf(w, "  %s (truth %.2f)\n", agg.Summaries[0].Statement, agg.Summaries[0].TruthValue)
	}
}

func renderVerdict(w io.Writer, fuzzy, llm model.Aggregate) {
	fmt.Fprintln(w)
	switch {
	case fuzzy.F1 > llm.F1:
		fmt.Fprintf(w, "Verdict: fuzzy interpreter ahead by %.3f F1\n", fuzzy.F1-llm.F1)
	case llm.F1 > fuzzy.F1:
		fmt.Fprintf(w, "Verdict: LLM parser ahead by %.3f F1\n", llm.F1-fuzzy.F1)
	default:
		fmt.Fprintln(w, "Verdict: parsers tied on F1")
	}
}
