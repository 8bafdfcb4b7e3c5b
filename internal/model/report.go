package model

import (
	"time"

	"github.com/mzurbriggen/alpinequery/internal/metrics"
	"github.com/mzurbriggen/alpinequery/internal/summary"
)

// EvaluationCase is one gold-standard test case: a query plus the filters
// and activity names a correct interpretation should yield.
type EvaluationCase struct {
	Query           string            `yaml:"query" json:"query"`
	ExpectedFilters map[string]string `yaml:"expected_filters,omitempty" json:"expected_filters,omitempty"`
	ExpectedNames   []string          `yaml:"expected_names" json:"expected_names"`
}

// ParserRun is the outcome of one parser (fuzzy or llm) on one case
type ParserRun struct {
	Source         string          `json:"source"`   // fuzzy or llm
	Filters        ActivityFilters `json:"filters"`
	Returned       []string        `json:"returned"` // activity titles the search produced
	Metrics        metrics.Result  `json:"metrics"`
	FilterAccuracy *float64        `json:"filter_accuracy,omitempty"` // fraction of expected filters matched, nil when the case expects none
	Error          string          `json:"error,omitempty"`
}

// CaseResult pairs a gold case with the runs performed on it
type CaseResult struct {
	Case  EvaluationCase `json:"case"`
	Fuzzy ParserRun      `json:"fuzzy"`
	LLM   *ParserRun     `json:"llm,omitempty"` // nil when the LLM comparison is disabled
}

// Aggregate summarizes one parser's metrics across all cases
type Aggregate struct {
	Source         string            `json:"source"`
	Cases          int               `json:"cases"`
	Precision      float64           `json:"precision"` // mean fuzzy precision
	Recall         float64           `json:"recall"`
	F1             float64           `json:"f1"`
	FilterAccuracy *float64          `json:"filter_accuracy,omitempty"` // mean over cases that expect filters
	Summaries      []summary.Summary `json:"summaries,omitempty"`       // linguistic summaries over per-case F1
}

// ComparisonReport is the full output of an evaluation run
type ComparisonReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	CasesFile   string       `json:"cases_file,omitempty"`
	Results     []CaseResult `json:"results"`
	Fuzzy       Aggregate    `json:"fuzzy"`
	LLM         *Aggregate   `json:"llm,omitempty"`
}
