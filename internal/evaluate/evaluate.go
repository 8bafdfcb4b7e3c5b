// Package evaluate runs gold-standard query cases through the fuzzy
// interpreter (and optionally the LLM parser), searches the catalog with the
// resulting filters and scores each run with fuzzy precision/recall.
package evaluate

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mzurbriggen/alpinequery/internal/fuzzy"
	"github.com/mzurbriggen/alpinequery/internal/llm"
	"github.com/mzurbriggen/alpinequery/internal/metrics"
	"github.com/mzurbriggen/alpinequery/internal/model"
	"github.com/mzurbriggen/alpinequery/internal/parser"
	"github.com/mzurbriggen/alpinequery/internal/similarity"
	"github.com/mzurbriggen/alpinequery/internal/summary"
	"github.com/mzurbriggen/alpinequery/internal/worker"
)

// Searcher is the catalog dependency of an evaluation run
type Searcher interface {
	Search(ctx context.Context, filters model.ActivityFilters) ([]model.Activity, error)
}

// Runner executes evaluation runs
type Runner struct {
	parser        *parser.Parser
	llmProvider   llm.Provider // nil disables the LLM comparison
	searcher      Searcher
	calculator    *metrics.Calculator
	workers       int
	minTruthValue float64
}

// NewRunner builds an evaluation runner. llmProvider may be nil.
func NewRunner(p *parser.Parser, llmProvider llm.Provider, searcher Searcher, cfg model.EvaluateConfig) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	minTruth := cfg.MinTruthValue
	if minTruth <= 0 {
		minTruth = summary.DefaultMinTruthValue
	}
	return &Runner{
		parser:        p,
		llmProvider:   llmProvider,
		searcher:      searcher,
		calculator:    metrics.NewCalculator(similarity.Normalized),
		workers:       workers,
		minTruthValue: minTruth,
	}
}

// casesFile is the YAML shape of a gold-standard file
type casesFile struct {
	Cases []model.EvaluationCase `yaml:"cases"`
}

// LoadCases reads gold-standard cases from a YAML file
func LoadCases(path string) ([]model.EvaluationCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cases file: %w", err)
	}
	var f casesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing cases file: %w", err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("cases file %s contains no cases", path)
	}
	for i, c := range f.Cases {
		if c.Query == "" {
			return nil, fmt.Errorf("case %d has no query", i+1)
		}
	}
	return f.Cases, nil
}

// caseJob evaluates a single gold case on the worker pool
type caseJob struct {
	index  int
	kase   model.EvaluationCase
	runner *Runner
	ctx    context.Context
}

// caseJobResult carries the case outcome through the pool
type caseJobResult struct {
	index  int
	result model.CaseResult
	err    error
}

func (r *caseJobResult) GetError() error { return r.err }

func (j *caseJob) Execute(ctx context.Context) worker.Result {
	// Prefer the run-scoped context; the pool context only signals shutdown
	runCtx := j.ctx
	if runCtx == nil {
		runCtx = ctx
	}
	result := j.runner.evaluateCase(runCtx, j.kase)
	return &caseJobResult{index: j.index, result: result}
}

// Run evaluates all cases, fanning them out over the worker pool, and
// aggregates per-parser metrics.
func (r *Runner) Run(ctx context.Context, cases []model.EvaluationCase) (*model.ComparisonReport, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases to evaluate")
	}

	pool := worker.NewPoolWithQueue(r.workers, len(cases))
	pool.Start()
	for i, c := range cases {
		pool.Submit(&caseJob{index: i, kase: c, runner: r, ctx: ctx})
	}
	results := pool.Wait()

	ordered := make([]model.CaseResult, len(cases))
	for _, res := range results {
		jr, ok := res.(*caseJobResult)
		if !ok {
			continue
		}
		ordered[jr.index] = jr.result
	}

	report := &model.ComparisonReport{
		GeneratedAt: time.Now().UTC(),
		Results:     ordered,
		Fuzzy:       r.aggregate("fuzzy", ordered, func(c model.CaseResult) *model.ParserRun { return &c.Fuzzy }),
	}
	if r.llmProvider != nil {
		agg := r.aggregate("llm", ordered, func(c model.CaseResult) *model.ParserRun { return c.LLM })
		report.LLM = &agg
	}
	return report, nil
}

// evaluateCase runs one gold case through both parsers
func (r *Runner) evaluateCase(ctx context.Context, kase model.EvaluationCase) model.CaseResult {
	result := model.CaseResult{Case: kase}

	filters := r.parser.Parse(kase.Query)
	result.Fuzzy = r.runSearch(ctx, "fuzzy", filters, kase)

	if r.llmProvider != nil {
		run := model.ParserRun{Source: "llm"}
		llmFilters, err := r.llmProvider.Parse(ctx, kase.Query)
		if err != nil {
			run.Error = err.Error()
			run.Metrics = r.calculator.Calculate(nil, kase.ExpectedNames)
		} else {
			run = r.runSearch(ctx, "llm", *llmFilters, kase)
		}
		result.LLM = &run
	}
	return result
}

// runSearch searches with the given filters and scores the returned titles
func (r *Runner) runSearch(ctx context.Context, source string, filters model.ActivityFilters, kase model.EvaluationCase) model.ParserRun {
	run := model.ParserRun{Source: source, Filters: filters}
	activities, err := r.searcher.Search(ctx, filters)
	if err != nil {
		run.Error = err.Error()
	}
	run.Returned = model.Titles(activities)
	run.Metrics = r.calculator.Calculate(run.Returned, kase.ExpectedNames)
	if len(kase.ExpectedFilters) > 0 {
		acc := filterAccuracy(filters, kase.ExpectedFilters)
		run.FilterAccuracy = &acc
	}
	return run
}

// filterAccuracy is the fraction of expected filter categories whose parsed
// value matches exactly
func filterAccuracy(filters model.ActivityFilters, expected map[string]string) float64 {
	matched := 0
	for category, want := range expected {
		if filters.Value(category) == want {
			matched++
		}
	}
	return float64(matched) / float64(len(expected))
}

// aggregate computes mean metrics for one parser across all cases and
// attaches linguistic summaries over the per-case F1 scores.
func (r *Runner) aggregate(source string, results []model.CaseResult, pick func(model.CaseResult) *model.ParserRun) model.Aggregate {
	agg := model.Aggregate{Source: source}
	var f1s []float64
	var accSum float64
	var accCount int
	for _, res := range results {
		run := pick(res)
		if run == nil {
			continue
		}
		agg.Cases++
		agg.Precision += run.Metrics.Precision
		agg.Recall += run.Metrics.Recall
		agg.F1 += run.Metrics.F1
		f1s = append(f1s, run.Metrics.F1)
		if run.FilterAccuracy != nil {
			accSum += *run.FilterAccuracy
			accCount++
		}
	}
	if agg.Cases > 0 {
		n := float64(agg.Cases)
		agg.Precision /= n
		agg.Recall /= n
		agg.F1 /= n
	}
	if accCount > 0 {
		mean := accSum / float64(accCount)
		agg.FilterAccuracy = &mean
	}

	agg.Summaries = summary.GenerateSummaries(
		[]summary.Summarizer{{Name: "well interpreted", Memberships: f1s}},
		fuzzy.StandardQuantifiers(),
		"test queries",
		r.minTruthValue,
	)
	sort.SliceStable(agg.Summaries, func(i, j int) bool {
		return agg.Summaries[i].TruthValue > agg.Summaries[j].TruthValue
	})
	return agg
}
