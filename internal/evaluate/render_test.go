package evaluate

import (
	"strings"
	"testing"

	"github.com/mzurbriggen/alpinequery/internal/metrics"
	"github.com/mzurbriggen/alpinequery/internal/model"
)

func TestRender(t *testing.T) {
	report := &model.ComparisonReport{
		Results: []model.CaseResult{
			{
				Case: model.EvaluationCase{Query: "easy hike"},
				Fuzzy: model.ParserRun{
					Source: "fuzzy",
					Filters: model.ActivityFilters{
						Experience: "hiking",
						Difficulty: "easy",
						Confidence: 0.72,
					},
					Metrics: metrics.Result{Precision: 1, Recall: 0.5, F1: 2.0 / 3.0},
				},
				LLM: &model.ParserRun{Source: "llm", Error: "backend unreachable"},
			},
		},
		Fuzzy: model.Aggregate{Source: "fuzzy", Cases: 1, Precision: 1, Recall: 0.5, F1: 2.0 / 3.0},
		LLM:   &model.Aggregate{Source: "llm", Cases: 1},
	}

	var b strings.Builder
	Render(&b, report)
	out := b.String()

	for _, want := range []string{
		`Case 1: "easy hike"`,
		"experience=hiking difficulty=easy",
		"confidence=0.72",
		"precision=1.000 recall=0.500 f1=0.667",
		"error: backend unreachable",
		"fuzzy parser over 1 cases",
		"Verdict: fuzzy interpreter ahead",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_Unmeasurable(t *testing.T) {
	report := &model.ComparisonReport{
		Results: []model.CaseResult{
			{
				Case: model.EvaluationCase{Query: "anything"},
				Fuzzy: model.ParserRun{
					Source:  "fuzzy",
					Metrics: metrics.Result{Unmeasurable: true, Note: "no expected names provided; comparison is undefined"},
				},
			},
		},
		Fuzzy: model.Aggregate{Source: "fuzzy", Cases: 1},
	}

	var b strings.Builder
	Render(&b, report)
	out := b.String()

	if !strings.Contains(out, "no expected names provided") {
		t.Errorf("unmeasurable note missing:\n%s", out)
	}
	if strings.Contains(out, "Verdict") {
		t.Error("no verdict expected without an LLM aggregate")
	}
}
