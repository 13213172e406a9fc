package strength

import (
	"fmt"
	"math"

	"github.com/dshills/careeriq/internal/vault"
)

const (
	achievementWeight = 0.35
	diversityWeight   = 0.20
	confidenceWeight  = 0.25
	depthWeight       = 0.20

	// diversityTarget is the number of distinct categories that earns full diversity.
	diversityTarget = 6
	// densityBoost lets a vault reach full density with two thirds of items quantified.
	densityBoost = 1.5
	// gapMinimum is the item count below which a critical category is a gap.
	gapMinimum = 2
)

// criticalCategories must each hold at least gapMinimum items.
var criticalCategories = []vault.Category{
	vault.CategoryMetric,
	vault.CategorySkill,
	vault.CategoryResponsibility,
}

var gapSuggestions = map[vault.Category]string{
	vault.CategoryMetric:         "Add achievements with measurable outcomes: percentages, revenue, cost savings, or team size.",
	vault.CategorySkill:          "List the technical and domain skills you use day to day, with where you applied them.",
	vault.CategoryResponsibility: "Describe the scope you owned: systems, teams, budgets, or customers you were accountable for.",
}

const (
	emptyGapIssue       = "No evidence extracted"
	emptyGapSuggestion  = "Upload a resume or answer interview questions so achievements, skills, and responsibilities can be extracted."
	emptyRecommendation = "Start building your vault: upload a resume or complete the interview to extract evidence."
)

// Analyze scores a snapshot of evidence items. It never fails: an empty
// collection yields a zero score with a single "all" gap.
func Analyze(items []vault.Item, cfg Config) Result {
	cfg = cfg.WithDefaults()

	if len(items) == 0 {
		return Result{
			OverallScore:   0,
			IsStrongEnough: false,
			Gaps: []Gap{{
				Category:   "all",
				Count:      0,
				Issue:      emptyGapIssue,
				Suggestion: emptyGapSuggestion,
			}},
			Recommendations: []string{emptyRecommendation},
		}
	}

	total := len(items)
	counts := make(map[string]int)
	var metrics, high int
	for _, it := range items {
		counts[string(it.Category)]++
		if it.Quantified() {
			metrics++
		}
		if it.Confidence == vault.ConfidenceHigh {
			high++
		}
	}
	unique := len(counts)

	b := Breakdown{
		AchievementDensity: clampRound(float64(metrics) / float64(total) * 100 * densityBoost),
		CategoryDiversity:  clampRound(float64(unique) / diversityTarget * 100),
		ConfidenceQuality:  clampRound(float64(high) / float64(total) * 100),
		EvidenceDepth:      clampRound(float64(total) / float64(cfg.MinimumClaims) * 100),
	}
	overall := ComputeScore(b)

	return Result{
		OverallScore:     overall,
		IsStrongEnough:   overall >= cfg.MinimumScore,
		Breakdown:        b,
		TotalItems:       total,
		MetricsCount:     metrics,
		HighConfidence:   high,
		UniqueCategories: unique,
		Gaps:             findGaps(counts),
		Recommendations:  recommend(b, unique, total, cfg),
	}
}

// ComputeScore combines the sub-scores into the overall 0-100 score.
func ComputeScore(b Breakdown) int {
	return clampRound(achievementWeight*float64(b.AchievementDensity) +
		diversityWeight*float64(b.CategoryDiversity) +
		confidenceWeight*float64(b.ConfidenceQuality) +
		depthWeight*float64(b.EvidenceDepth))
}

func findGaps(counts map[string]int) []Gap {
	gaps := []Gap{}
	for _, c := range criticalCategories {
		n := counts[string(c)]
		if n >= gapMinimum {
			continue
		}
		gaps = append(gaps, Gap{
			Category:   string(c),
			Count:      n,
			Issue:      fmt.Sprintf("Only %d %s item(s); at least %d needed", n, c, gapMinimum),
			Suggestion: gapSuggestions[c],
		})
	}
	return gaps
}

func recommend(b Breakdown, unique, total int, cfg Config) []string {
	recs := []string{}
	if b.AchievementDensity < 30 {
		recs = append(recs, "Add more quantified achievements: include numbers, percentages, or dollar amounts that show impact.")
	}
	if b.ConfidenceQuality < 50 {
		recs = append(recs, "Review and verify your extracted claims so more of them are high confidence.")
	}
	if unique < cfg.MinimumCategories {
		recs = append(recs, fmt.Sprintf("Broaden your evidence: cover at least %d categories (currently %d).", cfg.MinimumCategories, unique))
	}
	if total < cfg.MinimumClaims {
		recs = append(recs, fmt.Sprintf("Add %d more items to reach the minimum of %d.", cfg.MinimumClaims-total, cfg.MinimumClaims))
	}
	return recs
}

func clampRound(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}
