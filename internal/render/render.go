// Package render produces Markdown output from a report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/careeriq/internal/mission"
	"github.com/dshills/careeriq/internal/report"
	"github.com/dshills/careeriq/internal/vault"
)

var priorityHeadings = []struct {
	priority mission.Priority
	heading  string
}{
	{mission.PriorityCritical, "Critical"},
	{mission.PriorityHigh, "High Priority"},
	{mission.PriorityMedium, "Medium Priority"},
	{mission.PriorityLow, "Low Priority"},
}

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder
	s := r.Strength

	b.WriteString("# Career Vault Strength\n\n")
	fmt.Fprintf(&b, "**Score:** %d / 100 (%s)\n", s.OverallScore, r.Level)
	if s.IsStrongEnough {
		fmt.Fprintf(&b, "**Status:** ready (minimum %d)\n", r.Thresholds.MinimumScore)
	} else {
		fmt.Fprintf(&b, "**Status:** needs work (minimum %d)\n", r.Thresholds.MinimumScore)
	}
	fmt.Fprintf(&b, "**Items:** %d total, %d quantified, %d high confidence, %d stale\n\n",
		s.TotalItems, s.MetricsCount, s.HighConfidence, r.Stats.Stale)

	if s.TotalItems > 0 {
		b.WriteString("## Breakdown\n\n")
		b.WriteString("| Component | Score | Weight |\n")
		b.WriteString("|---|---|---|\n")
		fmt.Fprintf(&b, "| Achievement density | %d | 35%% |\n", s.Breakdown.AchievementDensity)
		fmt.Fprintf(&b, "| Category diversity | %d | 20%% |\n", s.Breakdown.CategoryDiversity)
		fmt.Fprintf(&b, "| Confidence quality | %d | 25%% |\n", s.Breakdown.ConfidenceQuality)
		fmt.Fprintf(&b, "| Evidence depth | %d | 20%% |\n\n", s.Breakdown.EvidenceDepth)

		b.WriteString("## Verification\n\n")
		for _, tier := range vault.Tiers {
			fmt.Fprintf(&b, "- %s: %d\n", tier, r.Stats.ByTier[tier])
		}
		b.WriteString("\n")
	}

	if len(s.Gaps) > 0 {
		b.WriteString("## Gaps\n\n")
		for _, g := range s.Gaps {
			fmt.Fprintf(&b, "- **%s**: %s. %s\n", g.Category, g.Issue, g.Suggestion)
		}
		b.WriteString("\n")
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range s.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(r.QuickWins) > 0 {
		b.WriteString("## Quick Wins\n\n")
		for _, m := range r.QuickWins {
			fmt.Fprintf(&b, "- %s (%s, +%s pts)\n", m.Title, m.TimeEstimate, points(m.ImpactPoints))
		}
		b.WriteString("\n")
	}

	if len(r.Missions) == 0 {
		b.WriteString("No missions: nothing to improve right now.\n\n")
		return b.String()
	}

	b.WriteString("## Missions\n\n")
	for _, ph := range priorityHeadings {
		missions := filterMissions(r.Missions, ph.priority)
		if len(missions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", ph.heading)
		for _, m := range missions {
			renderMission(&b, m)
		}
	}
	return b.String()
}

func filterMissions(missions []mission.Mission, p mission.Priority) []mission.Mission {
	var result []mission.Mission
	for _, m := range missions {
		if m.Priority == p {
			result = append(result, m)
		}
	}
	return result
}

func renderMission(b *strings.Builder, m mission.Mission) {
	fmt.Fprintf(b, "#### %s\n\n", m.Title)
	fmt.Fprintf(b, "%s\n\n", m.Description)
	fmt.Fprintf(b, "**Impact:** +%s pts | **Time:** %s | **ROI:** %.1f\n\n", points(m.ImpactPoints), m.TimeEstimate, m.ROI)
	fmt.Fprintf(b, "**Next step:** %s\n\n", m.ActionLabel)
}

// points prints whole numbers without a decimal.
func points(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
