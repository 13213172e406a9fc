package mission

import (
	"fmt"
	"math"
	"regexp"

	"github.com/dshills/careeriq/internal/strength"
)

var (
	seniorRolePattern = regexp.MustCompile(`(?i)\b(vp|vice president|director|chief|ceo|cfo|cto)\b`)
	cSuitePattern     = regexp.MustCompile(`(?i)\b(ceo|cfo|cto|coo|chief)\b`)
)

const (
	// strongThreshold is the score at which the elite roll-up mission appears.
	strongThreshold = 75

	// verifyImpactPerItem is the score gained by promoting one assumed item
	// (weight 0.4) to silver (weight 0.8).
	verifyImpactPerItem = 0.67
	metricImpactPerItem = 0.75
	staleImpactPerItem  = 0.27

	verifyHighAbove  = 20
	staleMediumAbove = 50
)

// Prioritize builds the missions triggered by o and returns them sorted by
// priority, then ROI. Actions are attached by ID when present in actions;
// nil actions are fine.
func Prioritize(o Opportunities, actions Actions) []Mission {
	missions := []Mission{}
	add := func(m Mission) {
		m.ROI = ROI(m.ImpactPoints, m.EffortMinutes)
		m.TimeEstimate = FormatEffort(m.EffortMinutes)
		m.Action = actions[m.ID]
		missions = append(missions, m)
	}

	if o.MissingManagementItems > 0 && anyMatch(o.TargetRoles, seniorRolePattern) {
		add(Mission{
			ID:            IDManagementEvidence,
			Priority:      PriorityCritical,
			Title:         "Document your management experience",
			Description:   fmt.Sprintf("Senior roles expect evidence of leading people. Add %d leadership item(s): team size, hiring, and who reported to you.", o.MissingManagementItems),
			ImpactPoints:  50,
			EffortMinutes: 15,
			ActionLabel:   "Add leadership evidence",
		})
	}

	if o.MissingBudgetOwnership && anyMatch(o.TargetRoles, cSuitePattern) {
		add(Mission{
			ID:            IDBudgetOwnership,
			Priority:      PriorityCritical,
			Title:         "Show budget ownership",
			Description:   "Executive roles are screened for P&L and budget responsibility. Add the largest budget you owned and what you did with it.",
			ImpactPoints:  50,
			EffortMinutes: 10,
			ActionLabel:   "Add budget evidence",
		})
	}

	if n := o.AssumedNeedingReview; n > 0 {
		p := PriorityMedium
		if n > verifyHighAbove {
			p = PriorityHigh
		}
		add(Mission{
			ID:            IDVerifyAssumed,
			Priority:      p,
			Title:         fmt.Sprintf("Verify %d assumed item(s)", n),
			Description:   "These items were inferred automatically. Confirming them promotes them to silver and raises your score.",
			ImpactPoints:  math.Round(float64(n) * verifyImpactPerItem),
			EffortMinutes: int(math.Ceil(float64(n) / 2)),
			ActionLabel:   "Start reviewing",
		})
	}

	if n := o.WeakPhrasesCount; n > 0 {
		add(Mission{
			ID:            IDAddMetrics,
			Priority:      PriorityHigh,
			Title:         fmt.Sprintf("Add metrics to %d achievement(s)", n),
			Description:   "Achievements without numbers read as duties. Add a percentage, dollar amount, or head count to each.",
			ImpactPoints:  math.Round(float64(n) * metricImpactPerItem),
			EffortMinutes: n * 2,
			ActionLabel:   "Strengthen achievements",
		})
	}

	if n := o.StaleItemsCount; n > 0 {
		p := PriorityLow
		if n > staleMediumAbove {
			p = PriorityMedium
		}
		add(Mission{
			ID:            IDRefreshStale,
			Priority:      p,
			Title:         fmt.Sprintf("Refresh %d stale item(s)", n),
			Description:   "These items have not been touched in over six months. Confirm they are still accurate.",
			ImpactPoints:  math.Round(float64(n) * staleImpactPerItem),
			EffortMinutes: 5,
			ActionLabel:   "Review stale items",
		})
	}

	if s := o.CurrentScore; s >= strongThreshold && s < strength.EliteThreshold {
		needed := strength.EliteThreshold - s
		add(Mission{
			ID:            IDReachElite,
			Priority:      PriorityLow,
			Title:         fmt.Sprintf("Reach Elite: %d points to go", needed),
			Description:   "Completing the missions above is the fastest route to an elite vault.",
			ImpactPoints:  float64(needed) * 0.5,
			EffortMinutes: needed * 2,
			ActionLabel:   "See the plan",
		})
	}

	SortMissions(missions)
	return missions
}

// ROI divides impact by effort normalized to [0.1, 1], where 60 minutes is
// maximal effort.
func ROI(impact float64, effortMinutes int) float64 {
	effort := math.Max(math.Min(float64(effortMinutes)/60, 1), 0.1)
	return impact / effort
}

func anyMatch(roles []string, re *regexp.Regexp) bool {
	for _, r := range roles {
		if re.MatchString(r) {
			return true
		}
	}
	return false
}
