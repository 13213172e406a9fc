package mission

import (
	"time"

	"github.com/dshills/careeriq/internal/vault"
)

// requiredLeadershipItems is how many leadership items a senior candidate needs.
const requiredLeadershipItems = 2

// achievementCategories hold claims that should carry a measurable result.
var achievementCategories = map[vault.Category]bool{
	vault.CategoryMetric:         true,
	vault.CategoryLeadership:     true,
	vault.CategoryResponsibility: true,
}

// Collect derives the opportunity counts from a snapshot of items.
// targetRoles and currentScore are passed through unchanged.
func Collect(items []vault.Item, now time.Time, targetRoles []string, currentScore int) Opportunities {
	o := Opportunities{
		TargetRoles:            targetRoles,
		CurrentScore:           currentScore,
		MissingBudgetOwnership: true,
	}

	leadership := 0
	for _, it := range items {
		if it.Tier == vault.TierAssumed {
			o.AssumedNeedingReview++
		}
		if achievementCategories[it.Category] && !it.Quantified() {
			o.WeakPhrasesCount++
		}
		if vault.IsStale(it, now) {
			o.StaleItemsCount++
		}
		if it.Category == vault.CategoryLeadership {
			leadership++
		}
		if vault.MentionsBudget(it.Text) {
			o.MissingBudgetOwnership = false
		}
	}

	if leadership < requiredLeadershipItems {
		o.MissingManagementItems = requiredLeadershipItems - leadership
	}
	return o
}
