// Package mission ranks remediation missions that would raise a vault's
// strength score, using estimated impact per minute of effort.
package mission

import "context"

// Priority is the urgency tier of a mission.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Order returns a sort key (lower = more urgent).
func (p Priority) Order() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ID identifies a mission type.
type ID string

const (
	IDManagementEvidence ID = "management-evidence"
	IDBudgetOwnership    ID = "budget-ownership"
	IDVerifyAssumed      ID = "verify-assumed"
	IDAddMetrics         ID = "add-metrics"
	IDRefreshStale       ID = "refresh-stale"
	IDReachElite         ID = "reach-elite"
)

// Action performs the remediation behind a mission, typically opening an
// editor or navigating somewhere. The prioritizer only passes it through.
type Action func(ctx context.Context) error

// Actions maps mission types to the caller's remediation operations.
type Actions map[ID]Action

// Opportunities are the counts a caller supplies to Prioritize.
type Opportunities struct {
	AssumedNeedingReview   int      `json:"assumed_needing_review" validate:"min=0"`
	WeakPhrasesCount       int      `json:"weak_phrases_count" validate:"min=0"`
	StaleItemsCount        int      `json:"stale_items_count" validate:"min=0"`
	MissingManagementItems int      `json:"missing_management_items" validate:"min=0"`
	MissingBudgetOwnership bool     `json:"missing_budget_ownership"`
	TargetRoles            []string `json:"target_roles,omitempty"`
	CurrentScore           int      `json:"current_score" validate:"min=0,max=100"`
}

// Mission is a ranked, actionable suggestion. It is derived on every call and
// never persisted.
type Mission struct {
	ID            ID       `json:"id"`
	Priority      Priority `json:"priority"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ImpactPoints  float64  `json:"impact_points"`
	EffortMinutes int      `json:"effort_minutes"`
	ROI           float64  `json:"roi"`
	TimeEstimate  string   `json:"time_estimate"`
	ActionLabel   string   `json:"action_label"`
	Action        Action   `json:"-"`
}
