// Package report assembles the strength score, statistics, and ranked
// missions for one vault snapshot.
package report

import (
	"time"

	"github.com/dshills/careeriq/internal/mission"
	"github.com/dshills/careeriq/internal/snapshot"
	"github.com/dshills/careeriq/internal/strength"
	"github.com/dshills/careeriq/internal/vault"
)

const (
	DefaultQuickWinMinutes = 15
	DefaultQuickWins       = 3
)

// Report is the top-level output object.
type Report struct {
	Tool        string            `json:"tool"`
	Version     string            `json:"version"`
	Input       Input             `json:"input"`
	Thresholds  strength.Config   `json:"thresholds"`
	Strength    strength.Result   `json:"strength"`
	Level       strength.Level    `json:"level"`
	Stats       vault.Stats       `json:"stats"`
	Missions    []mission.Mission `json:"missions"`
	QuickWins   []mission.Mission `json:"quick_wins,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Input describes the snapshot and settings used for the report.
type Input struct {
	Source      string   `json:"source,omitempty"`
	Hash        string   `json:"hash,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
	Profile     string   `json:"profile,omitempty"`
	TargetRoles []string `json:"target_roles,omitempty"`
}

// Options configures Build.
type Options struct {
	Tool    string
	Version string
	Profile string

	// Thresholds nil means strength.DefaultConfig().
	Thresholds *strength.Config
	// TargetRoles replaces the snapshot's roles when non-empty.
	TargetRoles []string
	// Now anchors staleness. Zero means time.Now().
	Now time.Time

	MaxMissions     int
	QuickWinMinutes int
	Actions         mission.Actions
}

// Build scores the snapshot and ranks missions against the same items, so
// both views reflect one consistent state.
func Build(s *snapshot.Snapshot, opts Options) *Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	roles := s.TargetRoles
	if len(opts.TargetRoles) > 0 {
		roles = opts.TargetRoles
	}
	quickWinMinutes := opts.QuickWinMinutes
	if quickWinMinutes <= 0 {
		quickWinMinutes = DefaultQuickWinMinutes
	}

	thresholds := strength.DefaultConfig()
	if opts.Thresholds != nil {
		thresholds = opts.Thresholds.WithDefaults()
	}
	result := strength.Analyze(s.Items, thresholds)
	opps := mission.Collect(s.Items, now, roles, result.OverallScore)
	missions := mission.Prioritize(opps, opts.Actions)

	return &Report{
		Tool:    opts.Tool,
		Version: opts.Version,
		Input: Input{
			Source:      s.Source,
			Hash:        s.Hash,
			UserID:      s.UserID,
			Profile:     opts.Profile,
			TargetRoles: roles,
		},
		Thresholds:  thresholds,
		Strength:    result,
		Level:       strength.LevelFor(result.OverallScore),
		Stats:       vault.Summarize(s.Items, now),
		Missions:    mission.Limit(missions, opts.MaxMissions),
		QuickWins:   mission.QuickWins(missions, quickWinMinutes, DefaultQuickWins),
		GeneratedAt: now.UTC(),
	}
}
