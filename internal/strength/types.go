// Package strength computes the vault strength score: a 0-100 measure of how
// complete and verifiable a set of extracted evidence items is.
package strength

const (
	DefaultMinimumScore      = 65
	DefaultMinimumClaims     = 10
	DefaultMinimumCategories = 3

	// EliteThreshold is the score at which a vault is rated elite.
	EliteThreshold = 90
)

// Config overrides the scoring thresholds. A zero MinimumScore is a real
// threshold; a negative one means the default. Claims and categories fall
// back to their defaults when not positive.
type Config struct {
	MinimumScore      int `json:"minimum_score" yaml:"minimum_score"`
	MinimumClaims     int `json:"minimum_claims" yaml:"minimum_claims"`
	MinimumCategories int `json:"minimum_categories" yaml:"minimum_categories"`
}

// DefaultConfig returns the default thresholds (65, 10, 3).
func DefaultConfig() Config {
	return Config{
		MinimumScore:      DefaultMinimumScore,
		MinimumClaims:     DefaultMinimumClaims,
		MinimumCategories: DefaultMinimumCategories,
	}
}

// WithDefaults fills unset fields with the defaults.
func (c Config) WithDefaults() Config {
	if c.MinimumScore < 0 {
		c.MinimumScore = DefaultMinimumScore
	}
	if c.MinimumClaims <= 0 {
		c.MinimumClaims = DefaultMinimumClaims
	}
	if c.MinimumCategories <= 0 {
		c.MinimumCategories = DefaultMinimumCategories
	}
	return c
}

// Breakdown holds the four weighted sub-scores, each in [0,100].
type Breakdown struct {
	AchievementDensity int `json:"achievement_density"`
	CategoryDiversity  int `json:"category_diversity"`
	ConfidenceQuality  int `json:"confidence_quality"`
	EvidenceDepth      int `json:"evidence_depth"`
}

// Gap flags a critical category with too little evidence.
type Gap struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// Result is the output of Analyze.
type Result struct {
	OverallScore     int       `json:"overall_score"`
	IsStrongEnough   bool      `json:"is_strong_enough"`
	Breakdown        Breakdown `json:"breakdown"`
	TotalItems       int       `json:"total_items"`
	MetricsCount     int       `json:"metrics_count"`
	HighConfidence   int       `json:"high_confidence_count"`
	UniqueCategories int       `json:"unique_categories"`
	Gaps             []Gap     `json:"gaps"`
	Recommendations  []string  `json:"recommendations"`
}

// Level is a coarse band over the overall score.
type Level string

const (
	LevelDeveloping Level = "developing"
	LevelSolid      Level = "solid"
	LevelStrong     Level = "strong"
	LevelElite      Level = "elite"
)

// LevelFor bands a score: elite >= 90, strong >= 75, solid >= 50.
func LevelFor(score int) Level {
	switch {
	case score >= EliteThreshold:
		return LevelElite
	case score >= 75:
		return LevelStrong
	case score >= 50:
		return LevelSolid
	default:
		return LevelDeveloping
	}
}
