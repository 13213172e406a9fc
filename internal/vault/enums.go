package vault

// Category classifies an evidence item.
type Category string

const (
	CategoryMetric         Category = "metric"
	CategorySkill          Category = "skill"
	CategoryResponsibility Category = "responsibility"
	CategoryLeadership     Category = "leadership"
	CategoryTool           Category = "tool"
	CategoryDomain         Category = "domain"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryMetric, CategorySkill, CategoryResponsibility,
	CategoryLeadership, CategoryTool, CategoryDomain,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMetric, CategorySkill, CategoryResponsibility,
		CategoryLeadership, CategoryTool, CategoryDomain:
		return true
	}
	return false
}

// QualityTier records how strongly an item has been verified.
type QualityTier string

const (
	TierAssumed QualityTier = "assumed"
	TierBronze  QualityTier = "bronze"
	TierSilver  QualityTier = "silver"
	TierGold    QualityTier = "gold"
)

// Tiers lists the tiers from weakest to strongest.
var Tiers = []QualityTier{TierAssumed, TierBronze, TierSilver, TierGold}

func (t QualityTier) Valid() bool {
	switch t {
	case TierAssumed, TierBronze, TierSilver, TierGold:
		return true
	}
	return false
}

// Rank orders tiers; higher is stronger. Unknown tiers rank below assumed.
func (t QualityTier) Rank() int {
	switch t {
	case TierGold:
		return 3
	case TierSilver:
		return 2
	case TierBronze:
		return 1
	case TierAssumed:
		return 0
	default:
		return -1
	}
}

// Weight is the contribution of an item of this tier to a verified score.
func (t QualityTier) Weight() float64 {
	switch t {
	case TierGold:
		return 1.0
	case TierSilver:
		return 0.8
	case TierBronze:
		return 0.6
	case TierAssumed:
		return 0.4
	default:
		return 0
	}
}

// Confidence is the extraction confidence, independent of tier.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}
