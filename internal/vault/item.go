// Package vault defines the career vault data model: evidence items, their
// quality tiers, and the quantification and staleness rules applied to them.
package vault

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is a single extracted claim such as an achievement, skill, or competency.
type Item struct {
	ID          string      `json:"id" yaml:"id"`
	Category    Category    `json:"category" yaml:"category" validate:"required,oneof=metric skill responsibility leadership tool domain"`
	Text        string      `json:"text" yaml:"text" validate:"required"`
	Tier        QualityTier `json:"tier" yaml:"tier" validate:"required,oneof=assumed bronze silver gold"`
	Confidence  Confidence  `json:"confidence" yaml:"confidence" validate:"required,oneof=high medium low"`
	LastUpdated time.Time   `json:"last_updated" yaml:"last_updated"`
}

// DateLayout is the date-only form accepted for LastUpdated.
const DateLayout = "2006-01-02"

// UnmarshalJSON accepts last_updated as RFC 3339 or a bare date, the same
// forms the YAML decoder takes.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		*plain
		LastUpdated *string `json:"last_updated"`
	}{plain: (*plain)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	it.LastUpdated = time.Time{}
	if aux.LastUpdated == nil || *aux.LastUpdated == "" {
		return nil
	}
	t, err := ParseTimestamp(*aux.LastUpdated)
	if err != nil {
		return err
	}
	it.LastUpdated = t
	return nil
}

// ParseTimestamp parses an RFC 3339 timestamp or a YYYY-MM-DD date (UTC).
func ParseTimestamp(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("last_updated %q: want RFC 3339 or YYYY-MM-DD", v)
	}
	return t, nil
}

// Quantified reports whether the item text contains a measurable result.
func (it Item) Quantified() bool {
	return HasQuantifiedResult(it.Text)
}

// StaleAfterMonths is the age at which an item is considered stale.
const StaleAfterMonths = 6

// IsStale reports whether the item was last updated more than
// StaleAfterMonths before now. Items without a timestamp are never stale.
func IsStale(it Item, now time.Time) bool {
	if it.LastUpdated.IsZero() {
		return false
	}
	return it.LastUpdated.Before(now.AddDate(0, -StaleAfterMonths, 0))
}

// Stats summarizes a collection of items.
type Stats struct {
	Total      int                 `json:"total"`
	ByTier     map[QualityTier]int `json:"by_tier"`
	ByCategory map[Category]int    `json:"by_category"`
	Quantified int                 `json:"quantified"`
	Stale      int                 `json:"stale"`
}

// Summarize counts items by tier and category, plus quantified and stale items.
func Summarize(items []Item, now time.Time) Stats {
	s := Stats{
		Total:      len(items),
		ByTier:     make(map[QualityTier]int),
		ByCategory: make(map[Category]int),
	}
	for _, it := range items {
		s.ByTier[it.Tier]++
		s.ByCategory[it.Category]++
		if it.Quantified() {
			s.Quantified++
		}
		if IsStale(it, now) {
			s.Stale++
		}
	}
	return s
}
