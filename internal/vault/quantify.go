package vault

import "regexp"

// quantifiers match claims that carry a measurable result. Order is
// irrelevant; any single match makes a claim quantified.
var quantifiers []*regexp.Regexp

func init() {
	raw := []string{
		// Percentages: 40%, 12.5 %
		`\d+(?:\.\d+)?\s*%`,
		// Currency with optional magnitude suffix: $2M, $1.5 B, $250,000
		`\$\s?\d[\d,]*(?:\.\d+)?\s*[KMB]?\b`,
		// Counted people: 12 engineers, 5,000+ customers
		`\b\d[\d,]*\+?\s*(?:people|persons|employees|engineers|developers|staff|team members|direct reports|reports|customers|clients|users|members|stakeholders)\b`,
		// Multipliers: 3x, 10X
		`\b\d+(?:\.\d+)?x\b`,
		// Written-out magnitudes
		`\b(?:hundreds|thousands|millions|billions|thousand|million|billion)\b`,
		// Project and initiative counts
		`\b\d+\+?\s*(?:projects?|initiatives?|programs?|products?|launches|releases|migrations)\b`,
		// Durations
		`\b\d+\+?\s*(?:years?|yrs?|months?|mos?)\b`,
		// Outcome verbs
		`\b(?:increased|decreased|improved|reduced|grew|saved)\b`,
	}
	for _, r := range raw {
		quantifiers = append(quantifiers, regexp.MustCompile(`(?i)`+r))
	}
}

// HasQuantifiedResult reports whether text contains a percentage, currency
// amount, head count, multiplier, magnitude word, project count, duration,
// or a strong outcome verb.
func HasQuantifiedResult(text string) bool {
	for _, q := range quantifiers {
		if q.MatchString(text) {
			return true
		}
	}
	return false
}

// budgetOwnership matches claims of budget or P&L responsibility.
var budgetOwnership = regexp.MustCompile(`(?i)\b(?:budgets?|p&l|p and l|profit and loss|opex|capex|spend)\b`)

// MentionsBudget reports whether text claims ownership of a budget or P&L.
func MentionsBudget(text string) bool {
	return budgetOwnership.MatchString(text)
}
