package mission

import "fmt"

// FormatEffort renders a minute count as a short human estimate.
func FormatEffort(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("~%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("~%d hr", h)
	}
	return fmt.Sprintf("~%d hr %d min", h, m)
}
