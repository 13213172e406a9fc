package mission

import "sort"

// SortMissions sorts by priority (critical first), then ROI descending.
// The sort is stable, so equal missions keep their construction order.
func SortMissions(missions []Mission) {
	sort.SliceStable(missions, func(i, j int) bool {
		oi := missions[i].Priority.Order()
		oj := missions[j].Priority.Order()
		if oi != oj {
			return oi < oj
		}
		return missions[i].ROI > missions[j].ROI
	})
}

// Limit caps the list at n missions. n <= 0 leaves it unchanged.
func Limit(missions []Mission, n int) []Mission {
	if n <= 0 || len(missions) <= n {
		return missions
	}
	return missions[:n]
}

// QuickWins returns up to limit missions taking at most maxEffort minutes,
// highest ROI first regardless of priority.
func QuickWins(missions []Mission, maxEffort, limit int) []Mission {
	var wins []Mission
	for _, m := range missions {
		if m.EffortMinutes <= maxEffort {
			wins = append(wins, m)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].ROI > wins[j].ROI
	})
	return Limit(wins, limit)
}
