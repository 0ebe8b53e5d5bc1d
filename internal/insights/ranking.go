package insights

import (
	"sort"

	"behavior-insights/internal/models"
)

// fallbackLabel is rendered when a ranked view has nothing to show;
// dashboards always need at least one row.
const fallbackLabel = "No data"

// TopN returns the first min(n, len(items)) entries of items ordered
// descending by value. The sort is stable: ties keep their original
// relative order. Empty input returns the single "No data" fallback entry
// rather than an empty list. The input slice is not modified.
func TopN(items []models.RankedEntry, n int) []models.RankedEntry {
	if len(items) == 0 {
		return []models.RankedEntry{{Label: fallbackLabel, Value: 0}}
	}
	if n < 0 {
		n = 0
	}

	ranked := make([]models.RankedEntry, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
