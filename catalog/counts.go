package catalog

import "github.com/Davedaz23/Phoenix-Tour-sub000/models"

// CategoryCounts tallies, per category, how many tours in the UNFILTERED
// list belong to it, plus an "All Tours" aggregate equal to the total.
// The sidebar badges read this regardless of the active filter.
func CategoryCounts(tours []models.TourSummary) map[string]int {
	counts := make(map[string]int, len(models.TourCategories)+1)
	counts[models.CategoryAllTours] = len(tours)
	for _, t := range tours {
		counts[t.Category]++
	}
	return counts
}
