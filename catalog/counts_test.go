package catalog

import (
	"testing"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

func TestCategoryCounts(t *testing.T) {
	tours := sampleTours()
	counts := CategoryCounts(tours)

	if counts[models.CategoryAllTours] != len(tours) {
		t.Errorf("All Tours = %d, want %d", counts[models.CategoryAllTours], len(tours))
	}

	sum := 0
	for cat, n := range counts {
		if cat == models.CategoryAllTours {
			continue
		}
		sum += n
	}
	if sum != len(tours) {
		t.Errorf("per-category sum = %d, want %d", sum, len(tours))
	}

	if counts["Historic Route"] != 2 {
		t.Errorf("Historic Route = %d, want 2", counts["Historic Route"])
	}
}

func TestCategoryCountsIgnoreActiveFilter(t *testing.T) {
	tours := sampleTours()
	filtered := Filter(tours, FilterSpec{Category: "Adventure"})

	// counts are computed over the unfiltered list, so the two results
	// must differ whenever the filter removed anything
	if len(filtered) == len(tours) {
		t.Fatal("fixture should have non-Adventure tours")
	}
	counts := CategoryCounts(tours)
	if counts[models.CategoryAllTours] != len(tours) {
		t.Errorf("counts changed with filter: got %d, want %d", counts[models.CategoryAllTours], len(tours))
	}
}

func TestCategoryCountsEmpty(t *testing.T) {
	counts := CategoryCounts(nil)
	if counts[models.CategoryAllTours] != 0 {
		t.Errorf("All Tours on empty catalog = %d, want 0", counts[models.CategoryAllTours])
	}
}
