package catalog_cache

import (
	"testing"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

func TestTourListCacheRoundTrip(t *testing.T) {
	Invalidate()

	if _, ok := GetTours(); ok {
		t.Fatal("expected a cold cache to miss")
	}

	tours := []models.TourSummary{
		{ID: "1", Title: "Simien Mountains Trek"},
		{ID: "2", Title: "Lalibela Rock Churches"},
	}
	SetTours(tours)

	got, ok := GetTours()
	if !ok {
		t.Fatal("expected a hit after SetTours")
	}
	if len(got) != 2 || got[0].Title != "Simien Mountains Trek" {
		t.Fatalf("unexpected cached list: %+v", got)
	}
}

func TestAvailableCacheRoundTrip(t *testing.T) {
	Invalidate()

	if _, ok := GetAvailable(); ok {
		t.Fatal("expected a cold cache to miss")
	}

	SetAvailable([]models.AvailableTour{{ID: "1", Name: "Simien Mountains Trek", Price: 299}})

	got, ok := GetAvailable()
	if !ok {
		t.Fatal("expected a hit after SetAvailable")
	}
	if len(got) != 1 || got[0].Price != 299 {
		t.Fatalf("unexpected cached list: %+v", got)
	}
}

func TestInvalidateClearsBothCaches(t *testing.T) {
	SetTours([]models.TourSummary{{ID: "1"}})
	SetAvailable([]models.AvailableTour{{ID: "1"}})

	Invalidate()

	if _, ok := GetTours(); ok {
		t.Error("tour list survived Invalidate")
	}
	if _, ok := GetAvailable(); ok {
		t.Error("available list survived Invalidate")
	}
}
