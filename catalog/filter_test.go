package catalog

import (
	"testing"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

func sampleTours() []models.TourSummary {
	return []models.TourSummary{
		{
			ID:         "1",
			Title:      "Simien Mountains Trek",
			Category:   "Trekking & Hiking",
			Region:     "Simien Mountains",
			Difficulty: "Challenging",
			Duration:   "3-7 days",
			Price:      299,
			Tags:       []string{"mountains", "wildlife"},
		},
		{
			ID:          "2",
			Title:       "Lalibela Rock Churches",
			Description: "Visit the famous rock-hewn churches",
			Category:    "Historic Route",
			Region:      "Lalibela",
			Difficulty:  "Easy",
			Duration:    "2 days",
			Price:       150,
			Tags:        []string{"history", "unesco"},
		},
		{
			ID:         "3",
			Title:      "Danakil Depression Expedition",
			Category:   "Adventure",
			Region:     "Danakil Depression",
			Difficulty: "Challenging",
			Duration:   "4 days",
			Price:      450,
			Tags:       []string{"volcano", "salt flats"},
		},
		{
			ID:         "4",
			Title:      "Omo Valley Cultural Immersion",
			Category:   "Cultural Tours",
			Region:     "Omo Valley",
			Difficulty: "Moderate",
			Duration:   "8-14 days",
			Price:      780,
			Tags:       []string{"tribes", "culture"},
		},
		{
			ID:         "5",
			Title:      "Grand Historic Circuit",
			Category:   "Historic Route",
			Region:     "Axum",
			Difficulty: "Moderate",
			Duration:   "15+ days",
			Price:      1200,
			Tags:       []string{"history"},
		},
		{
			ID:         "6",
			Title:      "Mystery Ride",
			Category:   "Adventure",
			Region:     "Addis Ababa",
			Difficulty: "Easy",
			Duration:   "flexible", // no digits
			Price:      99,
		},
	}
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	tours := sampleTours()

	for _, spec := range []FilterSpec{
		{},
		{Category: models.CategoryAllTours},
	} {
		got := Filter(tours, spec)
		if len(got) != len(tours) {
			t.Fatalf("empty spec %+v: got %d tours, want %d", spec, len(got), len(tours))
		}
		for i := range got {
			if got[i].ID != tours[i].ID {
				t.Errorf("order not preserved at %d: got %s, want %s", i, got[i].ID, tours[i].ID)
			}
		}
	}
}

func TestFilterSpecIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want bool
	}{
		{"zero value", FilterSpec{}, true},
		{"all tours sentinel", FilterSpec{Category: models.CategoryAllTours}, true},
		{"whitespace search", FilterSpec{Search: "   "}, true},
		{"category set", FilterSpec{Category: "Trekking & Hiking"}, false},
		{"duration set", FilterSpec{Duration: Duration1To3}, false},
		{"search set", FilterSpec{Search: "unesco"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSingleField(t *testing.T) {
	tours := sampleTours()

	tests := []struct {
		name    string
		spec    FilterSpec
		wantIDs []string
	}{
		{"category", FilterSpec{Category: "Historic Route"}, []string{"2", "5"}},
		{"region", FilterSpec{Region: "Omo Valley"}, []string{"4"}},
		{"difficulty", FilterSpec{Difficulty: "Challenging"}, []string{"1", "3"}},
		{"duration 1-3", FilterSpec{Duration: Duration1To3}, []string{"1", "2"}},
		{"duration 4-7", FilterSpec{Duration: Duration4To7}, []string{"3"}},
		{"duration 8-14", FilterSpec{Duration: Duration8To14}, []string{"4"}},
		{"duration 15+", FilterSpec{Duration: Duration15Plus}, []string{"5"}},
		{"search title", FilterSpec{Search: "simien"}, []string{"1"}},
		{"search tag", FilterSpec{Search: "UNESCO"}, []string{"2"}},
		{"search description", FilterSpec{Search: "rock-hewn"}, []string{"2"}},
		{"search region", FilterSpec{Search: "danakil"}, []string{"3"}},
		{"search whitespace only", FilterSpec{Search: "   "}, []string{"1", "2", "3", "4", "5", "6"}},
		{"combined AND", FilterSpec{Category: "Historic Route", Difficulty: "Moderate"}, []string{"5"}},
		{"no match", FilterSpec{Category: "Wildlife Safari"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tours, tt.spec)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d tours, want %d (%v)", len(got), len(tt.wantIDs), tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3-7 days", 3},
		{"2 days", 2},
		{"8-14 days", 8},
		{"15+ days", 15},
		{"about 10 days", 10},
		{"flexible", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := DurationDays(tt.in); got != tt.want {
			t.Errorf("DurationDays(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDurationBucketExclusive(t *testing.T) {
	// a 10-day tour belongs to "8-14 days" and to no other bucket
	tour := models.TourSummary{ID: "x", Duration: "10 days", Category: "Adventure"}
	buckets := []string{Duration1To3, Duration4To7, Duration8To14, Duration15Plus}

	for _, b := range buckets {
		got := Filter([]models.TourSummary{tour}, FilterSpec{Duration: b})
		want := 0
		if b == Duration8To14 {
			want = 1
		}
		if len(got) != want {
			t.Errorf("bucket %q matched %d tours, want %d", b, len(got), want)
		}
	}
}

func TestMalformedDurationFailsEveryBucket(t *testing.T) {
	tour := models.TourSummary{ID: "x", Duration: "flexible"}
	for _, b := range []string{Duration1To3, Duration4To7, Duration8To14, Duration15Plus} {
		if got := Filter([]models.TourSummary{tour}, FilterSpec{Duration: b}); len(got) != 0 {
			t.Errorf("tour with no digits matched bucket %q", b)
		}
	}
	// but it still passes when no duration filter is active
	if got := Filter([]models.TourSummary{tour}, FilterSpec{}); len(got) != 1 {
		t.Error("tour with no digits should pass an empty spec")
	}
}

func TestPaginate(t *testing.T) {
	tours := make([]models.TourSummary, 0, 13)
	for i := 0; i < 13; i++ {
		tours = append(tours, models.TourSummary{ID: string(rune('a' + i))})
	}

	if got := PageCount(13); got != 3 {
		t.Errorf("PageCount(13) = %d, want 3", got)
	}
	if got := PageCount(0); got != 0 {
		t.Errorf("PageCount(0) = %d, want 0", got)
	}

	if got := Paginate(tours, 1); len(got) != PageSize || got[0].ID != "a" {
		t.Errorf("page 1: got %d items starting at %q", len(got), got[0].ID)
	}
	if got := Paginate(tours, 3); len(got) != 1 {
		t.Errorf("page 3: got %d items, want 1", len(got))
	}
	if got := Paginate(tours, 4); len(got) != 0 {
		t.Errorf("page past end: got %d items, want 0", len(got))
	}
	if got := Paginate(tours, 0); len(got) != PageSize || got[0].ID != "a" {
		t.Errorf("page 0 should clamp to page 1")
	}
}
