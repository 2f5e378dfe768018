package catalog

import (
	"strings"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

// PageSize is the fixed storefront page size.
const PageSize = 6

// Duration buckets offered by the storefront sidebar. Boundaries are
// inclusive on both ends; "15+ days" is open-ended.
const (
	Duration1To3   = "1-3 days"
	Duration4To7   = "4-7 days"
	Duration8To14  = "8-14 days"
	Duration15Plus = "15+ days"
)

// FilterSpec is the five-dimension predicate applied to the tour catalog.
// An empty string means "match all" for that dimension; all present
// dimensions are ANDed together.
type FilterSpec struct {
	Category   string
	Region     string
	Difficulty string
	Duration   string
	Search     string
}

// IsEmpty reports whether every dimension is inactive.
func (s FilterSpec) IsEmpty() bool {
	return (s.Category == "" || s.Category == models.CategoryAllTours) &&
		s.Region == "" && s.Difficulty == "" && s.Duration == "" &&
		strings.TrimSpace(s.Search) == ""
}

// Filter returns the tours matching every active dimension of spec,
// preserving the original relative order. It never errors: malformed
// duration strings simply fail the duration bucket.
func Filter(tours []models.TourSummary, spec FilterSpec) []models.TourSummary {
	if spec.IsEmpty() {
		return tours
	}
	result := make([]models.TourSummary, 0, len(tours))
	for _, t := range tours {
		if matches(t, spec) {
			result = append(result, t)
		}
	}
	return result
}

// matches applies the predicates in a fixed order, short-circuiting on
// the first failing one.
func matches(t models.TourSummary, spec FilterSpec) bool {
	if spec.Category != "" && spec.Category != models.CategoryAllTours && t.Category != spec.Category {
		return false
	}
	if spec.Region != "" && t.Region != spec.Region {
		return false
	}
	if spec.Difficulty != "" && t.Difficulty != spec.Difficulty {
		return false
	}
	if spec.Duration != "" && !bucketContains(spec.Duration, DurationDays(t.Duration)) {
		return false
	}
	if q := strings.TrimSpace(spec.Search); q != "" && !matchesSearch(t, q) {
		return false
	}
	return true
}

// DurationDays extracts the first maximal digit run from a duration
// string ("3-7 days" -> 3). Returns 0 when no digits are present, which
// fails every bucket.
func DurationDays(duration string) int {
	days := 0
	started := false
	for _, r := range duration {
		if r >= '0' && r <= '9' {
			started = true
			days = days*10 + int(r-'0')
			continue
		}
		if started {
			break
		}
	}
	return days
}

func bucketContains(bucket string, days int) bool {
	switch bucket {
	case Duration1To3:
		return days >= 1 && days <= 3
	case Duration4To7:
		return days >= 4 && days <= 7
	case Duration8To14:
		return days >= 8 && days <= 14
	case Duration15Plus:
		return days >= 15
	default:
		// unknown bucket matches nothing
		return false
	}
}

// matchesSearch does a case-insensitive substring test against title,
// description, tags, category and region. Any single hit passes.
func matchesSearch(t models.TourSummary, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.Category), q) ||
		strings.Contains(strings.ToLower(t.Region), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// PageCount returns ceil(total/PageSize); an empty list has 0 pages.
func PageCount(total int) int {
	return (total + PageSize - 1) / PageSize
}

// Paginate slices out the requested 1-based page. Pages below 1 clamp to
// the first page; pages past the end return an empty slice.
func Paginate(tours []models.TourSummary, page int) []models.TourSummary {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(tours) {
		return []models.TourSummary{}
	}
	end := start + PageSize
	if end > len(tours) {
		end = len(tours)
	}
	return tours[start:end]
}
