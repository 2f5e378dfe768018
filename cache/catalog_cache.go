package catalog_cache

import (
	"sync"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

const TTL = 5 * time.Minute

// ── Active tour list cache ───────────────────────────────────────────────────
// Stores the full storefront list; the filter engine runs against it in
// memory, so every storefront read goes through here.

type listEntry struct {
	tours     []models.TourSummary
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetTours() ([]models.TourSummary, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return listCache.tours, true
	}
	return nil, false
}

func SetTours(tours []models.TourSummary) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{tours: tours, fetchedAt: time.Now()}
}

// ── Bookable tours cache ─────────────────────────────────────────────────────

type availableEntry struct {
	tours     []models.AvailableTour
	fetchedAt time.Time
}

var (
	availMu    sync.RWMutex
	availCache *availableEntry
)

func GetAvailable() ([]models.AvailableTour, bool) {
	availMu.RLock()
	defer availMu.RUnlock()
	if availCache != nil && time.Since(availCache.fetchedAt) < TTL {
		return availCache.tours, true
	}
	return nil, false
}

func SetAvailable(tours []models.AvailableTour) {
	availMu.Lock()
	defer availMu.Unlock()
	availCache = &availableEntry{tours: tours, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any tour create/update/delete) ────────────

func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()

	availMu.Lock()
	availCache = nil
	availMu.Unlock()
}
