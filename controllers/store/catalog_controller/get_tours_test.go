package catalog_controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog_cache "github.com/Davedaz23/Phoenix-Tour-sub000/cache"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

func catalogTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/tours", GetStorefrontTours)
	router.GET("/store/tours/category-counts", GetCategoryCounts)
	return router
}

// seedCatalog puts a known tour list in the cache so the handlers never
// reach the database.
func seedCatalog() {
	tours := make([]models.TourSummary, 0, 8)
	for i := 1; i <= 7; i++ {
		tours = append(tours, models.TourSummary{
			ID:         fmt.Sprintf("trek-%d", i),
			Title:      fmt.Sprintf("Trek %d", i),
			Category:   "Trekking & Hiking",
			Region:     "Simien Mountains",
			Difficulty: "Challenging",
			Duration:   "4 days",
		})
	}
	tours = append(tours, models.TourSummary{
		ID:         "lalibela",
		Title:      "Lalibela Rock Churches",
		Category:   "Historic Route",
		Region:     "Lalibela",
		Difficulty: "Easy",
		Duration:   "2 days",
		Tags:       []string{"unesco"},
	})
	catalog_cache.SetTours(tours)
}

type toursEnvelope struct {
	Data struct {
		Tours []models.TourSummary `json:"tours"`
	} `json:"data"`
	Meta *models.Pagination `json:"meta"`
}

func getTours(t *testing.T, router *gin.Engine, query string) toursEnvelope {
	t.Helper()
	req := httptest.NewRequest("GET", "/store/tours"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var env toursEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return env
}

func TestGetStorefrontToursPaginatesAtSix(t *testing.T) {
	seedCatalog()
	router := catalogTestRouter()

	env := getTours(t, router, "")
	if len(env.Data.Tours) != 6 {
		t.Fatalf("expected 6 tours on page 1, got %d", len(env.Data.Tours))
	}
	if env.Meta == nil || env.Meta.Total != 8 || env.Meta.TotalPages != 2 {
		t.Fatalf("unexpected meta: %+v", env.Meta)
	}

	env = getTours(t, router, "?page=2")
	if len(env.Data.Tours) != 2 {
		t.Fatalf("expected 2 tours on page 2, got %d", len(env.Data.Tours))
	}
}

func TestGetStorefrontToursFiltersByCategory(t *testing.T) {
	seedCatalog()
	router := catalogTestRouter()

	env := getTours(t, router, "?category=Historic+Route")
	if len(env.Data.Tours) != 1 || env.Data.Tours[0].ID != "lalibela" {
		t.Fatalf("unexpected filter result: %+v", env.Data.Tours)
	}

	// The sentinel category matches everything
	env = getTours(t, router, "?category=All+Tours")
	if env.Meta.Total != 8 {
		t.Fatalf("'All Tours' should not filter, got total %d", env.Meta.Total)
	}
}

func TestGetStorefrontToursCombinesDimensions(t *testing.T) {
	seedCatalog()
	router := catalogTestRouter()

	env := getTours(t, router, "?difficulty=Easy&duration=1-3+days&q=unesco")
	if len(env.Data.Tours) != 1 || env.Data.Tours[0].ID != "lalibela" {
		t.Fatalf("expected only lalibela, got %+v", env.Data.Tours)
	}

	// One failing dimension empties the result; that is a normal state
	env = getTours(t, router, "?difficulty=Easy&duration=15%2B+days")
	if len(env.Data.Tours) != 0 || env.Meta.Total != 0 {
		t.Fatalf("expected empty result, got %+v", env.Data.Tours)
	}
}

func TestGetCategoryCountsCoversUnfilteredList(t *testing.T) {
	seedCatalog()
	router := catalogTestRouter()

	req := httptest.NewRequest("GET", "/store/tours/category-counts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var env struct {
		Data map[string]int `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if env.Data["Trekking & Hiking"] != 7 {
		t.Errorf("Trekking & Hiking = %d, want 7", env.Data["Trekking & Hiking"])
	}
	if env.Data["Historic Route"] != 1 {
		t.Errorf("Historic Route = %d, want 1", env.Data["Historic Route"])
	}
	if env.Data[models.CategoryAllTours] != 8 {
		t.Errorf("All Tours = %d, want 8", env.Data[models.CategoryAllTours])
	}
}
