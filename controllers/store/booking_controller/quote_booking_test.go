package booking_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalog_cache "github.com/Davedaz23/Phoenix-Tour-sub000/cache"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

func bookingTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/store/bookings", CreateBooking)
	router.POST("/store/bookings/quote", QuoteBooking)
	return router
}

// seedBookableTours pre-warms the cache so the handlers never open a
// database connection.
func seedBookableTours() {
	catalog_cache.SetAvailable([]models.AvailableTour{
		{
			ID:              "019212aa-0000-7000-8000-000000000001",
			Name:            "Simien Mountains Trek",
			Duration:        "4 days",
			Price:           299,
			MaxParticipants: 12,
			AvailableDates:  []string{"2026-10-05"},
		},
	})
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestQuoteBookingAppliesMultiplierAndDiscount(t *testing.T) {
	seedBookableTours()
	router := bookingTestRouter()

	// 299 x 4 x 1.3 (comfort) x 0.90 (group of 4) = 1399.32 -> 1399
	w := postJSON(t, router, "/store/bookings/quote",
		`{"tour_name":"Simien Mountains Trek","group_size":4,"accommodation_type":"comfort"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var env struct {
		Data models.PriceQuote `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if env.Data.TotalAmount != 1399 {
		t.Errorf("total = %d, want 1399", env.Data.TotalAmount)
	}
	if env.Data.Multiplier != 1.3 {
		t.Errorf("multiplier = %v, want 1.3", env.Data.Multiplier)
	}
	if env.Data.GroupDiscount != 0.90 {
		t.Errorf("group discount = %v, want 0.90", env.Data.GroupDiscount)
	}
}

func TestQuoteBookingUnknownTour(t *testing.T) {
	seedBookableTours()
	router := bookingTestRouter()

	w := postJSON(t, router, "/store/bookings/quote",
		`{"tour_name":"Nonexistent Trek","group_size":2,"accommodation_type":"standard"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCreateBookingRejectsUnacceptedTerms(t *testing.T) {
	seedBookableTours()
	router := bookingTestRouter()

	// Everything valid except terms_accepted; the validators must block
	// the submit before anything touches the database.
	w := postJSON(t, router, "/store/bookings", `{
		"tour_name": "Simien Mountains Trek",
		"tour_date": "2026-10-05",
		"full_name": "Abebe Bikila",
		"email": "abebe@example.com",
		"phone": "+251911234567",
		"nationality": "Ethiopian",
		"group_size": 2,
		"accommodation_type": "standard",
		"participants": [{"name": "Abebe Bikila", "age": 34, "gender": "male"}],
		"currency": "USD",
		"payment_method": "card",
		"terms_accepted": false
	}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingRejectsOversizedGroup(t *testing.T) {
	seedBookableTours()
	router := bookingTestRouter()

	w := postJSON(t, router, "/store/bookings", `{
		"tour_name": "Simien Mountains Trek",
		"tour_date": "2026-10-05",
		"full_name": "Abebe Bikila",
		"email": "abebe@example.com",
		"phone": "+251911234567",
		"nationality": "Ethiopian",
		"group_size": 13,
		"accommodation_type": "standard",
		"participants": [{"name": "Abebe Bikila", "age": 34, "gender": "male"}],
		"currency": "USD",
		"payment_method": "card",
		"terms_accepted": true
	}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingUnknownTour(t *testing.T) {
	seedBookableTours()
	router := bookingTestRouter()

	w := postJSON(t, router, "/store/bookings", `{
		"tour_name": "Nonexistent Trek",
		"tour_date": "2026-10-05",
		"full_name": "Abebe Bikila",
		"email": "abebe@example.com",
		"phone": "+251911234567",
		"nationality": "Ethiopian",
		"group_size": 2,
		"accommodation_type": "standard",
		"participants": [{"name": "Abebe Bikila", "age": 34, "gender": "male"}],
		"currency": "USD",
		"payment_method": "card",
		"terms_accepted": true
	}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
