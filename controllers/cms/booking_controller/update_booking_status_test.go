package booking_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockGorm swaps the global GORM handle for one backed by sqlmock and
// restores it when the test finishes.
func newMockGorm(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	prev := config.Gorm
	config.Gorm = gormDB
	t.Cleanup(func() {
		config.Gorm = prev
		db.Close()
	})

	return mock
}

func statusTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PATCH("/cms/bookings/:id/status", UpdateBookingStatus)
	return router
}

func patchStatus(t *testing.T, router *gin.Engine, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("PATCH", "/cms/bookings/"+id+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const testBookingID = "01921aaa-0000-7000-8000-000000000001"

func TestUpdateBookingStatusConfirm(t *testing.T) {
	mock := newMockGorm(t)
	router := statusTestRouter()

	rows := sqlmock.NewRows([]string{"id", "booking_number", "status", "admin_notes"}).
		AddRow(testBookingID, "PHX-2026-000123", "confirmed", nil)
	mock.ExpectQuery("UPDATE bookings").WillReturnRows(rows)

	w := patchStatus(t, router, testBookingID, `{"status":"confirmed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var env struct {
		Data models.UpdateBookingStatusResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if env.Data.Status != "confirmed" || env.Data.BookingNumber != "PHX-2026-000123" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateBookingStatusCancelRequiresNotes(t *testing.T) {
	newMockGorm(t) // no SQL expected; the request must fail first
	router := statusTestRouter()

	w := patchStatus(t, router, testBookingID, `{"status":"cancelled"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	mock := newMockGorm(t)
	router := statusTestRouter()

	// RETURNING with no matched row scans nothing
	mock.ExpectQuery("UPDATE bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_number", "status", "admin_notes"}))

	w := patchStatus(t, router, testBookingID, `{"status":"completed"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	newMockGorm(t)
	router := statusTestRouter()

	w := patchStatus(t, router, testBookingID, `{"status":"archived"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
