package booking_controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newBookingMockGorm swaps the global GORM handle for one backed by
// sqlmock, opened with the production configuration so error
// translation behaves exactly as it does against Postgres.
func newBookingMockGorm(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), config.GormConfig(logger.Default.LogMode(logger.Silent)))
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

const validBookingBody = `{
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
	"terms_accepted": true
}`

func TestGormConfigTranslatesDuplicateKey(t *testing.T) {
	mock := newBookingMockGorm(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_booking_number"})
	mock.ExpectRollback()

	booking := models.Booking{
		BookingNumber:     "PHX-2026-000001",
		TourName:          "Simien Mountains Trek",
		TourDate:          "2026-10-05",
		FullName:          "Abebe Bikila",
		Email:             "abebe@example.com",
		Phone:             "+251911234567",
		Nationality:       "Ethiopian",
		GroupSize:         2,
		AccommodationType: "standard",
		Participants:      models.ParticipantList{{Name: "Abebe Bikila", Age: 34, Gender: "male"}},
		Currency:          "USD",
		PaymentMethod:     "card",
		TotalAmount:       598,
		Status:            "pending",
	}

	err := config.Gorm.Create(&booking).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("unique violation not translated: got %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestCreateBookingRetriesOnDuplicateNumber(t *testing.T) {
	seedBookableTours()
	mock := newBookingMockGorm(t)
	router := bookingTestRouter()

	// First insert collides on the booking_number unique index, the
	// retry mints a fresh number and succeeds.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_booking_number"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"participants", "dietary_requirements"}).
			AddRow([]byte(`[]`), []byte(`[]`)))
	mock.ExpectCommit()

	w := postJSON(t, router, "/store/bookings", validBookingBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var env struct {
		Data struct {
			BookingNumber string `json:"booking_number"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !strings.HasPrefix(env.Data.BookingNumber, "PHX-") {
		t.Fatalf("unexpected booking number: %q", env.Data.BookingNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIsDuplicateBookingNumber(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"translated sentinel", gorm.ErrDuplicatedKey, true},
		{"raw postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"other postgres error", &pgconn.PgError{Code: "23503"}, false},
		{"unrelated error", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateBookingNumber(tt.err); got != tt.want {
				t.Errorf("isDuplicateBookingNumber(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCreateBookingRejectsOversizedParticipantList(t *testing.T) {
	seedBookableTours()
	router := bookingTestRouter()

	// Group size is within the limit of 12, but the participant list
	// itself is not; the replayed draft must not bypass the wizard cap.
	participants := make([]string, 13)
	for i := range participants {
		participants[i] = `{"name": "Traveler", "age": 30, "gender": "female"}`
	}
	body := `{
		"tour_name": "Simien Mountains Trek",
		"tour_date": "2026-10-05",
		"full_name": "Abebe Bikila",
		"email": "abebe@example.com",
		"phone": "+251911234567",
		"nationality": "Ethiopian",
		"group_size": 12,
		"accommodation_type": "standard",
		"participants": [` + strings.Join(participants, ",") + `],
		"currency": "USD",
		"payment_method": "card",
		"terms_accepted": true
	}`

	w := postJSON(t, router, "/store/bookings", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", w.Code, w.Body.String())
	}
}
