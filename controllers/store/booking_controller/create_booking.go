package booking_controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/bookingflow"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/store/catalog_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CreateBooking godoc
// @Summary Submit a booking
// @Description Accepts the full booking wizard draft. The server re-runs every field validator and reprices the draft from the current tour list before persisting, so the client total is advisory only.
// @Tags store
// @Accept json
// @Produce json
// @Param booking body models.CreateBookingRequest true "Booking draft"
// @Success 201 {object} models.ApiResponse{data=object{booking_number=string,total_amount=number}}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Tour not found"
// @Failure 422 {object} models.ApiResponse "Validation failed"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/bookings [post]
func CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	available, err := catalog_controller.LoadAvailableTours(ctx)
	if err != nil {
		log.Printf("❌ [store.booking] failed to load bookable tours: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load tours"))
		return
	}

	engine := bookingflow.NewEngine(available)
	tour, ok := engine.Lookup(req.TourName)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found or not bookable"))
		return
	}
	if req.GroupSize > tour.MaxParticipants {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c,
			fmt.Sprintf("Group size exceeds the tour limit of %d", tour.MaxParticipants)))
		return
	}
	// The wizard caps participants at the tour limit; a replayed draft
	// must not sneak past that cap.
	if len(req.Participants) > tour.MaxParticipants {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c,
			fmt.Sprintf("Participant list exceeds the tour limit of %d", tour.MaxParticipants)))
		return
	}

	// Rebuild the wizard state at the payment step and submit through the
	// engine: validators gate the submit, and the price is recomputed
	// server-side regardless of what the client displayed.
	session := bookingflow.NewSession(engine)
	session.Apply(bookingflow.DraftFromRequest(req))

	submitter := &bookingSubmitter{tour: tour}
	bookingNumber, err := session.Submit(ctx, submitter)
	if err != nil {
		var vErr *bookingflow.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, vErr.Error()))
			return
		}
		log.Printf("❌ [store.booking] submit failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create booking"))
		return
	}

	log.Printf("✅ [store.booking] created %s for %s (%s, group of %d) - total %d %s",
		bookingNumber, req.FullName, req.TourName, req.GroupSize, submitter.totalAmount, req.Currency)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Booking created successfully", gin.H{
		"booking_number": bookingNumber,
		"total_amount":   submitter.totalAmount,
	}))
}

// bookingSubmitter persists a validated, repriced draft in one insert.
// Nothing is written when validation fails upstream, so a rejected draft
// is never partially persisted.
type bookingSubmitter struct {
	tour        models.AvailableTour
	totalAmount int64
}

func (s *bookingSubmitter) CreateBooking(ctx context.Context, d bookingflow.Draft) (string, error) {
	tourID, err := uuid.Parse(s.tour.ID)
	if err != nil {
		return "", fmt.Errorf("invalid tour ID: %s", s.tour.ID)
	}

	s.totalAmount = d.TotalAmount

	booking := models.Booking{
		TourID:              tourID,
		TourName:            d.TourName,
		TourDate:            d.TourDate,
		FullName:            d.FullName,
		Email:               d.Email,
		Phone:               d.Phone,
		Nationality:         d.Nationality,
		GroupSize:           d.GroupSize,
		AccommodationType:   d.AccommodationType,
		Participants:        d.Participants,
		DietaryRequirements: d.DietaryRequirements,
		MedicalNotes:        d.MedicalNotes,
		Currency:            d.Currency,
		PaymentMethod:       d.PaymentMethod,
		TotalAmount:         float64(d.TotalAmount),
		Status:              "pending",
	}

	// Booking numbers are random within the year; retry on the (rare)
	// unique-index collision instead of coordinating a sequence.
	for attempt := 0; attempt < 5; attempt++ {
		booking.ID = uuid.Nil
		booking.BookingNumber = generateBookingNumber()
		err := config.Gorm.WithContext(ctx).Create(&booking).Error
		if err == nil {
			return booking.BookingNumber, nil
		}
		if !isDuplicateBookingNumber(err) {
			return "", err
		}
		log.Printf("⚠️ [store.booking] booking number collision: %s, retrying", booking.BookingNumber)
	}
	return "", errors.New("could not allocate a booking number")
}

// isDuplicateBookingNumber recognizes a unique-index violation both as
// the translated gorm sentinel and as the raw Postgres error, so the
// retry holds even on a handle opened without error translation.
func isDuplicateBookingNumber(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func generateBookingNumber() string {
	return fmt.Sprintf("PHX-%d-%06d", time.Now().Year(), rand.Intn(1000000))
}
