package booking_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/bookingflow"
	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/store/catalog_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// QuoteBooking godoc
// @Summary Price a booking without persisting
// @Description Returns the full price breakdown (accommodation multiplier, group discount, rounded total) for a tour, group size and accommodation tier. Used by the wizard's live price box.
// @Tags store
// @Accept json
// @Produce json
// @Param quote body models.QuoteRequest true "Quote request"
// @Success 200 {object} models.ApiResponse{data=models.PriceQuote}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Tour not found"
// @Router /store/bookings/quote [post]
func QuoteBooking(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	available, err := catalog_controller.LoadAvailableTours(ctx)
	if err != nil {
		log.Printf("❌ [store.quote] failed to load bookable tours: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load tours"))
		return
	}

	// Drive the request through the same transitions the wizard uses, so
	// the live price box and the final submit can never disagree.
	engine := bookingflow.NewEngine(available)
	draft := engine.SelectTour(bookingflow.NewDraft(), req.TourName)
	draft = engine.SetGroupSize(draft, req.GroupSize)
	draft = engine.SetAccommodation(draft, req.AccommodationType)

	quote, ok := engine.QuoteFor(draft)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Tour not found or not bookable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote calculated", quote))
}
