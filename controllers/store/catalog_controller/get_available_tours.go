package catalog_controller

import (
	"log"
	"net/http"

	"github.com/Davedaz23/Phoenix-Tour-sub000/config"
	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetAvailableTours godoc
// @Summary Get bookable tours
// @Description Slim list of tours the booking wizard can select: name, duration, price, participant limit and departure dates. Only active tours with at least one date qualify.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.AvailableTour}
// @Failure 500 {object} models.ApiResponse
// @Router /store/tours/available [get]
func GetAvailableTours(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	tours, err := loadAvailableTours(ctx)
	if err != nil {
		log.Printf("❌ [store.available] failed to load bookable tours: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load tours"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Available tours retrieved", tours))
}
