package store_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/store/booking_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up wizard submission and traveler booking routes
func SetupBookingRoutes(store *gin.RouterGroup) {
	bookings := store.Group("/bookings")
	{
		// Guest checkout: no auth, the draft carries the contact details
		bookings.POST("", booking_controller.CreateBooking)
		bookings.POST("/quote", booking_controller.QuoteBooking)
	}

	// Requires a signed-in traveler
	my := store.Group("/my-bookings")
	my.Use(middleware.AuthMiddleware())
	{
		my.GET("", booking_controller.GetMyBookings)
	}
}
