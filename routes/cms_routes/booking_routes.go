package cms_routes

import (
	"github.com/Davedaz23/Phoenix-Tour-sub000/controllers/cms/booking_controller"
	"github.com/Davedaz23/Phoenix-Tour-sub000/middleware"
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AdminAuthMiddleware())

	// Reads
	bookings.GET("", booking_controller.GetBookings)
	bookings.GET("/stats", booking_controller.GetBookingStats)
	bookings.GET("/monthly-revenue", booking_controller.GetMonthlyRevenue)
	bookings.GET("/:id", booking_controller.GetBookingByID)

	// Vouchers
	bookings.GET("/:id/download-voucher", booking_controller.DownloadBookingVoucherPDF)
	bookings.POST("/:id/send-voucher", booking_controller.SendBookingVoucherPDF)

	// Status transitions get the activity log treatment
	protected := bookings.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.PATCH("/:id/status", booking_controller.UpdateBookingStatus)
	}
}
