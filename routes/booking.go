package routes

import (
	"homevista/handlers"
	"homevista/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the reservation flow.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	{
		// Public read path used to grey out taken slots.
		bookings.GET("/property/:id", h.BookingsByProperty)

		// User features.
		bookings.POST("", middleware.JWTAuthUserMiddleware(), h.CreateBooking)

		// Admin features.
		bookings.GET("/all", middleware.JWTAuthAdminMiddleware(), h.AllBookings)
		bookings.DELETE("/admin/:id", middleware.JWTAuthAdminMiddleware(), h.DeleteBooking)
	}
}
