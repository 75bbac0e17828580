package routes

import (
	"homevista/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint on the router.
func SetupRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	RegisterBookingRoutes(r, bookingHandler)
	RegisterPaymentRoutes(r, paymentHandler)
}
