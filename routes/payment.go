package routes

import (
	"homevista/handlers"
	"homevista/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers all endpoints for the settlement flow.
func RegisterPaymentRoutes(r *gin.Engine, h *handlers.PaymentHandler) {
	payments := r.Group("/api/payments")
	{
		// Payment features.
		payments.POST("/place", middleware.JWTAuthUserMiddleware(), h.PlacePayment)
		payments.POST("/stripe", middleware.JWTAuthUserMiddleware(), h.PlacePaymentStripe)

		// Verify payment (redirect callback; safe to call repeatedly).
		payments.POST("/verify", middleware.JWTAuthUserMiddleware(), h.VerifyPayment)

		// User feature.
		payments.POST("/userpayments", middleware.JWTAuthUserMiddleware(), h.UserPayments)

		// Admin features.
		payments.POST("/list", middleware.JWTAuthAdminMiddleware(), h.AllPayments)
		payments.POST("/status", middleware.JWTAuthAdminMiddleware(), h.UpdatePaymentStatus)
		payments.DELETE("/delete/:id", middleware.JWTAuthAdminMiddleware(), h.DeletePayment)
	}
}
