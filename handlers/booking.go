package handlers

import (
	"errors"
	"net/http"

	bookingRepo "homevista/database/repository/booking"
	propertyRepo "homevista/database/repository/property"
	"homevista/models"
	"homevista/services/reservation"
	"homevista/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the reservation flow over HTTP.
type BookingHandler struct {
	Service reservation.ReservationService
}

func NewBookingHandler(svc reservation.ReservationService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// The authenticated subject wins over whatever the payload claims.
	if userID := c.GetString("userID"); userID != "" {
		req.UserID = userID
	}

	booking, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *reservation.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, "validation failed", vErr.Error())
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot already booked", "Please select another slot or date.")
		case errors.Is(err, propertyRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

// BookingsByProperty handles GET /api/bookings/property/:id. The optional
// date query narrows the result to a single day.
func (h *BookingHandler) BookingsByProperty(c *gin.Context) {
	propertyID := c.Param("id")
	date := c.Query("date")

	bookings, err := h.Service.BookedSlots(c.Request.Context(), propertyID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// AllBookings handles GET /api/bookings/all (admin).
func (h *BookingHandler) AllBookings(c *gin.Context) {
	bookings, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// DeleteBooking handles DELETE /api/bookings/admin/:id (admin).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}
