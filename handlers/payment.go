package handlers

import (
	"errors"
	"net/http"

	paymentRepo "homevista/database/repository/payment"
	"homevista/models"
	"homevista/services/settlement"
	"homevista/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the settlement flow over HTTP.
type PaymentHandler struct {
	Service settlement.SettlementService
}

func NewPaymentHandler(svc settlement.SettlementService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

func (h *PaymentHandler) begin(c *gin.Context, method string) (*settlement.BeginResult, bool) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return nil, false
	}
	if userID := c.GetString("userID"); userID != "" {
		req.UserID = userID
	}

	result, err := h.Service.Begin(c.Request.Context(), req, method)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidRequest):
			utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		case errors.Is(err, settlement.ErrAmountMismatch):
			utils.JSONError(c, http.StatusUnprocessableEntity, "amount mismatch", "Amount does not match the line items.")
		case errors.Is(err, settlement.ErrGatewayUnavailable):
			utils.JSONError(c, http.StatusBadGateway, "payment gateway unavailable", "Please retry the payment.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to begin payment", err.Error())
		}
		return nil, false
	}
	return result, true
}

// PlacePayment handles POST /api/payments/place (pay on delivery).
func (h *PaymentHandler) PlacePayment(c *gin.Context) {
	result, ok := h.begin(c, models.PaymentMethodCash)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Pending", "paymentId": result.IntentID})
}

// PlacePaymentStripe handles POST /api/payments/stripe (hosted checkout).
func (h *PaymentHandler) PlacePaymentStripe(c *gin.Context) {
	result, ok := h.begin(c, models.PaymentMethodStripe)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"session_url": result.RedirectURL,
		"paymentId":   result.IntentID,
	})
}

// VerifyPayment handles POST /api/payments/verify, the redirect callback
// from the hosted checkout. Callbacks may be delivered more than once; the
// reconcile step is idempotent, so this endpoint never fails on re-delivery.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		PaymentID string `json:"paymentId"`
		Success   string `json:"success"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "paymentId is required")
		return
	}

	success := req.Success == "true"
	if err := h.Service.Reconcile(c.Request.Context(), req.PaymentID, success); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to verify payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": success})
}

// UserPayments handles POST /api/payments/userpayments.
func (h *PaymentHandler) UserPayments(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "missing user", "")
		return
	}
	payments, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// AllPayments handles POST /api/payments/list (admin).
func (h *PaymentHandler) AllPayments(c *gin.Context) {
	payments, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// UpdatePaymentStatus handles POST /api/payments/status (admin).
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	var req struct {
		PaymentID string `json:"paymentId"`
		Status    string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentID == "" || req.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "paymentId and status are required")
		return
	}

	if err := h.Service.SetStatus(c.Request.Context(), req.PaymentID, req.Status); err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "payment not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status Updated"})
}

// DeletePayment handles DELETE /api/payments/delete/:id (admin).
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "payment not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment deleted successfully"})
}
