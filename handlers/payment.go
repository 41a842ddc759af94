package handlers

import (
	"errors"
	"net/http"

	"crewledger/models"
	financeService "crewledger/services/finance"
	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinanceHandler exposes payment and reconciliation endpoints.
type FinanceHandler struct {
	Service financeService.FinanceService
}

// RecordPaymentInput is the payload for POST /payments.
type RecordPaymentInput struct {
	CrewID    string  `json:"crewId" binding:"required"`
	ProjectID string  `json:"projectId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

// RecordPaymentHandler handles POST /payments. Validation failures map to
// distinct statuses so clients can tell a bad amount from an overpayment.
func (h *FinanceHandler) RecordPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.Service.RecordPayment(c.Request.Context(), input.CrewID, input.ProjectID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, financeService.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, financeService.ErrOverpayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Payment recording failed",
				zap.String("crewId", input.CrewID), zap.String("projectId", input.ProjectID),
				zap.Float64("amount", input.Amount), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ReversePaymentHandler handles DELETE /payments/:id. The payment's
// allocations are subtracted from its shifts and the record removed.
func (h *FinanceHandler) ReversePaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.ReversePayment(c.Request.Context(), id); err != nil {
		if errors.Is(err, financeService.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Payment reversal failed", zap.String("paymentId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment reversed"})
}

// PaymentHistoryHandler handles GET /payments?crewId=&projectId=. With only
// a projectId it lists every payment on the project.
func (h *FinanceHandler) PaymentHistoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	crewID := c.Query("crewId")
	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId query parameter is required"})
		return
	}

	var payments []models.Payment
	var err error
	if crewID == "" {
		payments, err = h.Service.ProjectPayments(c.Request.Context(), projectID)
	} else {
		payments, err = h.Service.PaymentHistory(c.Request.Context(), crewID, projectID)
	}
	if err != nil {
		logger.Error("Payment history lookup failed",
			zap.String("crewId", crewID), zap.String("projectId", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment history"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
