package handlers

import (
	"errors"
	"net/http"

	shiftService "crewledger/services/shift"
	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShiftHandler exposes attendance endpoints.
type ShiftHandler struct {
	Service shiftService.ShiftService
}

func shiftErrorStatus(err error) int {
	switch {
	case errors.Is(err, shiftService.ErrNotAssigned):
		return http.StatusUnprocessableEntity
	case errors.Is(err, shiftService.ErrDuplicateShift):
		return http.StatusConflict
	case errors.Is(err, shiftService.ErrInvalidDuration),
		errors.Is(err, shiftService.ErrInvalidDate),
		errors.Is(err, shiftService.ErrPaidExceedsEarned):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// LogShiftHandler handles POST /shifts.
func (h *ShiftHandler) LogShiftHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input shiftService.LogShiftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shift, err := h.Service.LogShift(c.Request.Context(), input)
	if err != nil {
		status := shiftErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Shift logging failed",
				zap.String("crewId", input.CrewID), zap.String("projectId", input.ProjectID), zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to log shift"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// UpdateShiftHandler handles PUT /shifts/:id.
func (h *ShiftHandler) UpdateShiftHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	var input shiftService.UpdateShiftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shift, err := h.Service.UpdateShift(c.Request.Context(), id, input)
	if err != nil {
		status := shiftErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Shift update failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShiftHandler handles DELETE /shifts/:id.
func (h *ShiftHandler) DeleteShiftHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteShift(c.Request.Context(), id); err != nil {
		logger.Error("Shift delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}

// GetShiftHandler handles GET /shifts/:id.
func (h *ShiftHandler) GetShiftHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	shift, err := h.Service.GetShift(c.Request.Context(), id)
	if err != nil {
		logger.Error("Shift not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}
	c.JSON(http.StatusOK, shift)
}

// ListProjectShifts handles GET /projects/:id/shifts?from=&to=. When a
// date range is given only shifts inside it are returned.
func (h *ShiftHandler) ListProjectShifts(c *gin.Context) {
	logger := utils.GetLogger()
	projectID := c.Param("id")
	from := c.Query("from")
	to := c.Query("to")

	var err error
	var shifts interface{}
	if from != "" || to != "" {
		shifts, err = h.Service.ListByDateRange(c.Request.Context(), projectID, from, to)
	} else {
		shifts, err = h.Service.ListByProject(c.Request.Context(), projectID)
	}
	if err != nil {
		if errors.Is(err, shiftService.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Shift listing failed", zap.String("projectId", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// ListCrewShifts handles GET /crew/:id/shifts.
func (h *ShiftHandler) ListCrewShifts(c *gin.Context) {
	logger := utils.GetLogger()
	crewID := c.Param("id")
	shifts, err := h.Service.ListByCrew(c.Request.Context(), crewID)
	if err != nil {
		logger.Error("Shift listing failed", zap.String("crewId", crewID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}
	c.JSON(http.StatusOK, shifts)
}
