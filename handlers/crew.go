package handlers

import (
	"errors"
	"net/http"

	"crewledger/models"
	crewService "crewledger/services/crew"
	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CrewHandler exposes crew role profile endpoints.
type CrewHandler struct {
	Service crewService.CrewService
}

// RegisterCrewHandler handles POST /crew.
func (h *CrewHandler) RegisterCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var member models.CrewMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.RegisterCrewMember(c.Request.Context(), member)
	if err != nil {
		if errors.Is(err, crewService.ErrMissingFields) || errors.Is(err, crewService.ErrInvalidWage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Crew registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register crew member"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCrewHandler handles PUT /crew/:id.
func (h *CrewHandler) UpdateCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var member models.CrewMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member.ID = c.Param("id")
	updated, err := h.Service.UpdateCrewMember(c.Request.Context(), member)
	if err != nil {
		if errors.Is(err, crewService.ErrMissingFields) || errors.Is(err, crewService.ErrInvalidWage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Crew update failed", zap.String("id", member.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew member not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCrewHandler handles DELETE /crew/:id. Project assignments are
// removed in the same transaction; logged shifts are kept.
func (h *CrewHandler) DeleteCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteCrewMember(c.Request.Context(), id); err != nil {
		logger.Error("Crew delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Crew member deleted"})
}

// GetCrewHandler handles GET /crew/:id.
func (h *CrewHandler) GetCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	member, err := h.Service.GetCrewMember(c.Request.Context(), id)
	if err != nil {
		logger.Error("Crew member not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Crew member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// ListCrewHandler handles GET /crew.
func (h *CrewHandler) ListCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	members, err := h.Service.ListCrew(c.Request.Context())
	if err != nil {
		logger.Error("Crew listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list crew"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetRoleProfilesByMID handles GET /crew/person/:mid. A person can hold
// several role profiles, one per designation.
func (h *CrewHandler) GetRoleProfilesByMID(c *gin.Context) {
	logger := utils.GetLogger()
	mid := c.Param("mid")
	profiles, err := h.Service.GetRoleProfiles(c.Request.Context(), mid)
	if err != nil {
		logger.Error("Role profile lookup failed", zap.String("mid", mid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch role profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}
