package handlers

import (
	"net/http"

	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CrewProjectSummaryHandler handles GET /reports/crew/:crewId/project/:projectId.
func (h *FinanceHandler) CrewProjectSummaryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	crewID := c.Param("crewId")
	projectID := c.Param("projectId")
	summary, err := h.Service.CrewProjectSummary(c.Request.Context(), crewID, projectID)
	if err != nil {
		logger.Error("Crew project summary failed",
			zap.String("crewId", crewID), zap.String("projectId", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ProjectSummaryHandler handles GET /reports/project/:projectId.
func (h *FinanceHandler) ProjectSummaryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	projectID := c.Param("projectId")
	summary, err := h.Service.ProjectSummary(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Project summary failed", zap.String("projectId", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PersonSummaryHandler handles GET /reports/person/:mid. Totals span every
// role profile the person holds, across all projects.
func (h *FinanceHandler) PersonSummaryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	mid := c.Param("mid")
	summary, err := h.Service.PersonSummary(c.Request.Context(), mid)
	if err != nil {
		logger.Error("Person summary failed", zap.String("mid", mid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ProjectCrewBreakdownHandler handles GET /reports/project/:projectId/crew.
func (h *FinanceHandler) ProjectCrewBreakdownHandler(c *gin.Context) {
	logger := utils.GetLogger()
	projectID := c.Param("projectId")
	rows, err := h.Service.ProjectCrewBreakdown(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Project crew breakdown failed", zap.String("projectId", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute breakdown"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
