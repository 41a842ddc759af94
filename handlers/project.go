package handlers

import (
	"errors"
	"net/http"

	projectRepo "crewledger/database/repository/project"
	"crewledger/models"
	projectService "crewledger/services/project"
	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler exposes production and crew assignment endpoints.
type ProjectHandler struct {
	Service projectService.ProjectService
}

// CreateProjectHandler handles POST /projects.
func (h *ProjectHandler) CreateProjectHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.CreateProject(c.Request.Context(), project)
	if err != nil {
		if errors.Is(err, projectService.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Project creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProjectHandler handles PUT /projects/:id.
func (h *ProjectHandler) UpdateProjectHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project.ID = c.Param("id")
	updated, err := h.Service.UpdateProject(c.Request.Context(), project)
	if err != nil {
		if errors.Is(err, projectService.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Project update failed", zap.String("id", project.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProjectHandler handles DELETE /projects/:id.
func (h *ProjectHandler) DeleteProjectHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteProject(c.Request.Context(), id); err != nil {
		logger.Error("Project delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// GetProjectHandler handles GET /projects/:id.
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	project, err := h.Service.GetProject(c.Request.Context(), id)
	if err != nil {
		logger.Error("Project not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListProjectsHandler handles GET /projects.
func (h *ProjectHandler) ListProjectsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	projects, err := h.Service.ListProjects(c.Request.Context())
	if err != nil {
		logger.Error("Project listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// AssignCrewHandler handles POST /projects/:id/crew.
func (h *ProjectHandler) AssignCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	projectID := c.Param("id")
	var input projectService.AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.AssignCrew(c.Request.Context(), projectID, input); err != nil {
		if errors.Is(err, projectRepo.ErrAssignmentExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Crew assignment failed",
			zap.String("projectId", projectID), zap.String("crewId", input.CrewID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign crew"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Crew assigned"})
}

// UpdateAssignmentHandler handles PUT /projects/:id/crew. Wage edits only
// affect future shifts; logged shifts keep their wage snapshot.
func (h *ProjectHandler) UpdateAssignmentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	projectID := c.Param("id")
	var input projectService.AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateAssignment(c.Request.Context(), projectID, input); err != nil {
		if errors.Is(err, projectRepo.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Assignment update failed",
			zap.String("projectId", projectID), zap.String("crewId", input.CrewID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment updated"})
}

// UnassignCrewHandler handles DELETE /projects/:id/crew/:crewId.
func (h *ProjectHandler) UnassignCrewHandler(c *gin.Context) {
	logger := utils.GetLogger()
	projectID := c.Param("id")
	crewID := c.Param("crewId")
	if err := h.Service.UnassignCrew(c.Request.Context(), projectID, crewID); err != nil {
		logger.Error("Crew unassignment failed",
			zap.String("projectId", projectID), zap.String("crewId", crewID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign crew"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Crew unassigned"})
}
