package project

import (
	"context"

	crewRepo "crewledger/database/repository/crew"
	projectRepo "crewledger/database/repository/project"
	"crewledger/models"

	"go.uber.org/zap"
)

// AssignmentInput adds or updates a crew assignment. Designation and wage
// default to the profile's values when left empty.
type AssignmentInput struct {
	CrewID      string  `json:"crewId" binding:"required"`
	Designation string  `json:"designation"`
	DailyWage   float64 `json:"dailyWage"`
}

// ProjectService manages productions and their crew assignment lists.
type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)

	AssignCrew(ctx context.Context, projectID string, input AssignmentInput) error
	UpdateAssignment(ctx context.Context, projectID string, input AssignmentInput) error
	UnassignCrew(ctx context.Context, projectID, crewID string) error
}

// DefaultProjectService is the production implementation.
type DefaultProjectService struct {
	Repo   projectRepo.ProjectRepository
	Crew   crewRepo.CrewRepository
	Logger *zap.Logger
}
