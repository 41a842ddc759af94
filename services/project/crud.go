package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crewledger/models"

	"go.uber.org/zap"
)

// ErrMissingName rejects projects without a name.
var ErrMissingName = errors.New("project name is required")

func (s *DefaultProjectService) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, ErrMissingName
	}
	if project.Status == "" {
		project.Status = "Upcoming"
	}
	if err := s.Repo.Create(ctx, &project); err != nil {
		return nil, err
	}
	s.Logger.Info("project created", zap.String("projectId", project.ID), zap.String("name", project.Name))
	return &project, nil
}

func (s *DefaultProjectService) UpdateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, ErrMissingName
	}

	// Edits go through the document replace, but the crew list is owned by
	// the assignment operations; carry the stored list over untouched.
	current, err := s.Repo.GetByID(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.Crew = current.Crew

	if err := s.Repo.Update(ctx, &project); err != nil {
		return nil, err
	}
	s.Logger.Info("project updated", zap.String("projectId", project.ID))
	return &project, nil
}

func (s *DefaultProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("project deleted", zap.String("projectId", id))
	return nil
}

func (s *DefaultProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.Repo.GetAll(ctx)
}

// AssignCrew puts a role profile on the project's crew list. The assignment
// snapshots a project-scoped designation and wage; blank inputs fall back to
// the profile's defaults.
func (s *DefaultProjectService) AssignCrew(ctx context.Context, projectID string, input AssignmentInput) error {
	member, err := s.Crew.GetByID(ctx, input.CrewID)
	if err != nil {
		return fmt.Errorf("crew profile %s not found: %w", input.CrewID, err)
	}

	assignment := models.ProjectCrewAssignment{
		CrewID:      member.ID,
		MID:         member.MID,
		Designation: input.Designation,
		DailyWage:   input.DailyWage,
	}
	if assignment.Designation == "" {
		assignment.Designation = member.Designation
	}
	if assignment.DailyWage == 0 {
		assignment.DailyWage = member.DailyWage
	}

	if err := s.Repo.AddAssignment(ctx, projectID, assignment); err != nil {
		return err
	}
	s.Logger.Info("crew assigned to project",
		zap.String("projectId", projectID),
		zap.String("crewId", member.ID),
		zap.Float64("dailyWage", assignment.DailyWage),
	)
	return nil
}

// UpdateAssignment changes a project-scoped wage or designation. Existing
// shifts keep their snapshots; only future shifts pick up the new rate.
func (s *DefaultProjectService) UpdateAssignment(ctx context.Context, projectID string, input AssignmentInput) error {
	member, err := s.Crew.GetByID(ctx, input.CrewID)
	if err != nil {
		return fmt.Errorf("crew profile %s not found: %w", input.CrewID, err)
	}

	assignment := models.ProjectCrewAssignment{
		CrewID:      member.ID,
		MID:         member.MID,
		Designation: input.Designation,
		DailyWage:   input.DailyWage,
	}
	if assignment.Designation == "" {
		assignment.Designation = member.Designation
	}
	if assignment.DailyWage == 0 {
		assignment.DailyWage = member.DailyWage
	}

	if err := s.Repo.UpdateAssignment(ctx, projectID, assignment); err != nil {
		return err
	}
	s.Logger.Info("project assignment updated",
		zap.String("projectId", projectID),
		zap.String("crewId", member.ID),
	)
	return nil
}

func (s *DefaultProjectService) UnassignCrew(ctx context.Context, projectID, crewID string) error {
	if err := s.Repo.RemoveAssignment(ctx, projectID, crewID); err != nil {
		return err
	}
	s.Logger.Info("crew unassigned from project",
		zap.String("projectId", projectID),
		zap.String("crewId", crewID),
	)
	return nil
}
