package crew

import (
	"context"

	crewRepo "crewledger/database/repository/crew"
	"crewledger/models"

	"go.uber.org/zap"
)

// CrewService manages crew role profiles. Deleting a profile also removes
// its assignment from every project, atomically.
type CrewService interface {
	RegisterCrewMember(ctx context.Context, member models.CrewMember) (*models.CrewMember, error)
	UpdateCrewMember(ctx context.Context, member models.CrewMember) (*models.CrewMember, error)
	DeleteCrewMember(ctx context.Context, id string) error
	GetCrewMember(ctx context.Context, id string) (*models.CrewMember, error)
	GetRoleProfiles(ctx context.Context, mid string) ([]models.CrewMember, error)
	ListCrew(ctx context.Context) ([]models.CrewMember, error)
}

// DefaultCrewService is the production implementation.
type DefaultCrewService struct {
	Repo   crewRepo.CrewRepository
	Logger *zap.Logger
}
