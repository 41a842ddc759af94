package crew

import (
	"context"
	"errors"
	"strings"

	"crewledger/models"

	"go.uber.org/zap"
)

var (
	// ErrMissingFields rejects profiles without the required identity fields.
	ErrMissingFields = errors.New("name, mid and designation are required")
	// ErrInvalidWage rejects negative base wages.
	ErrInvalidWage = errors.New("daily wage cannot be negative")
)

func validateProfile(member *models.CrewMember) error {
	member.Name = strings.TrimSpace(member.Name)
	member.MID = strings.TrimSpace(member.MID)
	member.Designation = strings.TrimSpace(member.Designation)
	if member.Name == "" || member.MID == "" || member.Designation == "" {
		return ErrMissingFields
	}
	if member.DailyWage < 0 {
		return ErrInvalidWage
	}
	return nil
}

// RegisterCrewMember creates a new role profile. Registering the same person
// (mid) under a second designation creates a second, independent profile.
func (s *DefaultCrewService) RegisterCrewMember(ctx context.Context, member models.CrewMember) (*models.CrewMember, error) {
	if err := validateProfile(&member); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, &member); err != nil {
		return nil, err
	}
	s.Logger.Info("crew profile registered",
		zap.String("crewId", member.ID),
		zap.String("mid", member.MID),
		zap.String("designation", member.Designation),
	)
	return &member, nil
}

func (s *DefaultCrewService) UpdateCrewMember(ctx context.Context, member models.CrewMember) (*models.CrewMember, error) {
	if err := validateProfile(&member); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, &member); err != nil {
		return nil, err
	}
	s.Logger.Info("crew profile updated", zap.String("crewId", member.ID))
	return &member, nil
}

// DeleteCrewMember removes the role profile and cascades the removal of its
// project assignments. Shifts already logged for the profile are left in
// place; the ledger's history is not rewritten by a roster change.
func (s *DefaultCrewService) DeleteCrewMember(ctx context.Context, id string) error {
	if err := s.Repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("crew profile deleted", zap.String("crewId", id))
	return nil
}

func (s *DefaultCrewService) GetCrewMember(ctx context.Context, id string) (*models.CrewMember, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetRoleProfiles lists every role profile held by one person.
func (s *DefaultCrewService) GetRoleProfiles(ctx context.Context, mid string) ([]models.CrewMember, error) {
	return s.Repo.GetByMID(ctx, mid)
}

func (s *DefaultCrewService) ListCrew(ctx context.Context) ([]models.CrewMember, error) {
	return s.Repo.GetAll(ctx)
}
