package crew

import (
	"context"
	"errors"
	"testing"

	"crewledger/models"

	"go.uber.org/zap"
)

// memCrewRepo keeps profiles in memory and mimics the cascade by tracking
// which projects still list each profile.
type memCrewRepo struct {
	profiles    map[string]models.CrewMember
	assignments map[string][]string // crewID -> project ids listing it
	cascaded    []string
}

func newMemCrewRepo() *memCrewRepo {
	return &memCrewRepo{
		profiles:    make(map[string]models.CrewMember),
		assignments: make(map[string][]string),
	}
}

func (m *memCrewRepo) Create(_ context.Context, member *models.CrewMember) error {
	if member.ID == "" {
		member.ID = "crew-" + member.MID + "-" + member.Designation
	}
	m.profiles[member.ID] = *member
	return nil
}

func (m *memCrewRepo) GetByID(_ context.Context, id string) (*models.CrewMember, error) {
	member, ok := m.profiles[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &member, nil
}

func (m *memCrewRepo) GetByMID(_ context.Context, mid string) ([]models.CrewMember, error) {
	var out []models.CrewMember
	for _, member := range m.profiles {
		if member.MID == mid {
			out = append(out, member)
		}
	}
	return out, nil
}

func (m *memCrewRepo) GetAll(_ context.Context) ([]models.CrewMember, error) {
	var out []models.CrewMember
	for _, member := range m.profiles {
		out = append(out, member)
	}
	return out, nil
}

func (m *memCrewRepo) Update(_ context.Context, member *models.CrewMember) error {
	if _, ok := m.profiles[member.ID]; !ok {
		return errors.New("not found")
	}
	m.profiles[member.ID] = *member
	return nil
}

func (m *memCrewRepo) DeleteCascade(_ context.Context, id string) error {
	delete(m.profiles, id)
	delete(m.assignments, id)
	m.cascaded = append(m.cascaded, id)
	return nil
}

func (m *memCrewRepo) EnsureIndexes() error { return nil }

func newCrewService(repo *memCrewRepo) *DefaultCrewService {
	return &DefaultCrewService{Repo: repo, Logger: zap.NewNop()}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newCrewService(newMemCrewRepo())

	_, err := svc.RegisterCrewMember(context.Background(), models.CrewMember{
		Name: "  ", MID: "MID-1", Designation: "Gaffer",
	})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestRegisterRejectsNegativeWage(t *testing.T) {
	svc := newCrewService(newMemCrewRepo())

	_, err := svc.RegisterCrewMember(context.Background(), models.CrewMember{
		Name: "Asha", MID: "MID-1", Designation: "Gaffer", DailyWage: -100,
	})
	if !errors.Is(err, ErrInvalidWage) {
		t.Fatalf("expected ErrInvalidWage, got %v", err)
	}
}

func TestSamePersonCanHoldTwoRoleProfiles(t *testing.T) {
	repo := newMemCrewRepo()
	svc := newCrewService(repo)
	ctx := context.Background()

	if _, err := svc.RegisterCrewMember(ctx, models.CrewMember{
		Name: "Asha", MID: "MID-1", Designation: "Gaffer", DailyWage: 8000,
	}); err != nil {
		t.Fatalf("first profile: %v", err)
	}
	if _, err := svc.RegisterCrewMember(ctx, models.CrewMember{
		Name: "Asha", MID: "MID-1", Designation: "Best Boy", DailyWage: 6000,
	}); err != nil {
		t.Fatalf("second profile: %v", err)
	}

	profiles, err := svc.GetRoleProfiles(ctx, "MID-1")
	if err != nil {
		t.Fatalf("GetRoleProfiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 role profiles, got %d", len(profiles))
	}
}

func TestDeleteCascadesThroughRepository(t *testing.T) {
	repo := newMemCrewRepo()
	svc := newCrewService(repo)
	ctx := context.Background()

	created, err := svc.RegisterCrewMember(ctx, models.CrewMember{
		Name: "Asha", MID: "MID-1", Designation: "Gaffer", DailyWage: 8000,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	repo.assignments[created.ID] = []string{"proj-1", "proj-2"}

	if err := svc.DeleteCrewMember(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetCrewMember(ctx, created.ID); err == nil {
		t.Fatal("profile still retrievable after delete")
	}
	if len(repo.cascaded) != 1 || repo.cascaded[0] != created.ID {
		t.Fatalf("expected one cascade delete for %s, got %v", created.ID, repo.cascaded)
	}
	if _, ok := repo.assignments[created.ID]; ok {
		t.Fatal("project assignments survived the cascade")
	}
}
