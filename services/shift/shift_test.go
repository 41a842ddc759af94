package shift

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ── Fakes ──

type memShiftRepo struct {
	shifts map[string]*models.Shift
	nextID int
}

func newMemShiftRepo() *memShiftRepo {
	return &memShiftRepo{shifts: make(map[string]*models.Shift)}
}

func (r *memShiftRepo) Create(_ context.Context, shift *models.Shift) error {
	for _, existing := range r.shifts {
		if existing.CrewID == shift.CrewID && existing.ProjectID == shift.ProjectID && existing.Date == shift.Date {
			// Same shape the unique index produces.
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	if shift.ID == "" {
		r.nextID++
		shift.ID = fmt.Sprintf("shift-%d", r.nextID)
	}
	clone := *shift
	r.shifts[shift.ID] = &clone
	return nil
}

func (r *memShiftRepo) GetByID(_ context.Context, id string) (*models.Shift, error) {
	shift, ok := r.shifts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *shift
	return &clone, nil
}

func (r *memShiftRepo) Update(_ context.Context, shift *models.Shift) error {
	if _, ok := r.shifts[shift.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *shift
	r.shifts[shift.ID] = &clone
	return nil
}

func (r *memShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.shifts, id)
	return nil
}

func (r *memShiftRepo) all() []models.Shift {
	var out []models.Shift
	for _, s := range r.shifts {
		out = append(out, *s)
	}
	return out
}

func (r *memShiftRepo) GetByCrewAndProject(_ context.Context, crewID, projectID string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.all() {
		if s.CrewID == crewID && s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShiftRepo) GetByProject(_ context.Context, projectID string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.all() {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShiftRepo) GetByCrew(_ context.Context, crewID string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.all() {
		if s.CrewID == crewID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShiftRepo) GetByMID(_ context.Context, mid string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.all() {
		if s.MID == mid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShiftRepo) GetByDateRange(_ context.Context, projectID, from, to string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.all() {
		if (projectID == "" || s.ProjectID == projectID) && s.Date >= from && s.Date <= to {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memShiftRepo) ForEach(_ context.Context, fn func(models.Shift) error) error {
	for _, s := range r.all() {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *memShiftRepo) EnsureIndexes() error { return nil }

type stubCrewRepo struct {
	member models.CrewMember
}

func (r *stubCrewRepo) Create(_ context.Context, _ *models.CrewMember) error { return nil }
func (r *stubCrewRepo) Update(_ context.Context, _ *models.CrewMember) error { return nil }
func (r *stubCrewRepo) DeleteCascade(_ context.Context, _ string) error      { return nil }
func (r *stubCrewRepo) EnsureIndexes() error                                 { return nil }
func (r *stubCrewRepo) GetAll(_ context.Context) ([]models.CrewMember, error) {
	return []models.CrewMember{r.member}, nil
}
func (r *stubCrewRepo) GetByMID(_ context.Context, _ string) ([]models.CrewMember, error) {
	return []models.CrewMember{r.member}, nil
}
func (r *stubCrewRepo) GetByID(_ context.Context, id string) (*models.CrewMember, error) {
	if id != r.member.ID {
		return nil, mongo.ErrNoDocuments
	}
	clone := r.member
	return &clone, nil
}

type stubProjectRepo struct {
	project models.Project
}

func (r *stubProjectRepo) Create(_ context.Context, _ *models.Project) error { return nil }
func (r *stubProjectRepo) Update(_ context.Context, _ *models.Project) error { return nil }
func (r *stubProjectRepo) Delete(_ context.Context, _ string) error          { return nil }
func (r *stubProjectRepo) EnsureIndexes() error                              { return nil }
func (r *stubProjectRepo) GetAll(_ context.Context) ([]models.Project, error) {
	return []models.Project{r.project}, nil
}
func (r *stubProjectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	if id != r.project.ID {
		return nil, mongo.ErrNoDocuments
	}
	clone := r.project
	return &clone, nil
}
func (r *stubProjectRepo) AddAssignment(_ context.Context, _ string, _ models.ProjectCrewAssignment) error {
	return nil
}
func (r *stubProjectRepo) UpdateAssignment(_ context.Context, _ string, _ models.ProjectCrewAssignment) error {
	return nil
}
func (r *stubProjectRepo) RemoveAssignment(_ context.Context, _, _ string) error { return nil }

func newTestShiftService(repo *memShiftRepo) *DefaultShiftService {
	return &DefaultShiftService{
		Repo: repo,
		Crew: &stubCrewRepo{member: models.CrewMember{
			ID: "crew-1", MID: "mid-1", Name: "Ravi Kumar", Mobile: "9876543213", Designation: "Gaffer", DailyWage: 5000,
		}},
		Projects: &stubProjectRepo{project: models.Project{
			ID:   "proj-1",
			Name: "Project Alpha",
			Crew: []models.ProjectCrewAssignment{
				{CrewID: "crew-1", MID: "mid-1", Designation: "Gaffer", DailyWage: 6000},
			},
		}},
		Logger: zap.NewNop(),
	}
}

// ── Tests ──

func TestLogShiftComputesEarnedFromAssignmentWage(t *testing.T) {
	svc := newTestShiftService(newMemShiftRepo())

	shift, err := svc.LogShift(context.Background(), LogShiftInput{
		CrewID:     "crew-1",
		ProjectID:  "proj-1",
		Date:       "2024-07-15",
		Duration:   1.25,
		Conveyance: 200,
	})
	if err != nil {
		t.Fatalf("LogShift failed: %v", err)
	}

	// Assignment wage 6000 overrides the profile's base wage 5000.
	if shift.DailyWage != 6000 {
		t.Errorf("DailyWage = %v, want assignment wage 6000", shift.DailyWage)
	}
	if shift.EarnedAmount != 6000*1.25+200 {
		t.Errorf("EarnedAmount = %v, want %v", shift.EarnedAmount, 6000*1.25+200)
	}
	if shift.Status != models.StatusNotPaid || shift.PaidAmount != 0 {
		t.Errorf("fresh shift should be unpaid: %+v", shift)
	}
	if shift.Designation != "Gaffer" || shift.MID != "mid-1" || shift.Day != "Monday" {
		t.Errorf("denormalized fields wrong: %+v", shift)
	}
}

func TestLogShiftWageOverride(t *testing.T) {
	svc := newTestShiftService(newMemShiftRepo())

	shift, err := svc.LogShift(context.Background(), LogShiftInput{
		CrewID:    "crew-1",
		ProjectID: "proj-1",
		Date:      "2024-07-15",
		Duration:  1,
		DailyWage: 7500,
	})
	if err != nil {
		t.Fatalf("LogShift failed: %v", err)
	}
	if shift.DailyWage != 7500 || shift.EarnedAmount != 7500 {
		t.Errorf("explicit wage override ignored: %+v", shift)
	}
}

func TestLogShiftRejectsDuplicateDate(t *testing.T) {
	svc := newTestShiftService(newMemShiftRepo())
	input := LogShiftInput{CrewID: "crew-1", ProjectID: "proj-1", Date: "2024-07-15", Duration: 1}

	if _, err := svc.LogShift(context.Background(), input); err != nil {
		t.Fatalf("first LogShift failed: %v", err)
	}
	if _, err := svc.LogShift(context.Background(), input); !errors.Is(err, ErrDuplicateShift) {
		t.Fatalf("got %v, want ErrDuplicateShift", err)
	}
}

func TestLogShiftRejectsBadDurations(t *testing.T) {
	svc := newTestShiftService(newMemShiftRepo())

	for _, duration := range []float64{0, -1, 0.3, 3.25} {
		_, err := svc.LogShift(context.Background(), LogShiftInput{
			CrewID: "crew-1", ProjectID: "proj-1", Date: "2024-07-15", Duration: duration,
		})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("duration %v: got %v, want ErrInvalidDuration", duration, err)
		}
	}
}

func TestLogShiftRejectsUnassignedCrew(t *testing.T) {
	svc := newTestShiftService(newMemShiftRepo())
	svc.Projects = &stubProjectRepo{project: models.Project{ID: "proj-1", Name: "Project Alpha"}}

	_, err := svc.LogShift(context.Background(), LogShiftInput{
		CrewID: "crew-1", ProjectID: "proj-1", Date: "2024-07-15", Duration: 1,
	})
	if !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("got %v, want ErrNotAssigned", err)
	}
}

func TestUpdateShiftRecomputesEarnedAndStatus(t *testing.T) {
	repo := newMemShiftRepo()
	svc := newTestShiftService(repo)

	logged, err := svc.LogShift(context.Background(), LogShiftInput{
		CrewID: "crew-1", ProjectID: "proj-1", Date: "2024-07-15", Duration: 1,
	})
	if err != nil {
		t.Fatalf("LogShift failed: %v", err)
	}

	half := 0.5
	updated, err := svc.UpdateShift(context.Background(), logged.ID, UpdateShiftInput{Duration: &half})
	if err != nil {
		t.Fatalf("UpdateShift failed: %v", err)
	}
	if updated.EarnedAmount != 3000 {
		t.Errorf("EarnedAmount = %v, want 3000", updated.EarnedAmount)
	}
	if updated.Status != models.StatusNotPaid {
		t.Errorf("Status = %q, want %q", updated.Status, models.StatusNotPaid)
	}
}

func TestUpdateShiftCannotUndercutPaidAmount(t *testing.T) {
	repo := newMemShiftRepo()
	svc := newTestShiftService(repo)

	logged, err := svc.LogShift(context.Background(), LogShiftInput{
		CrewID: "crew-1", ProjectID: "proj-1", Date: "2024-07-15", Duration: 1,
	})
	if err != nil {
		t.Fatalf("LogShift failed: %v", err)
	}

	// Simulate a payment having settled part of the shift.
	stored := repo.shifts[logged.ID]
	stored.PaidAmount = 4000
	stored.Status = models.StatusPartiallyPaid

	half := 0.5 // would drop earned to 3000, below the 4000 already paid
	if _, err := svc.UpdateShift(context.Background(), logged.ID, UpdateShiftInput{Duration: &half}); !errors.Is(err, ErrPaidExceedsEarned) {
		t.Fatalf("got %v, want ErrPaidExceedsEarned", err)
	}
}
