package finance

import (
	"context"
	"testing"

	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ── Fake shift repository ──

type fakeShiftRepo struct {
	shifts []models.Shift
}

func (r *fakeShiftRepo) Create(_ context.Context, _ *models.Shift) error { return nil }
func (r *fakeShiftRepo) Update(_ context.Context, _ *models.Shift) error { return nil }
func (r *fakeShiftRepo) Delete(_ context.Context, _ string) error        { return nil }
func (r *fakeShiftRepo) EnsureIndexes() error                            { return nil }

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (*models.Shift, error) {
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			return &r.shifts[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeShiftRepo) filter(keep func(models.Shift) bool) []models.Shift {
	var out []models.Shift
	for _, s := range r.shifts {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (r *fakeShiftRepo) GetByCrewAndProject(_ context.Context, crewID, projectID string) ([]models.Shift, error) {
	return r.filter(func(s models.Shift) bool { return s.CrewID == crewID && s.ProjectID == projectID }), nil
}

func (r *fakeShiftRepo) GetByProject(_ context.Context, projectID string) ([]models.Shift, error) {
	return r.filter(func(s models.Shift) bool { return s.ProjectID == projectID }), nil
}

func (r *fakeShiftRepo) GetByCrew(_ context.Context, crewID string) ([]models.Shift, error) {
	return r.filter(func(s models.Shift) bool { return s.CrewID == crewID }), nil
}

func (r *fakeShiftRepo) GetByMID(_ context.Context, mid string) ([]models.Shift, error) {
	return r.filter(func(s models.Shift) bool { return s.MID == mid }), nil
}

func (r *fakeShiftRepo) GetByDateRange(_ context.Context, projectID, from, to string) ([]models.Shift, error) {
	return r.filter(func(s models.Shift) bool {
		return (projectID == "" || s.ProjectID == projectID) && s.Date >= from && s.Date <= to
	}), nil
}

func (r *fakeShiftRepo) ForEach(_ context.Context, fn func(models.Shift) error) error {
	for _, s := range r.shifts {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

// ── Tests ──

func TestPersonSummarySpansRoleProfiles(t *testing.T) {
	// The same person (mid-1) holds two role profiles on different projects.
	svc := &DefaultFinanceService{
		Shifts: &fakeShiftRepo{shifts: []models.Shift{
			{ID: "s1", CrewID: "crew-1", MID: "mid-1", ProjectID: "proj-1", Date: "2024-01-01", Duration: 1, EarnedAmount: 5000, PaidAmount: 5000, Status: models.StatusPaid},
			{ID: "s2", CrewID: "crew-2", MID: "mid-1", ProjectID: "proj-2", Date: "2024-02-01", Duration: 1, EarnedAmount: 3500, PaidAmount: 0, Status: models.StatusNotPaid},
			{ID: "s3", CrewID: "crew-3", MID: "mid-2", ProjectID: "proj-1", Date: "2024-01-01", Duration: 1, EarnedAmount: 2000, PaidAmount: 0, Status: models.StatusNotPaid},
		}},
		Logger: zap.NewNop(),
	}

	summary, err := svc.PersonSummary(context.Background(), "mid-1")
	if err != nil {
		t.Fatalf("PersonSummary failed: %v", err)
	}
	if summary.TotalEarning != 8500 || summary.TotalPaid != 5000 || summary.Balance != 3500 {
		t.Errorf("unexpected lifetime totals: %+v", summary)
	}
	if summary.PaymentStatus != models.StatusPartiallyPaid {
		t.Errorf("status = %q, want %q", summary.PaymentStatus, models.StatusPartiallyPaid)
	}
}

func TestProjectCrewBreakdown(t *testing.T) {
	svc := &DefaultFinanceService{
		Shifts: &fakeShiftRepo{shifts: []models.Shift{
			{ID: "s1", CrewID: "crew-1", MID: "mid-1", ProjectID: "proj-1", Date: "2024-01-01", Duration: 1, EarnedAmount: 5000, PaidAmount: 5000},
			{ID: "s2", CrewID: "crew-1", MID: "mid-1", ProjectID: "proj-1", Date: "2024-01-02", Duration: 1, EarnedAmount: 5000, PaidAmount: 0},
			{ID: "s3", CrewID: "crew-2", MID: "mid-2", ProjectID: "proj-1", Date: "2024-01-01", Duration: 0.5, EarnedAmount: 1250, PaidAmount: 0},
		}},
		Crew: &fakeCrewRepo{members: map[string]models.CrewMember{
			"crew-1": {ID: "crew-1", MID: "mid-1", Name: "Ravi Kumar", Designation: "Gaffer"},
			"crew-2": {ID: "crew-2", MID: "mid-2", Name: "Sunita Verma", Designation: "Asst. Cameraman"},
		}},
		Logger: zap.NewNop(),
	}

	rows, err := svc.ProjectCrewBreakdown(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("ProjectCrewBreakdown failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Crew.ID != "crew-1" || first.Summary.TotalEarning != 10000 || first.Summary.Balance != 5000 {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Summary.PaymentStatus != models.StatusPartiallyPaid {
		t.Errorf("first row status = %q", first.Summary.PaymentStatus)
	}

	second := rows[1]
	if second.Crew.Name != "Sunita Verma" || second.Summary.TotalShifts != 0.5 {
		t.Errorf("unexpected second row: %+v", second)
	}
}
