package finance

import (
	"context"
	"errors"
	"testing"

	ledgerRepo "crewledger/database/repository/ledger"
	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ── Fake ledger ──
//
// The fake stages every mutation on copies and only commits them when the
// transaction callback succeeds, mirroring the mongo session semantics the
// coordinator relies on.

type fakeLedger struct {
	shifts    []models.Shift
	payments  map[string]models.Payment
	updateErr error // injected shift write failure
}

func newFakeLedger(shifts ...models.Shift) *fakeLedger {
	return &fakeLedger{
		shifts:   shifts,
		payments: make(map[string]models.Payment),
	}
}

func (l *fakeLedger) PaymentByID(_ context.Context, id string) (*models.Payment, error) {
	payment, ok := l.payments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &payment, nil
}

func (l *fakeLedger) PaymentsFor(_ context.Context, crewID, projectID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range l.payments {
		if p.CrewID == crewID && p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (l *fakeLedger) PaymentsByProject(_ context.Context, projectID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range l.payments {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (l *fakeLedger) EnsureIndexes() error { return nil }

func (l *fakeLedger) WithTransaction(_ context.Context, fn func(tx ledgerRepo.LedgerTx) error) error {
	staged := &fakeTx{
		shifts:    append([]models.Shift(nil), l.shifts...),
		payments:  make(map[string]models.Payment, len(l.payments)),
		updateErr: l.updateErr,
	}
	for id, p := range l.payments {
		staged.payments[id] = p
	}

	if err := fn(staged); err != nil {
		return err
	}
	l.shifts = staged.shifts
	l.payments = staged.payments
	return nil
}

type fakeTx struct {
	shifts    []models.Shift
	payments  map[string]models.Payment
	updateErr error
}

func (t *fakeTx) ShiftsFor(crewID, projectID string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range t.shifts {
		if s.CrewID == crewID && s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (t *fakeTx) UpdateShifts(shifts []models.Shift) error {
	if t.updateErr != nil {
		return t.updateErr
	}
	for _, updated := range shifts {
		for i := range t.shifts {
			if t.shifts[i].ID == updated.ID {
				t.shifts[i].PaidAmount = updated.PaidAmount
				t.shifts[i].Status = updated.Status
			}
		}
	}
	return nil
}

func (t *fakeTx) InsertPayment(payment *models.Payment) error {
	t.payments[payment.ID] = *payment
	return nil
}

func (t *fakeTx) DeletePayment(paymentID string) error {
	if _, ok := t.payments[paymentID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(t.payments, paymentID)
	return nil
}

// ── Fake crew repository ──

type fakeCrewRepo struct {
	members map[string]models.CrewMember
}

func (r *fakeCrewRepo) Create(_ context.Context, _ *models.CrewMember) error { return nil }
func (r *fakeCrewRepo) Update(_ context.Context, _ *models.CrewMember) error { return nil }
func (r *fakeCrewRepo) DeleteCascade(_ context.Context, _ string) error      { return nil }
func (r *fakeCrewRepo) EnsureIndexes() error                                 { return nil }

func (r *fakeCrewRepo) GetByID(_ context.Context, id string) (*models.CrewMember, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &member, nil
}

func (r *fakeCrewRepo) GetByMID(_ context.Context, mid string) ([]models.CrewMember, error) {
	var out []models.CrewMember
	for _, m := range r.members {
		if m.MID == mid {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeCrewRepo) GetAll(_ context.Context) ([]models.CrewMember, error) {
	var out []models.CrewMember
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

// ── Helpers ──

func projectShift(id, date string, earned, paid float64) models.Shift {
	return models.Shift{
		ID:           id,
		CrewID:       "crew-1",
		MID:          "mid-1",
		ProjectID:    "proj-1",
		Date:         date,
		Duration:     1,
		EarnedAmount: earned,
		PaidAmount:   paid,
		Status:       Status(earned, paid),
	}
}

func newTestService(ledger *fakeLedger) *DefaultFinanceService {
	return &DefaultFinanceService{
		Ledger: ledger,
		Crew: &fakeCrewRepo{members: map[string]models.CrewMember{
			"crew-1": {ID: "crew-1", MID: "mid-1", Name: "Ravi Kumar", Designation: "Gaffer"},
		}},
		Logger: zap.NewNop(),
	}
}

// ── Tests ──

func TestRecordPaymentRejectsNonPositiveAmounts(t *testing.T) {
	ledger := newFakeLedger(projectShift("s1", "2024-01-01", 1000, 0))
	svc := newTestService(ledger)

	for _, amount := range []float64{0, -500} {
		if _, err := svc.RecordPayment(context.Background(), "crew-1", "proj-1", amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %v: got %v, want ErrInvalidAmount", amount, err)
		}
	}
	if len(ledger.payments) != 0 {
		t.Errorf("no payment should be written on validation failure")
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	ledger := newFakeLedger(
		projectShift("s1", "2024-01-01", 600, 0),
		projectShift("s2", "2024-01-02", 400, 0),
	)
	svc := newTestService(ledger)

	_, err := svc.RecordPayment(context.Background(), "crew-1", "proj-1", 1001)
	if !errors.Is(err, ErrOverpayment) {
		t.Fatalf("got %v, want ErrOverpayment", err)
	}

	for _, shift := range ledger.shifts {
		if shift.PaidAmount != 0 || shift.Status != models.StatusNotPaid {
			t.Errorf("shift %s changed despite rejection: %+v", shift.ID, shift)
		}
	}
	if len(ledger.payments) != 0 {
		t.Errorf("payment written despite rejection")
	}
}

func TestRecordPaymentSettlesOldestShiftsFirst(t *testing.T) {
	ledger := newFakeLedger(
		projectShift("s1", "2024-01-01", 1000, 0),
		projectShift("s2", "2024-01-05", 1000, 0),
	)
	svc := newTestService(ledger)

	payment, err := svc.RecordPayment(context.Background(), "crew-1", "proj-1", 1500)
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if payment.MID != "mid-1" || payment.Amount != 1500 {
		t.Errorf("payment record mismatch: %+v", payment)
	}
	if _, ok := ledger.payments[payment.ID]; !ok {
		t.Fatalf("payment record not persisted")
	}

	byID := map[string]models.Shift{}
	for _, shift := range ledger.shifts {
		byID[shift.ID] = shift
	}
	if s := byID["s1"]; s.PaidAmount != 1000 || s.Status != models.StatusPaid {
		t.Errorf("oldest shift should be fully settled: %+v", s)
	}
	if s := byID["s2"]; s.PaidAmount != 500 || s.Status != models.StatusPartiallyPaid {
		t.Errorf("newer shift should hold the remainder: %+v", s)
	}
}

func TestRecordThenReverseRestoresShifts(t *testing.T) {
	ledger := newFakeLedger(
		projectShift("s1", "2024-01-01", 1000, 0),
		projectShift("s2", "2024-01-05", 1000, 0),
	)
	svc := newTestService(ledger)

	payment, err := svc.RecordPayment(context.Background(), "crew-1", "proj-1", 1500)
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if err := svc.ReversePayment(context.Background(), payment.ID); err != nil {
		t.Fatalf("ReversePayment failed: %v", err)
	}

	for _, shift := range ledger.shifts {
		if shift.PaidAmount != 0 || shift.Status != models.StatusNotPaid {
			t.Errorf("shift %s not restored: %+v", shift.ID, shift)
		}
	}
	if len(ledger.payments) != 0 {
		t.Errorf("payment record should be deleted on reversal")
	}
}

func TestReversePaymentUnknownID(t *testing.T) {
	svc := newTestService(newFakeLedger())

	if err := svc.ReversePayment(context.Background(), "no-such-payment"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("got %v, want ErrPaymentNotFound", err)
	}
}

func TestRecordPaymentWriteFailureCommitsNothing(t *testing.T) {
	ledger := newFakeLedger(projectShift("s1", "2024-01-01", 1000, 0))
	ledger.updateErr = errors.New("ledger write failed")
	svc := newTestService(ledger)

	_, err := svc.RecordPayment(context.Background(), "crew-1", "proj-1", 500)
	if err == nil {
		t.Fatalf("expected propagated write failure")
	}
	if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrOverpayment) {
		t.Fatalf("store failure must not masquerade as a validation error: %v", err)
	}
	if ledger.shifts[0].PaidAmount != 0 || len(ledger.payments) != 0 {
		t.Errorf("partial state committed after write failure: %+v", ledger.shifts[0])
	}
}
