package finance

import (
	"testing"

	"crewledger/models"
)

func unpaidShift(id, date string, earned float64) models.Shift {
	return models.Shift{
		ID:           id,
		Date:         date,
		EarnedAmount: earned,
		PaidAmount:   0,
		Status:       models.StatusNotPaid,
	}
}

func TestDistributeOldestFirst(t *testing.T) {
	// Deliberately out of chronological order.
	shifts := []models.Shift{
		unpaidShift("s2", "2024-01-05", 1000),
		unpaidShift("s1", "2024-01-01", 1000),
	}

	changed := distribute(shifts, 1500, opApply)

	if len(changed) != 2 {
		t.Fatalf("expected 2 changed shifts, got %d", len(changed))
	}
	if changed[0].ID != "s1" || changed[0].PaidAmount != 1000 || changed[0].Status != models.StatusPaid {
		t.Errorf("oldest shift not settled first: %+v", changed[0])
	}
	if changed[1].ID != "s2" || changed[1].PaidAmount != 500 || changed[1].Status != models.StatusPartiallyPaid {
		t.Errorf("newer shift should carry the remainder: %+v", changed[1])
	}
}

func TestDistributeConservation(t *testing.T) {
	shifts := []models.Shift{
		unpaidShift("s1", "2024-01-01", 700),
		unpaidShift("s2", "2024-01-02", 300),
		unpaidShift("s3", "2024-01-03", 1000),
	}

	changed := distribute(shifts, 1250, opApply)

	var allocated float64
	for _, shift := range changed {
		allocated += shift.PaidAmount
	}
	if allocated != 1250 {
		t.Errorf("allocated %v, want 1250", allocated)
	}
	for _, shift := range changed {
		if shift.PaidAmount < 0 || shift.PaidAmount > shift.EarnedAmount {
			t.Errorf("shift %s violates 0 <= paid <= earned: %+v", shift.ID, shift)
		}
	}
}

func TestDistributeSkipsSettledShifts(t *testing.T) {
	shifts := []models.Shift{
		{ID: "s1", Date: "2024-01-01", EarnedAmount: 1000, PaidAmount: 1000, Status: models.StatusPaid},
		unpaidShift("s2", "2024-01-02", 1000),
	}

	changed := distribute(shifts, 500, opApply)

	if len(changed) != 1 || changed[0].ID != "s2" {
		t.Fatalf("expected only the unsettled shift to change, got %+v", changed)
	}
	if changed[0].PaidAmount != 500 || changed[0].Status != models.StatusPartiallyPaid {
		t.Errorf("unexpected allocation: %+v", changed[0])
	}
}

func TestDistributeStopsWhenExhausted(t *testing.T) {
	// The distributor trusts the caller's balance check; with too little
	// capacity it under-allocates and stops rather than failing.
	shifts := []models.Shift{unpaidShift("s1", "2024-01-01", 300)}

	changed := distribute(shifts, 1000, opApply)

	if len(changed) != 1 || changed[0].PaidAmount != 300 {
		t.Errorf("expected allocation capped at shift capacity, got %+v", changed)
	}
}

func TestDistributeDoesNotMutateInput(t *testing.T) {
	shifts := []models.Shift{unpaidShift("s1", "2024-01-01", 1000)}

	distribute(shifts, 400, opApply)

	if shifts[0].PaidAmount != 0 || shifts[0].Status != models.StatusNotPaid {
		t.Errorf("input slice mutated: %+v", shifts[0])
	}
}

func TestReverseRestoresOldestFirst(t *testing.T) {
	shifts := []models.Shift{
		{ID: "s1", Date: "2024-01-01", EarnedAmount: 1000, PaidAmount: 1000, Status: models.StatusPaid},
		{ID: "s2", Date: "2024-01-05", EarnedAmount: 1000, PaidAmount: 500, Status: models.StatusPartiallyPaid},
	}

	changed := distribute(shifts, 1500, opReverse)

	if len(changed) != 2 {
		t.Fatalf("expected 2 changed shifts, got %d", len(changed))
	}
	if changed[0].ID != "s1" || changed[0].PaidAmount != 0 || changed[0].Status != models.StatusNotPaid {
		t.Errorf("oldest shift not reversed first: %+v", changed[0])
	}
	if changed[1].ID != "s2" || changed[1].PaidAmount != 0 || changed[1].Status != models.StatusNotPaid {
		t.Errorf("second shift not fully reversed: %+v", changed[1])
	}
}

func TestReverseNeverYieldsPaid(t *testing.T) {
	shifts := []models.Shift{
		{ID: "s1", Date: "2024-01-01", EarnedAmount: 1000, PaidAmount: 1000, Status: models.StatusPaid},
	}

	changed := distribute(shifts, 400, opReverse)

	if len(changed) != 1 {
		t.Fatalf("expected 1 changed shift, got %d", len(changed))
	}
	if changed[0].PaidAmount != 600 || changed[0].Status != models.StatusPartiallyPaid {
		t.Errorf("partial reversal should leave Partially Paid: %+v", changed[0])
	}
}

func TestReverseSkipsUnpaidShifts(t *testing.T) {
	shifts := []models.Shift{
		unpaidShift("s1", "2024-01-01", 1000),
		{ID: "s2", Date: "2024-01-02", EarnedAmount: 1000, PaidAmount: 800, Status: models.StatusPartiallyPaid},
	}

	changed := distribute(shifts, 800, opReverse)

	if len(changed) != 1 || changed[0].ID != "s2" {
		t.Fatalf("expected only the paid shift to change, got %+v", changed)
	}
	if changed[0].PaidAmount != 0 || changed[0].Status != models.StatusNotPaid {
		t.Errorf("unexpected reversal result: %+v", changed[0])
	}
}
