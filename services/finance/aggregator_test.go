package finance

import (
	"testing"

	"crewledger/models"
)

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		name   string
		earned float64
		paid   float64
		want   string
	}{
		{"fully paid", 1000, 1000, models.StatusPaid},
		{"overpaid clamps to paid", 1000, 1200, models.StatusPaid},
		{"partially paid", 1000, 400, models.StatusPartiallyPaid},
		{"not paid", 1000, 0, models.StatusNotPaid},
		{"nothing owed", 0, 0, models.StatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.earned, tc.paid); got != tc.want {
				t.Errorf("Status(%v, %v) = %q, want %q", tc.earned, tc.paid, got, tc.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	shifts := []models.Shift{
		{Duration: 1, EarnedAmount: 5000, PaidAmount: 5000},
		{Duration: 0.5, EarnedAmount: 2500, PaidAmount: 1000},
		{Duration: 1.25, EarnedAmount: 6250, PaidAmount: 0},
	}

	summary := Summarize(shifts)

	if summary.TotalShifts != 2.75 {
		t.Errorf("TotalShifts = %v, want 2.75", summary.TotalShifts)
	}
	if summary.TotalEarning != 13750 {
		t.Errorf("TotalEarning = %v, want 13750", summary.TotalEarning)
	}
	if summary.TotalPaid != 6000 {
		t.Errorf("TotalPaid = %v, want 6000", summary.TotalPaid)
	}
	if summary.Balance != 7750 {
		t.Errorf("Balance = %v, want 7750", summary.Balance)
	}
	if summary.PaymentStatus != models.StatusPartiallyPaid {
		t.Errorf("PaymentStatus = %q, want %q", summary.PaymentStatus, models.StatusPartiallyPaid)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalShifts != 0 || summary.TotalEarning != 0 || summary.TotalPaid != 0 || summary.Balance != 0 {
		t.Errorf("empty input should yield all-zero totals, got %+v", summary)
	}
	if summary.PaymentStatus != models.StatusPaid {
		t.Errorf("empty input status = %q, want %q", summary.PaymentStatus, models.StatusPaid)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	shifts := []models.Shift{
		{Duration: 1, EarnedAmount: 5000, PaidAmount: 2500},
		{Duration: 1, EarnedAmount: 3500, PaidAmount: 0},
	}

	first := Summarize(shifts)
	second := Summarize(shifts)

	if first != second {
		t.Errorf("repeated aggregation diverged: %+v vs %+v", first, second)
	}
	// Aggregation must not mutate its input.
	if shifts[0].PaidAmount != 2500 || shifts[1].PaidAmount != 0 {
		t.Errorf("Summarize mutated input shifts: %+v", shifts)
	}
}
