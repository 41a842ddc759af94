package finance

import "crewledger/models"

// Status classifies a pair of earned/paid totals. The same rule is applied
// to a single shift on every write path and to aggregates of any grouping
// (role, project, person), so the two can never disagree.
//
// A grouping that has earned nothing and been paid nothing counts as Paid:
// nothing is owed.
func Status(earned, paid float64) string {
	switch {
	case earned > 0 && paid >= earned:
		return models.StatusPaid
	case paid > 0 && paid < earned:
		return models.StatusPartiallyPaid
	case paid == 0 && earned > 0:
		return models.StatusNotPaid
	default:
		return models.StatusPaid
	}
}

// Summarize reduces a collection of shifts to financial totals. It is a pure
// function: callers may slice the same shift set any number of ways (per
// role, per project, per person, lifetime) and re-aggregate freely.
func Summarize(shifts []models.Shift) models.FinancialSummary {
	var summary models.FinancialSummary
	for i := range shifts {
		summary.TotalShifts += shifts[i].Duration
		summary.TotalEarning += shifts[i].EarnedAmount
		summary.TotalPaid += shifts[i].PaidAmount
	}
	summary.Balance = summary.TotalEarning - summary.TotalPaid
	summary.PaymentStatus = Status(summary.TotalEarning, summary.TotalPaid)
	return summary
}
