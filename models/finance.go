package models

// FinancialSummary is a derived aggregate over some grouping of shifts
// (a role on a project, a whole project, or a person across roles).
// It is computed on demand and never persisted.
type FinancialSummary struct {
	TotalShifts   float64 `json:"totalShifts"`
	TotalEarning  float64 `json:"totalEarning"`
	TotalPaid     float64 `json:"totalPaid"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"paymentStatus"`
}

// CrewFinancials pairs a role profile with its summary for report views.
type CrewFinancials struct {
	Crew    CrewMember       `json:"crew"`
	Summary FinancialSummary `json:"summary"`
}
