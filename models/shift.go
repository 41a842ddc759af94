package models

// Payment status values stored on shifts and reported on aggregates.
const (
	StatusPaid          = "Paid"
	StatusPartiallyPaid = "Partially Paid"
	StatusNotPaid       = "Not Paid"
)

// Shift is one attendance record: a crew role profile working (a fraction of)
// a day on a project. DailyWage and EarnedAmount are snapshots taken when the
// shift is logged; later changes to the project's or profile's wage never
// touch an existing shift. Only an explicit edit recomputes them.
type Shift struct {
	ID           string  `bson:"id" json:"id"`
	CrewID       string  `bson:"crewId" json:"crewId"` // role profile document id
	MID          string  `bson:"mid" json:"mid"`
	Mobile       string  `bson:"mobile,omitempty" json:"mobile,omitempty"`
	ProjectID    string  `bson:"projectId" json:"projectId"`
	Designation  string  `bson:"designation" json:"designation"`
	DailyWage    float64 `bson:"dailyWage" json:"dailyWage"`
	Date         string  `bson:"date" json:"date"` // shift-in date, "YYYY-MM-DD"
	Day          string  `bson:"day,omitempty" json:"day,omitempty"`
	CallTime     string  `bson:"callTime,omitempty" json:"callTime,omitempty"` // "HH:mm"
	ShiftInTime  string  `bson:"shiftInTime,omitempty" json:"shiftInTime,omitempty"`
	ShiftOutTime string  `bson:"shiftOutTime,omitempty" json:"shiftOutTime,omitempty"`
	ShiftOutDate string  `bson:"shiftOutDate,omitempty" json:"shiftOutDate,omitempty"`
	Duration     float64 `bson:"shiftDuration" json:"shiftDuration"` // in shifts, e.g. 1, 1.25, 0.5
	Conveyance   float64 `bson:"conveyance,omitempty" json:"conveyance,omitempty"`
	EarnedAmount float64 `bson:"earnedAmount" json:"earnedAmount"` // dailyWage*duration + conveyance
	PaidAmount   float64 `bson:"paidAmount" json:"paidAmount"`
	Status       string  `bson:"paymentStatus" json:"paymentStatus"`
	Notes        string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Balance is the shift's own outstanding amount.
func (s *Shift) Balance() float64 {
	return s.EarnedAmount - s.PaidAmount
}
