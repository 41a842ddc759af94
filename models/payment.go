package models

// Payment is the audit record of one lump sum paid against a role profile's
// outstanding shift balances on a project. Payments are never edited;
// reversing one deletes the record and undoes its effect on the shifts.
type Payment struct {
	ID        string  `bson:"id" json:"id"` // ULID; sorts by creation time
	CrewID    string  `bson:"crewId" json:"crewId"`
	MID       string  `bson:"mid" json:"mid"`
	ProjectID string  `bson:"projectId" json:"projectId"`
	Amount    float64 `bson:"amount" json:"amount"`
	Date      string  `bson:"date" json:"date"` // ISO-8601 timestamp
}
