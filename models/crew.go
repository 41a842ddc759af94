package models

// CrewMember is one role profile: a specific designation held by a person.
// A person (identified by MID) may hold several profiles at once, e.g.
// "Gaffer" and "Best Boy" as separate documents sharing the same MID.
type CrewMember struct {
	ID          string  `bson:"id" json:"id"`
	MID         string  `bson:"mid" json:"mid"` // stable member id shared across a person's profiles
	Name        string  `bson:"name" json:"name"`
	Designation string  `bson:"designation" json:"designation"`
	Mobile      string  `bson:"mobile" json:"mobile"`
	Email       string  `bson:"email,omitempty" json:"email,omitempty"`
	Address     string  `bson:"address,omitempty" json:"address,omitempty"`
	Avatar      string  `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Notes       string  `bson:"notes,omitempty" json:"notes,omitempty"`
	DailyWage   float64 `bson:"dailyWage" json:"dailyWage"` // base wage; projects may override
}
