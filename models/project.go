package models

// ProjectCrewAssignment binds a crew role profile to a project with a
// project-scoped wage and designation. These may differ from the profile's
// defaults (a rate negotiated for this production only).
type ProjectCrewAssignment struct {
	CrewID      string  `bson:"crewId" json:"crewId"`
	MID         string  `bson:"mid" json:"mid"`
	Designation string  `bson:"designation" json:"designation"`
	DailyWage   float64 `bson:"dailyWage" json:"dailyWage"`
}

// Project represents one production with its embedded crew assignments.
// At most one assignment per crewId.
type Project struct {
	ID          string                  `bson:"id" json:"id"`
	Name        string                  `bson:"name" json:"name"`
	Status      string                  `bson:"status" json:"status"` // e.g. "Upcoming", "Ongoing", "Completed"
	Location    string                  `bson:"location,omitempty" json:"location,omitempty"`
	StartDate   string                  `bson:"startDate,omitempty" json:"startDate,omitempty"` // "YYYY-MM-DD"
	EndDate     string                  `bson:"endDate,omitempty" json:"endDate,omitempty"`
	DOP         string                  `bson:"dop,omitempty" json:"dop,omitempty"`
	Gaffer      string                  `bson:"gaffer,omitempty" json:"gaffer,omitempty"`
	BestBoy     string                  `bson:"bestBoy,omitempty" json:"bestBoy,omitempty"`
	Client      string                  `bson:"client,omitempty" json:"client,omitempty"`
	Description string                  `bson:"description,omitempty" json:"description,omitempty"`
	Notes       string                  `bson:"notes,omitempty" json:"notes,omitempty"`
	Crew        []ProjectCrewAssignment `bson:"crew" json:"crew"`
}

// AssignmentFor returns the project's assignment for the given role profile,
// or nil if the profile is not on this project's crew list.
func (p *Project) AssignmentFor(crewID string) *ProjectCrewAssignment {
	for i := range p.Crew {
		if p.Crew[i].CrewID == crewID {
			return &p.Crew[i]
		}
	}
	return nil
}
