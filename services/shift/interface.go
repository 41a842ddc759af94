package shift

import (
	"context"

	crewRepo "crewledger/database/repository/crew"
	projectRepo "crewledger/database/repository/project"
	shiftRepo "crewledger/database/repository/shift"
	"crewledger/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LogShiftInput carries the operator's attendance entry. DailyWage is
// optional; when zero the project assignment's wage is snapshotted.
type LogShiftInput struct {
	CrewID       string  `json:"crewId" binding:"required"`
	ProjectID    string  `json:"projectId" binding:"required"`
	Date         string  `json:"date" binding:"required"` // "YYYY-MM-DD"
	Duration     float64 `json:"shiftDuration" binding:"required"`
	DailyWage    float64 `json:"dailyWage"`
	Conveyance   float64 `json:"conveyance"`
	CallTime     string  `json:"callTime"`
	ShiftInTime  string  `json:"shiftInTime"`
	ShiftOutTime string  `json:"shiftOutTime"`
	ShiftOutDate string  `json:"shiftOutDate"`
	Notes        string  `json:"notes"`
}

// UpdateShiftInput edits an existing shift. Nil fields are left untouched;
// wage, duration and conveyance edits recompute the earned amount.
type UpdateShiftInput struct {
	Duration     *float64 `json:"shiftDuration"`
	DailyWage    *float64 `json:"dailyWage"`
	Conveyance   *float64 `json:"conveyance"`
	CallTime     *string  `json:"callTime"`
	ShiftInTime  *string  `json:"shiftInTime"`
	ShiftOutTime *string  `json:"shiftOutTime"`
	ShiftOutDate *string  `json:"shiftOutDate"`
	Notes        *string  `json:"notes"`
}

// ShiftService manages attendance records. Earned amounts are wage snapshots:
// they are computed when a shift is logged or explicitly edited, never
// re-derived from the project's or profile's current wage.
type ShiftService interface {
	LogShift(ctx context.Context, input LogShiftInput) (*models.Shift, error)
	UpdateShift(ctx context.Context, id string, input UpdateShiftInput) (*models.Shift, error)
	DeleteShift(ctx context.Context, id string) error
	GetShift(ctx context.Context, id string) (*models.Shift, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Shift, error)
	ListByCrew(ctx context.Context, crewID string) ([]models.Shift, error)
	ListByDateRange(ctx context.Context, projectID, from, to string) ([]models.Shift, error)
}

// DefaultShiftService is the production implementation.
type DefaultShiftService struct {
	Repo     shiftRepo.ShiftRepository
	Crew     crewRepo.CrewRepository
	Projects projectRepo.ProjectRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}
