package shift

import (
	"context"
	"fmt"
	"math"
	"time"

	"crewledger/models"
	"crewledger/services/finance"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const maxDuration = 3 // longest plausible stretch logged as a single record

func validDuration(d float64) bool {
	if d <= 0 || d > maxDuration {
		return false
	}
	// Durations come in quarter-shift steps (0.25, 0.5, ... 3).
	quarters := d * 4
	return math.Abs(quarters-math.Round(quarters)) < 1e-9
}

// LogShift records one attendance entry. The wage is snapshotted from the
// project assignment (or the operator's explicit override) and the earned
// amount fixed at wage*duration + conveyance.
func (s *DefaultShiftService) LogShift(ctx context.Context, input LogShiftInput) (*models.Shift, error) {
	if !validDuration(input.Duration) {
		return nil, ErrInvalidDuration
	}
	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	member, err := s.Crew.GetByID(ctx, input.CrewID)
	if err != nil {
		return nil, fmt.Errorf("crew profile %s not found: %w", input.CrewID, err)
	}
	project, err := s.Projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("project %s not found: %w", input.ProjectID, err)
	}
	assignment := project.AssignmentFor(input.CrewID)
	if assignment == nil {
		return nil, ErrNotAssigned
	}

	wage := input.DailyWage
	if wage == 0 {
		wage = assignment.DailyWage
	}
	earned := wage*input.Duration + input.Conveyance

	shift := &models.Shift{
		CrewID:       member.ID,
		MID:          member.MID,
		Mobile:       member.Mobile,
		ProjectID:    project.ID,
		Designation:  assignment.Designation,
		DailyWage:    wage,
		Date:         input.Date,
		Day:          day.Weekday().String(),
		CallTime:     input.CallTime,
		ShiftInTime:  input.ShiftInTime,
		ShiftOutTime: input.ShiftOutTime,
		ShiftOutDate: input.ShiftOutDate,
		Duration:     input.Duration,
		Conveyance:   input.Conveyance,
		EarnedAmount: earned,
		PaidAmount:   0,
		Status:       finance.Status(earned, 0),
		Notes:        input.Notes,
	}

	if err := s.Repo.Create(ctx, shift); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateShift
		}
		return nil, err
	}

	finance.InvalidateSummaries(ctx, s.Cache, shift.CrewID, shift.ProjectID, shift.MID)
	s.Logger.Info("shift logged",
		zap.String("shiftId", shift.ID),
		zap.String("crewId", shift.CrewID),
		zap.String("projectId", shift.ProjectID),
		zap.String("date", shift.Date),
		zap.Float64("earned", earned),
	)
	return shift, nil
}

// UpdateShift applies an explicit edit. This is the only path that changes a
// shift's wage snapshot; the earned amount is recomputed from the edited
// fields and the status re-derived. An edit may not push the earned amount
// below what has already been paid.
func (s *DefaultShiftService) UpdateShift(ctx context.Context, id string, input UpdateShiftInput) (*models.Shift, error) {
	shift, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Duration != nil {
		if !validDuration(*input.Duration) {
			return nil, ErrInvalidDuration
		}
		shift.Duration = *input.Duration
	}
	if input.DailyWage != nil {
		shift.DailyWage = *input.DailyWage
	}
	if input.Conveyance != nil {
		shift.Conveyance = *input.Conveyance
	}
	if input.CallTime != nil {
		shift.CallTime = *input.CallTime
	}
	if input.ShiftInTime != nil {
		shift.ShiftInTime = *input.ShiftInTime
	}
	if input.ShiftOutTime != nil {
		shift.ShiftOutTime = *input.ShiftOutTime
	}
	if input.ShiftOutDate != nil {
		shift.ShiftOutDate = *input.ShiftOutDate
	}
	if input.Notes != nil {
		shift.Notes = *input.Notes
	}

	shift.EarnedAmount = shift.DailyWage*shift.Duration + shift.Conveyance
	if shift.PaidAmount > shift.EarnedAmount {
		return nil, ErrPaidExceedsEarned
	}
	shift.Status = finance.Status(shift.EarnedAmount, shift.PaidAmount)

	if err := s.Repo.Update(ctx, shift); err != nil {
		return nil, err
	}

	finance.InvalidateSummaries(ctx, s.Cache, shift.CrewID, shift.ProjectID, shift.MID)
	s.Logger.Info("shift updated", zap.String("shiftId", shift.ID))
	return shift, nil
}

func (s *DefaultShiftService) DeleteShift(ctx context.Context, id string) error {
	shift, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	finance.InvalidateSummaries(ctx, s.Cache, shift.CrewID, shift.ProjectID, shift.MID)
	s.Logger.Info("shift deleted", zap.String("shiftId", id))
	return nil
}

func (s *DefaultShiftService) GetShift(ctx context.Context, id string) (*models.Shift, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultShiftService) ListByProject(ctx context.Context, projectID string) ([]models.Shift, error) {
	return s.Repo.GetByProject(ctx, projectID)
}

func (s *DefaultShiftService) ListByCrew(ctx context.Context, crewID string) ([]models.Shift, error) {
	return s.Repo.GetByCrew(ctx, crewID)
}

func (s *DefaultShiftService) ListByDateRange(ctx context.Context, projectID, from, to string) ([]models.Shift, error) {
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return nil, ErrInvalidDate
	}
	return s.Repo.GetByDateRange(ctx, projectID, from, to)
}
