// File: database/repository/shift/interface.go
package shiftRepo

import (
	"context"

	"crewledger/database"
	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ShiftRepository manages attendance shift documents. Uniqueness of
// (crewId, projectId, date) is enforced by a unique compound index.
type ShiftRepository interface {
	Create(ctx context.Context, shift *models.Shift) error
	GetByID(ctx context.Context, id string) (*models.Shift, error)
	GetByCrewAndProject(ctx context.Context, crewID, projectID string) ([]models.Shift, error)
	GetByProject(ctx context.Context, projectID string) ([]models.Shift, error)
	GetByCrew(ctx context.Context, crewID string) ([]models.Shift, error)
	GetByMID(ctx context.Context, mid string) ([]models.Shift, error)
	GetByDateRange(ctx context.Context, projectID, from, to string) ([]models.Shift, error)
	Update(ctx context.Context, shift *models.Shift) error
	Delete(ctx context.Context, id string) error

	// ForEach streams every shift through fn; used by the status audit sweep.
	ForEach(ctx context.Context, fn func(shift models.Shift) error) error

	EnsureIndexes() error
}

type mongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo constructs a new MongoDB ShiftRepository.
func NewMongoShiftRepo() ShiftRepository {
	db := database.DB()
	return &mongoShiftRepo{
		coll: db.Collection("shifts"),
	}
}
