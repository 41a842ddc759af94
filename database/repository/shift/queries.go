// File: database/repository/shift/queries.go
package shiftRepo

import (
	"context"
	"time"

	"crewledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoShiftRepo) findAll(ctx context.Context, filter bson.M) ([]models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *mongoShiftRepo) GetByCrewAndProject(ctx context.Context, crewID, projectID string) ([]models.Shift, error) {
	return r.findAll(ctx, bson.M{"crewId": crewID, "projectId": projectID})
}

func (r *mongoShiftRepo) GetByProject(ctx context.Context, projectID string) ([]models.Shift, error) {
	return r.findAll(ctx, bson.M{"projectId": projectID})
}

func (r *mongoShiftRepo) GetByCrew(ctx context.Context, crewID string) ([]models.Shift, error) {
	return r.findAll(ctx, bson.M{"crewId": crewID})
}

func (r *mongoShiftRepo) GetByMID(ctx context.Context, mid string) ([]models.Shift, error) {
	return r.findAll(ctx, bson.M{"mid": mid})
}

func (r *mongoShiftRepo) GetByDateRange(ctx context.Context, projectID, from, to string) ([]models.Shift, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	if projectID != "" {
		filter["projectId"] = projectID
	}
	return r.findAll(ctx, filter)
}

// ForEach walks the whole collection with a cursor so the audit sweep does
// not hold every shift in memory at once.
func (r *mongoShiftRepo) ForEach(ctx context.Context, fn func(shift models.Shift) error) error {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var shift models.Shift
		if err := cursor.Decode(&shift); err != nil {
			return err
		}
		if err := fn(shift); err != nil {
			return err
		}
	}
	return cursor.Err()
}
