// File: database/repository/shift/crud.go
package shiftRepo

import (
	"context"
	"fmt"
	"time"

	"crewledger/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoShiftRepo) Create(ctx context.Context, shift *models.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, shift); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}

func (r *mongoShiftRepo) GetByID(ctx context.Context, id string) (*models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var shift models.Shift
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *mongoShiftRepo) Update(ctx context.Context, shift *models.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": shift.ID}, shift)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoShiftRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
