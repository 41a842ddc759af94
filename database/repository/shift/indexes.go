// FILE: database/repository/shift/indexes.go
package shiftRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the shifts collection.
func (r *mongoShiftRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One shift per role profile per project per date.
		{
			Keys:    bson.D{{Key: "crewId", Value: 1}, {Key: "projectId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_crew_project_date"),
		},
		{
			Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("project_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "mid", Value: 1}},
			Options: options.Index().SetName("mid_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create shift indexes: %w", err)
	}
	return nil
}
