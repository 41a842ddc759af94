// File: database/repository/project/assignments.go
package projectRepo

import (
	"context"
	"fmt"
	"time"

	"crewledger/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrAssignmentExists is returned when a role profile already holds an
// assignment on the target project.
var ErrAssignmentExists = fmt.Errorf("crew profile already assigned to project")

// ErrAssignmentNotFound is returned when the target assignment does not exist.
var ErrAssignmentNotFound = fmt.Errorf("assignment not found on project")

func (r *mongoProjectRepo) AddAssignment(ctx context.Context, projectID string, assignment models.ProjectCrewAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Filter excludes projects that already carry this crewId, so the push
	// is conditional and the at-most-one invariant holds under concurrency.
	filter := bson.M{
		"id":          projectID,
		"crew.crewId": bson.M{"$ne": assignment.CrewID},
	}
	update := bson.M{"$push": bson.M{"crew": assignment}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add assignment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAssignmentExists
	}
	return nil
}

func (r *mongoProjectRepo) UpdateAssignment(ctx context.Context, projectID string, assignment models.ProjectCrewAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id": projectID,
		"crew": bson.M{
			"$elemMatch": bson.M{"crewId": assignment.CrewID},
		},
	}
	update := bson.M{"$set": bson.M{"crew.$": assignment}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *mongoProjectRepo) RemoveAssignment(ctx context.Context, projectID, crewID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": projectID}
	update := bson.M{"$pull": bson.M{"crew": bson.M{"crewId": crewID}}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	if res.ModifiedCount == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
