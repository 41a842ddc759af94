// File: database/repository/crew/crud.go
package crewRepo

import (
	"context"
	"fmt"
	"time"

	"crewledger/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCrewRepo) Create(ctx context.Context, member *models.CrewMember) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return fmt.Errorf("failed to insert crew profile: %w", err)
	}
	return nil
}

func (r *mongoCrewRepo) GetByID(ctx context.Context, id string) (*models.CrewMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var member models.CrewMember
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *mongoCrewRepo) GetByMID(ctx context.Context, mid string) ([]models.CrewMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"mid": mid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.CrewMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *mongoCrewRepo) GetAll(ctx context.Context) ([]models.CrewMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.CrewMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *mongoCrewRepo) Update(ctx context.Context, member *models.CrewMember) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": member.ID}, member)
	if err != nil {
		return fmt.Errorf("failed to update crew profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteCascade deletes the crew profile and pulls its assignment out of every
// project in a single mongo session transaction, so a profile can never
// outlive its assignments or vice versa.
func (r *mongoCrewRepo) DeleteCascade(ctx context.Context, id string) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		res, err := r.coll.DeleteOne(sc, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("delete crew profile failed: %w", err)
		}
		if res.DeletedCount == 0 {
			return mongo.ErrNoDocuments
		}

		_, err = r.projectColl.UpdateMany(sc,
			bson.M{"crew.crewId": id},
			bson.M{"$pull": bson.M{"crew": bson.M{"crewId": id}}},
		)
		if err != nil {
			return fmt.Errorf("cascade removal from projects failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
