// File: database/repository/operator/crud.go
package operatorRepo

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

func (r *mongoOperatorRepo) Create(ctx context.Context, operator *models.Operator) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if operator.ID == "" {
		operator.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, operator); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to insert operator: %w", err)
	}
	return nil
}

func (r *mongoOperatorRepo) GetByID(ctx context.Context, id string) (*models.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var operator models.Operator
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&operator); err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *mongoOperatorRepo) GetByEmail(ctx context.Context, email string) (*models.Operator, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var operator models.Operator
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&operator); err != nil {
		return nil, err
	}
	return &operator, nil
}

// EnsureIndexes creates the necessary indexes on the operators collection.
func (r *mongoOperatorRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create operator indexes: %w", err)
	}
	return nil
}
