// File: database/repository/ledger/queries.go
package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"crewledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoLedgerRepo) PaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.paymentColl.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *mongoLedgerRepo) findPayments(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// ULIDs order by creation time, so sorting on id gives newest-first history.
	findOpts := options.Find().SetSort(bson.D{{Key: "id", Value: -1}})
	cursor, err := r.paymentColl.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *mongoLedgerRepo) PaymentsFor(ctx context.Context, crewID, projectID string) ([]models.Payment, error) {
	return r.findPayments(ctx, bson.M{"crewId": crewID, "projectId": projectID})
}

func (r *mongoLedgerRepo) PaymentsByProject(ctx context.Context, projectID string) ([]models.Payment, error) {
	return r.findPayments(ctx, bson.M{"projectId": projectID})
}

// EnsureIndexes creates the necessary indexes on the payments collection.
func (r *mongoLedgerRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "crewId", Value: 1}, {Key: "projectId", Value: 1}},
			Options: options.Index().SetName("crew_project_idx"),
		},
		{
			Keys:    bson.D{{Key: "projectId", Value: 1}},
			Options: options.Index().SetName("project_idx"),
		},
	}

	_, err := r.paymentColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
