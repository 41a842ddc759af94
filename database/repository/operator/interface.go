// File: database/repository/operator/interface.go
package operatorRepo

import (
	"context"

	"crewledger/database"
	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OperatorRepository manages backend login accounts.
type OperatorRepository interface {
	Create(ctx context.Context, operator *models.Operator) error
	GetByID(ctx context.Context, id string) (*models.Operator, error)
	GetByEmail(ctx context.Context, email string) (*models.Operator, error)
	EnsureIndexes() error
}

type mongoOperatorRepo struct {
	coll *mongo.Collection
}

// NewMongoOperatorRepo constructs a new MongoDB OperatorRepository.
func NewMongoOperatorRepo() OperatorRepository {
	db := database.DB()
	return &mongoOperatorRepo{
		coll: db.Collection("operators"),
	}
}
