// File: database/repository/crew/interface.go
package crewRepo

import (
	"context"

	"crewledger/database"
	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CrewRepository manages crew role profile documents. One document per
// role-and-person combination; a person (mid) may own several.
type CrewRepository interface {
	Create(ctx context.Context, member *models.CrewMember) error
	GetByID(ctx context.Context, id string) (*models.CrewMember, error)
	GetByMID(ctx context.Context, mid string) ([]models.CrewMember, error)
	GetAll(ctx context.Context) ([]models.CrewMember, error)
	Update(ctx context.Context, member *models.CrewMember) error

	// DeleteCascade removes the profile and strips its assignment from every
	// project's crew list as one atomic commit.
	DeleteCascade(ctx context.Context, id string) error

	EnsureIndexes() error
}

type mongoCrewRepo struct {
	coll        *mongo.Collection
	projectColl *mongo.Collection
}

// NewMongoCrewRepo constructs a new MongoDB CrewRepository.
func NewMongoCrewRepo() CrewRepository {
	db := database.DB()
	return &mongoCrewRepo{
		coll:        db.Collection("crew"),
		projectColl: db.Collection("projects"),
	}
}
