// File: database/repository/project/interface.go
package projectRepo

import (
	"context"

	"crewledger/database"
	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectRepository manages project documents and their embedded crew
// assignment lists.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id string) error

	// AddAssignment appends an assignment to a project's crew list, failing
	// if the profile already holds one on that project.
	AddAssignment(ctx context.Context, projectID string, assignment models.ProjectCrewAssignment) error
	UpdateAssignment(ctx context.Context, projectID string, assignment models.ProjectCrewAssignment) error
	RemoveAssignment(ctx context.Context, projectID, crewID string) error

	EnsureIndexes() error
}

type mongoProjectRepo struct {
	coll *mongo.Collection
}

// NewMongoProjectRepo constructs a new MongoDB ProjectRepository.
func NewMongoProjectRepo() ProjectRepository {
	db := database.DB()
	return &mongoProjectRepo{
		coll: db.Collection("projects"),
	}
}
