package operator

import (
	"context"

	operatorRepo "crewledger/database/repository/operator"
	"crewledger/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RegisterInput creates a new operator account.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput authenticates an existing operator.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OperatorService handles backend account registration and sessions.
type OperatorService interface {
	Register(ctx context.Context, input RegisterInput) (*models.AuthResponse, error)
	Login(ctx context.Context, input LoginInput) (*models.AuthResponse, error)
	RevokeToken(ctx context.Context, operatorID string) error
	GetOperator(ctx context.Context, id string) (*models.Operator, error)
}

// DefaultOperatorService is the production implementation.
type DefaultOperatorService struct {
	Repo      operatorRepo.OperatorRepository
	AuthCache *redis.Client
	Logger    *zap.Logger
}
