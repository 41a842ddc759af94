package operator

import (
	"context"
	"errors"
	"strings"
	"time"

	"crewledger/models"
	"crewledger/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

var (
	// ErrEmailTaken rejects registration with an already-registered email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Register creates a new operator account and returns a signed session token.
func (s *DefaultOperatorService) Register(ctx context.Context, input RegisterInput) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Operator{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Mobile:       input.Mobile,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("operator registered", zap.String("operatorId", account.ID))
	return &models.AuthResponse{Operator: *account, Token: token}, nil
}

// Login authenticates an operator and returns a fresh session token.
func (s *DefaultOperatorService) Login(ctx context.Context, input LoginInput) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("operator logged in", zap.String("operatorId", account.ID))
	return &models.AuthResponse{Operator: *account, Token: token}, nil
}

// issueToken signs a JWT and stores its hash in the auth cache so the auth
// middleware can check that the session has not been revoked.
func (s *DefaultOperatorService) issueToken(ctx context.Context, account *models.Operator) (string, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, tokenDuration)
	if err != nil {
		return "", err
	}
	if s.AuthCache != nil {
		key := utils.AuthTokenKey(account.ID)
		if err := s.AuthCache.Set(ctx, key, utils.HashToken(token), tokenDuration).Err(); err != nil {
			return "", err
		}
	}
	return token, nil
}

// RevokeToken invalidates the operator's current session.
func (s *DefaultOperatorService) RevokeToken(ctx context.Context, operatorID string) error {
	if s.AuthCache == nil {
		return nil
	}
	if err := s.AuthCache.Del(ctx, utils.AuthTokenKey(operatorID)).Err(); err != nil {
		return err
	}
	s.Logger.Info("operator token revoked", zap.String("operatorId", operatorID))
	return nil
}

func (s *DefaultOperatorService) GetOperator(ctx context.Context, id string) (*models.Operator, error) {
	return s.Repo.GetByID(ctx, id)
}
