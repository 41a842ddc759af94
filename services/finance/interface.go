package finance

import (
	"context"

	crewRepo "crewledger/database/repository/crew"
	ledgerRepo "crewledger/database/repository/ledger"
	shiftRepo "crewledger/database/repository/shift"
	"crewledger/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FinanceService is the only entry point allowed to mutate payment state.
// All other components read aggregates through it.
type FinanceService interface {
	RecordPayment(ctx context.Context, crewID, projectID string, amount float64) (*models.Payment, error)
	ReversePayment(ctx context.Context, paymentID string) error

	CrewProjectSummary(ctx context.Context, crewID, projectID string) (models.FinancialSummary, error)
	ProjectSummary(ctx context.Context, projectID string) (models.FinancialSummary, error)
	PersonSummary(ctx context.Context, mid string) (models.FinancialSummary, error)
	ProjectCrewBreakdown(ctx context.Context, projectID string) ([]models.CrewFinancials, error)
	PaymentHistory(ctx context.Context, crewID, projectID string) ([]models.Payment, error)
	ProjectPayments(ctx context.Context, projectID string) ([]models.Payment, error)
}

// DefaultFinanceService wires the reconciliation engine to the ledger store.
type DefaultFinanceService struct {
	Ledger ledgerRepo.LedgerRepository
	Shifts shiftRepo.ShiftRepository
	Crew   crewRepo.CrewRepository
	Cache  *redis.Client
	Logger *zap.Logger
}
