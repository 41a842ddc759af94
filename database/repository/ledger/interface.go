// File: database/repository/ledger/interface.go
package ledgerRepo

import (
	"context"

	"crewledger/database"
	"crewledger/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LedgerTx is the view of the ledger inside one transaction. Reads made
// through it are part of the same commit as the writes, so a balance checked
// here can never be staler than the payment it authorizes.
type LedgerTx interface {
	ShiftsFor(crewID, projectID string) ([]models.Shift, error)
	UpdateShifts(shifts []models.Shift) error
	InsertPayment(payment *models.Payment) error
	DeletePayment(paymentID string) error
}

// LedgerRepository couples the payments collection with the shift updates
// that a payment implies. All mutations go through WithTransaction.
type LedgerRepository interface {
	PaymentByID(ctx context.Context, id string) (*models.Payment, error)
	PaymentsFor(ctx context.Context, crewID, projectID string) ([]models.Payment, error)
	PaymentsByProject(ctx context.Context, projectID string) ([]models.Payment, error)

	WithTransaction(ctx context.Context, fn func(tx LedgerTx) error) error

	EnsureIndexes() error
}

type mongoLedgerRepo struct {
	paymentColl *mongo.Collection
	shiftColl   *mongo.Collection
}

// NewMongoLedgerRepo constructs a new MongoDB LedgerRepository.
func NewMongoLedgerRepo() LedgerRepository {
	db := database.DB()
	return &mongoLedgerRepo{
		paymentColl: db.Collection("payments"),
		shiftColl:   db.Collection("shifts"),
	}
}
