package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	ledgerRepo "crewledger/database/repository/ledger"
	"crewledger/models"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RecordPayment validates and applies one lump-sum payment against a role
// profile's outstanding shifts on a project.
//
// The balance check runs on shifts read inside the same transaction that
// writes the payment and the shift updates, so two concurrent payments
// against the same role cannot both pass the check on a stale balance.
func (s *DefaultFinanceService) RecordPayment(ctx context.Context, crewID, projectID string, amount float64) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	member, err := s.Crew.GetByID(ctx, crewID)
	if err != nil {
		return nil, fmt.Errorf("crew profile %s not found: %w", crewID, err)
	}

	payment := &models.Payment{
		ID:        ulid.Make().String(),
		CrewID:    crewID,
		MID:       member.MID,
		ProjectID: projectID,
		Amount:    amount,
		Date:      time.Now().UTC().Format(time.RFC3339),
	}

	err = s.Ledger.WithTransaction(ctx, func(tx ledgerRepo.LedgerTx) error {
		shifts, err := tx.ShiftsFor(crewID, projectID)
		if err != nil {
			return err
		}
		summary := Summarize(shifts)
		if amount > summary.Balance {
			return newOverpaymentError(amount, summary.Balance)
		}

		changed := distribute(shifts, amount, opApply)
		if err := tx.UpdateShifts(changed); err != nil {
			return err
		}
		return tx.InsertPayment(payment)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummaries(ctx, crewID, projectID, member.MID)
	s.Logger.Info("payment recorded",
		zap.String("paymentId", payment.ID),
		zap.String("crewId", crewID),
		zap.String("projectId", projectID),
		zap.Float64("amount", amount),
	)
	return payment, nil
}

// ReversePayment undoes a prior payment: the paid amount is pulled back out
// of the shifts oldest-first and the payment record is deleted, both in one
// transaction. A reversal can never leave a shift Paid, since removing a
// positive amount always leaves its paid total below its earned total.
func (s *DefaultFinanceService) ReversePayment(ctx context.Context, paymentID string) error {
	payment, err := s.Ledger.PaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to load payment %s: %w", paymentID, err)
	}

	err = s.Ledger.WithTransaction(ctx, func(tx ledgerRepo.LedgerTx) error {
		shifts, err := tx.ShiftsFor(payment.CrewID, payment.ProjectID)
		if err != nil {
			return err
		}

		changed := distribute(shifts, payment.Amount, opReverse)
		if err := tx.UpdateShifts(changed); err != nil {
			return err
		}

		// Deleting inside the transaction shields against a concurrent
		// double reversal of the same payment.
		if err := tx.DeletePayment(paymentID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrPaymentNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateSummaries(ctx, payment.CrewID, payment.ProjectID, payment.MID)
	s.Logger.Info("payment reversed",
		zap.String("paymentId", paymentID),
		zap.String("crewId", payment.CrewID),
		zap.String("projectId", payment.ProjectID),
		zap.Float64("amount", payment.Amount),
	)
	return nil
}

// PaymentHistory lists a role profile's payments on a project, newest first.
func (s *DefaultFinanceService) PaymentHistory(ctx context.Context, crewID, projectID string) ([]models.Payment, error) {
	return s.Ledger.PaymentsFor(ctx, crewID, projectID)
}

// ProjectPayments lists every payment made on a project, newest first.
func (s *DefaultFinanceService) ProjectPayments(ctx context.Context, projectID string) ([]models.Payment, error) {
	return s.Ledger.PaymentsByProject(ctx, projectID)
}
