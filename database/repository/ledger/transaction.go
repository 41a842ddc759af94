// File: database/repository/ledger/transaction.go
package ledgerRepo

import (
	"context"
	"fmt"

	"crewledger/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoLedgerTx executes every read and write on the session context, so the
// whole callback commits or aborts as one unit.
type mongoLedgerTx struct {
	sc          mongo.SessionContext
	paymentColl *mongo.Collection
	shiftColl   *mongo.Collection
}

func (t *mongoLedgerTx) ShiftsFor(crewID, projectID string) ([]models.Shift, error) {
	filter := bson.M{"crewId": crewID, "projectId": projectID}
	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := t.shiftColl.Find(t.sc, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to read shifts in transaction: %w", err)
	}
	defer cursor.Close(t.sc)

	var shifts []models.Shift
	if err := cursor.All(t.sc, &shifts); err != nil {
		return nil, fmt.Errorf("failed to decode shifts in transaction: %w", err)
	}
	return shifts, nil
}

func (t *mongoLedgerTx) UpdateShifts(shifts []models.Shift) error {
	for i := range shifts {
		update := bson.M{"$set": bson.M{
			"paidAmount":    shifts[i].PaidAmount,
			"paymentStatus": shifts[i].Status,
		}}
		res, err := t.shiftColl.UpdateOne(t.sc, bson.M{"id": shifts[i].ID}, update)
		if err != nil {
			return fmt.Errorf("shift update failed for %s: %w", shifts[i].ID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("shift %s disappeared during transaction", shifts[i].ID)
		}
	}
	return nil
}

func (t *mongoLedgerTx) InsertPayment(payment *models.Payment) error {
	if _, err := t.paymentColl.InsertOne(t.sc, payment); err != nil {
		return fmt.Errorf("insert payment failed: %w", err)
	}
	return nil
}

func (t *mongoLedgerTx) DeletePayment(paymentID string) error {
	res, err := t.paymentColl.DeleteOne(t.sc, bson.M{"id": paymentID})
	if err != nil {
		return fmt.Errorf("delete payment failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// WithTransaction runs fn inside a mongo session transaction. The callback's
// error aborts the transaction and is returned unmodified, so domain errors
// (overpayment, not found) surface to the caller unchanged.
func (r *mongoLedgerRepo) WithTransaction(ctx context.Context, fn func(tx LedgerTx) error) error {
	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		tx := &mongoLedgerTx{sc: sc, paymentColl: r.paymentColl, shiftColl: r.shiftColl}
		if err := fn(tx); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
