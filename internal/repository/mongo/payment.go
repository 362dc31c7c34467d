package mongo

import (
	"context"
	"fmt"

	"inventory-service/internal/domain/payment"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(collectionPayments)}
}

// Record trusts the caller's report of a confirmed charge.
func (r *PaymentRepository) Record(ctx context.Context, rec *payment.Record) (string, error) {
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return "", fmt.Errorf(errFailedRecordPaymentFmt, err)
	}

	return insertedHex(res), nil
}
