package mongo

import (
	"context"
	"fmt"

	"inventory-service/internal/domain/cart"
	apperrors "inventory-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{coll: db.Collection(collectionCarts)}
}

func (r *CartRepository) Add(ctx context.Context, e *cart.Entry) (string, error) {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return "", fmt.Errorf(errFailedAddCartEntryFmt, err)
	}

	return insertedHex(res), nil
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]*cart.Entry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf(errFailedListCartFmt, err)
	}

	var entries []*cart.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf(errFailedDecodeCartFmt, err)
	}

	return entries, nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, apperrors.BadRequest(err.Error())
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf(errFailedDeleteCartFmt, err)
	}

	return res.DeletedCount, nil
}
