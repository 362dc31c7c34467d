package mongo

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/domain/shop"
	apperrors "inventory-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShopRepository struct {
	coll *mongo.Collection
}

func NewShopRepository(db *DB) *ShopRepository {
	return &ShopRepository{coll: db.Collection(collectionShops)}
}

func (r *ShopRepository) GetByEmail(ctx context.Context, email string) (*shop.Shop, error) {
	s := &shop.Shop{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errShopNotFound)
		}
		return nil, fmt.Errorf(errFailedGetShopFmt, err)
	}

	return s, nil
}

func (r *ShopRepository) List(ctx context.Context) ([]*shop.Shop, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf(errFailedListShopsFmt, err)
	}

	var shops []*shop.Shop
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, fmt.Errorf(errFailedDecodeShopsFmt, err)
	}

	return shops, nil
}

// Create inserts a shop with the fixed starting quota. One shop per
// email; a second attempt is a conflict the handler soft-fails.
func (r *ShopRepository) Create(ctx context.Context, s *shop.Shop) (string, error) {
	err := r.coll.FindOne(ctx, bson.M{"email": s.Email}).Err()
	if err == nil {
		return "", apperrors.Conflict(msgShopAlreadyExists)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf(errFailedGetShopFmt, err)
	}

	s.Limit = shop.StartingProductLimit

	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return "", fmt.Errorf(errFailedCreateShopFmt, err)
	}

	return insertedHex(res), nil
}

// DecrementLimit consumes one unit of quota with a single conditional
// $inc, recomputed server-side from the persisted value and floored at
// zero. Concurrent decrements cannot lose an update.
func (r *ShopRepository) DecrementLimit(ctx context.Context, email string) (*shop.Shop, error) {
	filter := bson.M{"email": email, "limit": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"limit": -1}}

	s := &shop.Shop{}
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either no such shop, or the quota is spent. Distinguish
			// so callers can report the right failure.
			if getErr := r.coll.FindOne(ctx, bson.M{"email": email}).Err(); errors.Is(getErr, mongo.ErrNoDocuments) {
				return nil, apperrors.NotFound(errShopNotFound)
			}
			return nil, apperrors.QuotaExhausted(errNoShopQuota)
		}
		return nil, fmt.Errorf(errFailedUpdateLimitFmt, err)
	}

	return s, nil
}

func (r *ShopRepository) OverwriteLimit(ctx context.Context, email string, limit int) (int64, error) {
	update := bson.M{"$set": bson.M{"limit": limit}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateLimitFmt, err)
	}

	return res.ModifiedCount, nil
}

func (r *ShopRepository) SetLimitByID(ctx context.Context, id string, limit int) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, apperrors.BadRequest(err.Error())
	}

	update := bson.M{"$set": bson.M{"limit": limit}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateLimitFmt, err)
	}

	return res.ModifiedCount, nil
}
