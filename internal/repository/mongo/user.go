package mongo

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/domain/user"
	apperrors "inventory-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll     *mongo.Collection
	pageSize int
}

func NewUserRepository(db *DB, pageSize int) *UserRepository {
	return &UserRepository{
		coll:     db.Collection(collectionUsers),
		pageSize: pageSize,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u := &user.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errUserNotFound)
		}
		return nil, fmt.Errorf(errFailedGetUserFmt, err)
	}

	return u, nil
}

// Create inserts a user after an application-level duplicate-email check.
// The users collection carries no storage-level uniqueness constraint.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (string, error) {
	err := r.coll.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return "", apperrors.Conflict(msgUserAlreadyExists)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf(errFailedGetUserFmt, err)
	}

	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return "", fmt.Errorf(errFailedCreateUserFmt, err)
	}

	return insertedHex(res), nil
}

// List returns one page of users with an estimated total. The estimate
// trades precision for speed; it is for display only.
func (r *UserRepository) List(ctx context.Context, page int) ([]*user.User, int64, error) {
	opts := options.Find().
		SetSkip(int64(page * r.pageSize)).
		SetLimit(int64(r.pageSize))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf(errFailedListUsersFmt, err)
	}

	var users []*user.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf(errFailedDecodeUsersFmt, err)
	}

	count, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf(errFailedCountUsersFmt, err)
	}

	return users, count, nil
}

// PromoteManager attaches shop identity and the manager role in one
// upsert. There is no demotion path.
func (r *UserRepository) PromoteManager(ctx context.Context, email string, info user.ManagerPromotion) (int64, error) {
	update := bson.M{"$set": bson.M{
		"shopName": info.ShopName,
		"shopLogo": info.ShopLogo,
		"shopId":   info.ShopID,
		"role":     info.Role,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return 0, fmt.Errorf(errFailedPromoteUserFmt, err)
	}

	return res.ModifiedCount, nil
}

// AccrueAdminIncome adds amount to the single admin's running income with
// one atomic $inc, so concurrent sales cannot lose an update.
func (r *UserRepository) AccrueAdminIncome(ctx context.Context, amount float64) (int64, error) {
	filter := bson.M{"role": user.RoleAdmin}
	update := bson.M{"$inc": bson.M{"income": amount}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf(errFailedAccrueIncomeFmt, err)
	}

	if res.MatchedCount == 0 {
		return 0, apperrors.NotFound(errAdminNotFound)
	}

	return res.ModifiedCount, nil
}
