package mongo

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/domain/product"
	apperrors "inventory-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionProducts)}
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]*product.Product, error) {
	return r.list(ctx, bson.M{})
}

func (r *ProductRepository) ListByEmail(ctx context.Context, email string) ([]*product.Product, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M) ([]*product.Product, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(errFailedListProductsFmt, err)
	}

	var products []*product.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf(errFailedDecodeProdsFmt, err)
	}

	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	p := &product.Product{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errProductNotFound)
		}
		return nil, fmt.Errorf(errFailedGetProductFmt, err)
	}

	return p, nil
}

// Create is a plain insert. Quota consumption is the caller-sequenced
// DecrementLimit call; the two are deliberately separate operations.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (string, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf(errFailedCreateProductFmt, err)
	}

	return insertedHex(res), nil
}

// UpdateFields merges caller-supplied fields over the document.
// Last write wins; there is no field allow-list and no version check.
func (r *ProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, apperrors.BadRequest(err.Error())
	}

	delete(fields, "_id")

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateProductFmt, err)
	}

	return res.ModifiedCount, nil
}

// SetSaleFigures writes absolute quantity/saleCount values, creating the
// document when the id is unknown.
func (r *ProductRepository) SetSaleFigures(ctx context.Context, id string, figures product.SaleFigures) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, apperrors.BadRequest(err.Error())
	}

	update := bson.M{"$set": bson.M{
		"quantity":  figures.Quantity,
		"saleCount": figures.SaleCount,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return 0, fmt.Errorf(errFailedUpdateProductFmt, err)
	}

	return res.ModifiedCount, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, apperrors.BadRequest(err.Error())
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf(errFailedDeleteProductFmt, err)
	}

	return res.DeletedCount, nil
}
