package mongo

import (
	"context"
	"fmt"

	"inventory-service/internal/domain/sale"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SaleRepository struct {
	coll     *mongo.Collection
	pageSize int
}

func NewSaleRepository(db *DB, pageSize int) *SaleRepository {
	return &SaleRepository{
		coll:     db.Collection(collectionSales),
		pageSize: pageSize,
	}
}

func (r *SaleRepository) Add(ctx context.Context, rec *sale.Record) (string, error) {
	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return "", fmt.Errorf(errFailedAddSaleFmt, err)
	}

	return insertedHex(res), nil
}

func (r *SaleRepository) ListAll(ctx context.Context) ([]*sale.Record, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf(errFailedListSalesFmt, err)
	}

	var records []*sale.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf(errFailedDecodeSalesFmt, err)
	}

	return records, nil
}

// ListPage returns one page sorted by soldDate descending with a precise
// count of the filtered set. An empty email means the global view.
func (r *SaleRepository) ListPage(ctx context.Context, email string, page int) ([]*sale.Record, int64, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf(errFailedCountSalesFmt, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "soldDate", Value: -1}}).
		SetSkip(int64(page * r.pageSize)).
		SetLimit(int64(r.pageSize))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf(errFailedListSalesFmt, err)
	}

	var records []*sale.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf(errFailedDecodeSalesFmt, err)
	}

	return records, total, nil
}
