package cart

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a buyer's staged purchase. It is inserted on add-to-cart and
// deleted once the matching sale is finalized.
type Entry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}
