package sale

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Record struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Amount      float64            `bson:"amount" json:"amount"`
	SoldDate    time.Time          `bson:"soldDate" json:"soldDate"`
}
