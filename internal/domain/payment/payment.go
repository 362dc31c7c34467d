package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is written after the client reports a confirmed charge. The
// server trusts that report; there is no webhook confirmation.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	ClientSecret  string             `bson:"clientSecret,omitempty" json:"clientSecret,omitempty"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}
