package shop

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StartingProductLimit is the quota every new shop opens with, regardless
// of what the caller supplied.
const StartingProductLimit = 3

type Shop struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"shopName,omitempty" json:"shopName,omitempty"`
	Logo     string             `bson:"shopLogo,omitempty" json:"shopLogo,omitempty"`
	Info     string             `bson:"shopInfo,omitempty" json:"shopInfo,omitempty"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
	Limit    int                `bson:"limit" json:"limit"`
}

// HasQuota reports whether the shop may still create products.
func (s *Shop) HasQuota() bool {
	return s != nil && s.Limit > 0
}
