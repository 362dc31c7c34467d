package product

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	ShopName    string             `bson:"shopName,omitempty" json:"shopName,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Cost        float64            `bson:"cost,omitempty" json:"cost,omitempty"`
	Profit      float64            `bson:"profit,omitempty" json:"profit,omitempty"`
	Discount    float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	SaleCount   int                `bson:"saleCount" json:"saleCount"`
	AddedDate   string             `bson:"addedDate,omitempty" json:"addedDate,omitempty"`
}

// SaleFigures are the absolute quantity and sale-count values written at
// sale time. They are replacements, not deltas.
type SaleFigures struct {
	Quantity  int `json:"quantity"`
	SaleCount int `json:"saleCount"`
}
