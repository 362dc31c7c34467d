package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of privilege tiers. Plain users carry no role
// field at all, which RoleNone represents.
type Role string

const (
	RoleNone    Role = ""
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a boundary value against the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleNone, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return RoleNone, false
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`
	ShopName string             `bson:"shopName,omitempty" json:"shopName,omitempty"`
	ShopLogo string             `bson:"shopLogo,omitempty" json:"shopLogo,omitempty"`
	ShopID   string             `bson:"shopId,omitempty" json:"shopId,omitempty"`
	Income   float64            `bson:"income,omitempty" json:"income,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsManager() bool {
	return u != nil && u.Role == RoleManager
}

// ManagerPromotion carries the shop identity attached when a plain user
// becomes a manager. Promotion is one-way; there is no demotion input.
type ManagerPromotion struct {
	ShopName string `json:"shopName"`
	ShopLogo string `json:"shopLogo"`
	ShopID   string `json:"shopId"`
	Role     string `json:"role"`
}
