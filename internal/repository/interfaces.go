package repository

import (
	"context"

	"inventory-service/internal/domain/cart"
	"inventory-service/internal/domain/payment"
	"inventory-service/internal/domain/product"
	"inventory-service/internal/domain/sale"
	"inventory-service/internal/domain/shop"
	"inventory-service/internal/domain/user"
)

// Repository interfaces consumed by handlers and middleware. Concrete
// implementations live in the mongo package; tests substitute fakes.

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) (string, error)
	List(ctx context.Context, page int) ([]*user.User, int64, error)
	PromoteManager(ctx context.Context, email string, info user.ManagerPromotion) (int64, error)
	AccrueAdminIncome(ctx context.Context, amount float64) (int64, error)
}

type ShopRepository interface {
	GetByEmail(ctx context.Context, email string) (*shop.Shop, error)
	List(ctx context.Context) ([]*shop.Shop, error)
	Create(ctx context.Context, s *shop.Shop) (string, error)
	DecrementLimit(ctx context.Context, email string) (*shop.Shop, error)
	OverwriteLimit(ctx context.Context, email string, limit int) (int64, error)
	SetLimitByID(ctx context.Context, id string, limit int) (int64, error)
}

type ProductRepository interface {
	ListAll(ctx context.Context) ([]*product.Product, error)
	ListByEmail(ctx context.Context, email string) ([]*product.Product, error)
	GetByID(ctx context.Context, id string) (*product.Product, error)
	Create(ctx context.Context, p *product.Product) (string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
	SetSaleFigures(ctx context.Context, id string, figures product.SaleFigures) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type CartRepository interface {
	Add(ctx context.Context, e *cart.Entry) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*cart.Entry, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type SaleRepository interface {
	Add(ctx context.Context, r *sale.Record) (string, error)
	ListAll(ctx context.Context) ([]*sale.Record, error)
	ListPage(ctx context.Context, email string, page int) ([]*sale.Record, int64, error)
}

type PaymentRepository interface {
	Record(ctx context.Context, r *payment.Record) (string, error)
}
