package handler

import (
	"context"
	"sort"

	"inventory-service/internal/domain/cart"
	"inventory-service/internal/domain/payment"
	"inventory-service/internal/domain/product"
	"inventory-service/internal/domain/sale"
	"inventory-service/internal/domain/shop"
	"inventory-service/internal/domain/user"
	apperrors "inventory-service/pkg/errors"
)

// In-memory repositories mirroring the store contracts, page size 5.

const fakePageSize = 5

type fakeUserRepo struct {
	users      map[string]*user.User
	lastAccrue float64
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (string, error) {
	if _, ok := f.users[u.Email]; ok {
		return "", apperrors.Conflict("user already exist")
	}
	if f.users == nil {
		f.users = map[string]*user.User{}
	}
	f.users[u.Email] = u
	return "65a000000000000000000001", nil
}

func (f *fakeUserRepo) List(_ context.Context, page int) ([]*user.User, int64, error) {
	emails := make([]string, 0, len(f.users))
	for email := range f.users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	start := page * fakePageSize
	if start > len(emails) {
		start = len(emails)
	}
	end := start + fakePageSize
	if end > len(emails) {
		end = len(emails)
	}

	out := make([]*user.User, 0, end-start)
	for _, email := range emails[start:end] {
		out = append(out, f.users[email])
	}
	return out, int64(len(f.users)), nil
}

func (f *fakeUserRepo) PromoteManager(_ context.Context, email string, info user.ManagerPromotion) (int64, error) {
	u, ok := f.users[email]
	if !ok {
		u = &user.User{Email: email}
		if f.users == nil {
			f.users = map[string]*user.User{}
		}
		f.users[email] = u
	}
	u.Role = user.Role(info.Role)
	u.ShopName = info.ShopName
	u.ShopLogo = info.ShopLogo
	u.ShopID = info.ShopID
	return 1, nil
}

func (f *fakeUserRepo) AccrueAdminIncome(_ context.Context, amount float64) (int64, error) {
	for _, u := range f.users {
		if u.Role == user.RoleAdmin {
			u.Income += amount
			f.lastAccrue = amount
			return 1, nil
		}
	}
	return 0, apperrors.NotFound("admin user not found")
}

type fakeShopRepo struct {
	shops map[string]*shop.Shop
}

func (f *fakeShopRepo) GetByEmail(_ context.Context, email string) (*shop.Shop, error) {
	s, ok := f.shops[email]
	if !ok {
		return nil, apperrors.NotFound("shop not found")
	}
	return s, nil
}

func (f *fakeShopRepo) List(context.Context) ([]*shop.Shop, error) {
	out := make([]*shop.Shop, 0, len(f.shops))
	for _, s := range f.shops {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShopRepo) Create(_ context.Context, s *shop.Shop) (string, error) {
	if _, ok := f.shops[s.Email]; ok {
		return "", apperrors.Conflict("You Can Create Only One Shop")
	}
	if f.shops == nil {
		f.shops = map[string]*shop.Shop{}
	}
	s.Limit = shop.StartingProductLimit
	f.shops[s.Email] = s
	return "65a000000000000000000002", nil
}

func (f *fakeShopRepo) DecrementLimit(_ context.Context, email string) (*shop.Shop, error) {
	s, ok := f.shops[email]
	if !ok {
		return nil, apperrors.NotFound("shop not found")
	}
	if s.Limit <= 0 {
		return nil, apperrors.QuotaExhausted("shop has no remaining product quota")
	}
	s.Limit--
	return s, nil
}

func (f *fakeShopRepo) OverwriteLimit(_ context.Context, email string, limit int) (int64, error) {
	s, ok := f.shops[email]
	if !ok {
		return 0, nil
	}
	s.Limit = limit
	return 1, nil
}

func (f *fakeShopRepo) SetLimitByID(_ context.Context, id string, limit int) (int64, error) {
	for _, s := range f.shops {
		if s.ID.Hex() == id {
			s.Limit = limit
			return 1, nil
		}
	}
	return 0, nil
}

type fakeSaleRepo struct {
	records []*sale.Record
}

func (f *fakeSaleRepo) Add(_ context.Context, r *sale.Record) (string, error) {
	f.records = append(f.records, r)
	return "65a000000000000000000003", nil
}

func (f *fakeSaleRepo) ListAll(context.Context) ([]*sale.Record, error) {
	return f.records, nil
}

func (f *fakeSaleRepo) ListPage(_ context.Context, email string, page int) ([]*sale.Record, int64, error) {
	filtered := make([]*sale.Record, 0, len(f.records))
	for _, r := range f.records {
		if email == "" || r.Email == email {
			filtered = append(filtered, r)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].SoldDate.After(filtered[j].SoldDate)
	})

	start := page * fakePageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + fakePageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], int64(len(filtered)), nil
}

type fakeCartRepo struct {
	entries []*cart.Entry
}

func (f *fakeCartRepo) Add(_ context.Context, e *cart.Entry) (string, error) {
	f.entries = append(f.entries, e)
	return "65a000000000000000000004", nil
}

func (f *fakeCartRepo) ListByEmail(_ context.Context, email string) ([]*cart.Entry, error) {
	out := make([]*cart.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, e := range f.entries {
		if e.ID.Hex() == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeProductRepo struct {
	products map[string]*product.Product
}

func (f *fakeProductRepo) ListAll(context.Context) ([]*product.Product, error) {
	out := make([]*product.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListByEmail(_ context.Context, email string) ([]*product.Product, error) {
	out := make([]*product.Product, 0)
	for _, p := range f.products {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperrors.NotFound("product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *product.Product) (string, error) {
	if f.products == nil {
		f.products = map[string]*product.Product{}
	}
	id := "65a000000000000000000005"
	f.products[id] = p
	return id, nil
}

func (f *fakeProductRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (int64, error) {
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeProductRepo) SetSaleFigures(_ context.Context, id string, figures product.SaleFigures) (int64, error) {
	p, ok := f.products[id]
	if !ok {
		// Upsert contract: unknown ids create a fresh document.
		if f.products == nil {
			f.products = map[string]*product.Product{}
		}
		p = &product.Product{}
		f.products[id] = p
	}
	p.Quantity = figures.Quantity
	p.SaleCount = figures.SaleCount
	return 1, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}

type fakePaymentRepo struct {
	records []*payment.Record
}

func (f *fakePaymentRepo) Record(_ context.Context, r *payment.Record) (string, error) {
	f.records = append(f.records, r)
	return "65a000000000000000000006", nil
}

type fakeIntentCreator struct {
	lastPrice float64
	secret    string
	err       error
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, price float64) (string, error) {
	f.lastPrice = price
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
