package app

import (
	"fmt"

	"inventory-service/internal/auth"
	"inventory-service/internal/config"
	svchttp "inventory-service/internal/http"
	"inventory-service/internal/payment"
	"inventory-service/internal/repository/mongo"
)

// InitializeService wires up all dependencies and returns a configured
// Service.
func InitializeService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := mongo.New(&cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	userRepo := mongo.NewUserRepository(db, cfg.App.PageSize)
	shopRepo := mongo.NewShopRepository(db)
	productRepo := mongo.NewProductRepository(db)
	cartRepo := mongo.NewCartRepository(db)
	saleRepo := mongo.NewSaleRepository(db, cfg.App.PageSize)
	paymentRepo := mongo.NewPaymentRepository(db)

	tokenService := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authMiddleware := auth.NewMiddleware(tokenService, userRepo)

	intents := payment.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.Currency)

	server := svchttp.NewServer(&svchttp.ServerDependencies{
		Config:         cfg,
		UserRepo:       userRepo,
		ShopRepo:       shopRepo,
		ProductRepo:    productRepo,
		CartRepo:       cartRepo,
		SaleRepo:       saleRepo,
		PaymentRepo:    paymentRepo,
		TokenService:   tokenService,
		AuthMiddleware: authMiddleware,
		Intents:        intents,
	})

	return &Service{
		config: cfg,
		db:     db,
		server: server,
	}, nil
}
