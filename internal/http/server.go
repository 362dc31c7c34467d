package http

import (
	"context"
	stdhttp "net/http"

	"inventory-service/internal/auth"
	"inventory-service/internal/config"
	"inventory-service/internal/http/handler"
	"inventory-service/internal/http/middleware"
	"inventory-service/internal/repository"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	rootGreeting     = "Hello World!"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config         *config.Config
	UserRepo       repository.UserRepository
	ShopRepo       repository.ShopRepository
	ProductRepo    repository.ProductRepository
	CartRepo       repository.CartRepository
	SaleRepo       repository.SaleRepository
	PaymentRepo    repository.PaymentRepository
	TokenService   *auth.TokenService
	AuthMiddleware *auth.Middleware
	Intents        handler.IntentCreator
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = HTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.Config.App.CORSOrigins,
		AllowCredentials: true,
	}))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	strictRateLimiter := middleware.NewStrictRateLimiter()

	cookiePolicy := auth.CookiePolicy{Production: deps.Config.IsProduction()}

	authHandler := handler.NewAuthHandler(deps.TokenService, cookiePolicy)
	userHandler := handler.NewUserHandler(deps.UserRepo)
	shopHandler := handler.NewShopHandler(deps.ShopRepo)
	productHandler := handler.NewProductHandler(deps.ProductRepo)
	cartHandler := handler.NewCartHandler(deps.CartRepo)
	saleHandler := handler.NewSaleHandler(deps.SaleRepo)
	paymentHandler := handler.NewPaymentHandler(deps.Intents, deps.PaymentRepo)

	session := deps.AuthMiddleware.RequireSession()
	admin := deps.AuthMiddleware.RequireAdmin()

	// Most mutation routes ship without a session check, matching the
	// relaxed upstream policy. StrictMutations closes them.
	var mutation []echo.MiddlewareFunc
	if deps.Config.App.StrictMutations {
		mutation = append(mutation, session)
	}

	e.GET("/", greeting)
	e.GET("/health", healthCheck)

	e.POST("/jwt", authHandler.IssueToken, strictRateLimiter.Middleware())
	e.POST("/logout", authHandler.Logout)

	e.GET("/users", userHandler.List, session, admin)
	e.GET("/users/systemAdmin/:email", userHandler.GetSystemAdmin)
	e.GET("/users/admin/:email", userHandler.CheckAdmin, session)
	e.GET("/users/isManager/:email", userHandler.CheckManager, session)
	e.GET("/users/:email", userHandler.Get)
	e.POST("/users", userHandler.Create)
	e.PATCH("/users/manager/:email", userHandler.PromoteManager, session)

	e.GET("/shops/:email", shopHandler.Get, session)
	e.GET("/shops", shopHandler.List, session, admin)
	e.POST("/shops", shopHandler.Create, mutation...)
	e.PATCH("/updateLimit/:email", shopHandler.DecrementLimit, mutation...)
	e.PATCH("/newProductLimit/:email", shopHandler.OverwriteLimit, mutation...)
	e.PATCH("/shop-update-quantity/:id", shopHandler.SetLimitByID, mutation...)

	e.GET("/allProducts", productHandler.ListAll)
	e.POST("/shopProduct", productHandler.Create, mutation...)
	e.GET("/shopProduct/:email", productHandler.ListByEmail)
	e.GET("/singleProduct/:id", productHandler.Get)
	e.PATCH("/updateProduct/:id", productHandler.Update, mutation...)
	e.PATCH("/product/:id", productHandler.SetSaleFigures, mutation...)
	e.DELETE("/shopProduct/:id", productHandler.Delete, mutation...)

	e.POST("/addToCart", cartHandler.Add, mutation...)
	e.GET("/cartProducts/:email", cartHandler.ListByEmail)
	e.DELETE("/sold-product-delete/:id", cartHandler.DeleteSold, mutation...)

	e.GET("/allSales", saleHandler.ListAll, session, admin)
	e.GET("/manager/salesProduct", saleHandler.ListPage)
	e.POST("/salesProduct", saleHandler.Add, mutation...)
	e.PATCH("/system-admin-income", userHandler.AccrueIncome, mutation...)

	e.POST("/create-payment-intent", paymentHandler.CreateIntent, mutation...)
	e.PUT("/payment", paymentHandler.Record, mutation...)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func greeting(c echo.Context) error {
	return c.String(stdhttp.StatusOK, rootGreeting)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
