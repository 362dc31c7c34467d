package app

import (
	"context"
	"log"

	"inventory-service/internal/config"
	svchttp "inventory-service/internal/http"
	"inventory-service/internal/repository/mongo"
)

// Service is the composed inventory application.
type Service struct {
	config *config.Config
	db     *mongo.DB
	server *svchttp.Server
}

// NewService creates and initializes a new Service instance.
func NewService() (*Service, error) {
	return InitializeService()
}

// Start blocks serving HTTP until the listener fails or Shutdown runs.
func (s *Service) Start() error {
	log.Println("Starting inventory service...")
	return s.server.Start(":" + s.config.Server.Port)
}

// Shutdown drains in-flight requests and closes the store connection.
func (s *Service) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	return s.db.Close(ctx)
}
