package service

import (
	"github.com/MKhiriev/go-micro-blog/internal/config"
	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/store"
)

// Services bundles all business-logic services for injection into the
// transport layer.
type Services struct {
	AuthService AuthService
	PostService PostService
}

// NewServices wires every service to its repository.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		PostService: NewPostService(repositories.PostRepository, logger),
	}
}
