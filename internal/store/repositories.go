package store

import "github.com/MKhiriev/go-micro-blog/internal/logger"

// Repositories bundles all persistence-layer contracts for injection into
// the service layer.
type Repositories struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewRepositories constructs all repositories over a single shared
// connection pool.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
	}
}
