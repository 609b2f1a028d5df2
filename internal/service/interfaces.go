package service

import (
	"context"

	"github.com/MKhiriev/go-micro-blog/models"
)

// AuthService owns the credential lifecycle: registration, verification,
// and identity materialization for the access guard.
type AuthService interface {
	// RegisterUser validates the submitted credentials, hashes the
	// password, and persists a new account.
	RegisterUser(ctx context.Context, username, password string) (models.User, error)

	// VerifyUser authenticates an existing user by username and plaintext
	// password.
	VerifyUser(ctx context.Context, username, password string) (models.User, error)

	// FindUser materializes the per-request identity from a session-bound
	// user ID.
	FindUser(ctx context.Context, userID int64) (models.User, error)
}

// PostService owns blog entries and their ownership rules.
type PostService interface {
	CreatePost(ctx context.Context, authorID int64, title, body string) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetOwnedPost fetches a post and enforces that it belongs to userID.
	GetOwnedPost(ctx context.Context, postID, userID int64) (models.Post, error)

	UpdatePost(ctx context.Context, postID, userID int64, title, body string) error
	DeletePost(ctx context.Context, postID, userID int64) error
}
