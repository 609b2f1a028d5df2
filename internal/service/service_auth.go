package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-micro-blog/internal/config"
	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/store"
	"github.com/MKhiriev/go-micro-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor used at registration time.
	// Zero selects bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with the hashing policy from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Validation order is a contract: the username emptiness check runs before
// the password check, so a request with both fields empty reports the
// username error. The first failing check wins; errors never accumulate.
//
// The password is hashed with bcrypt, which generates a fresh random salt on
// every call, so identical passwords produce different stored hashes.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrUsernameRequired / ErrPasswordRequired on empty fields.
//   - A wrapped storage error if the repository call fails (e.g.
//     store.ErrUsernameTaken when the username is already registered).
func (a *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Error().Msg("registration rejected: empty username")
		return models.User{}, ErrUsernameRequired
	}
	if password == "" {
		log.Error().Str("username", username).Msg("registration rejected: empty password")
		return models.User{}, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// VerifyUser authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// against the supplied password. bcrypt performs the comparison in constant
// time relative to the candidate's correctness; raw hash bytes are never
// compared directly.
//
// Returns the authenticated user record or:
//   - A wrapped storage error if the lookup fails (e.g. store.ErrUserNotFound
//     for an unknown username).
//   - ErrWrongPassword if the hash comparison fails.
func (a *authService) VerifyUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// FindUser materializes a user record from a session-bound user ID.
//
// Returns a wrapped storage error when the ID no longer resolves to a user
// (see store.ErrUserNotFound); the access guard treats that case as an
// unauthenticated request.
func (a *authService) FindUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
