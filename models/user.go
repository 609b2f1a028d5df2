package models

import "time"

// User represents a registered account. It contains identity attributes and
// credential-related data. The password hash must never be exposed outside
// trusted boundaries or written to logs.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// persistence layer at registration time and immutable afterwards.
	UserID int64 `json:"-"`

	// Username is the unique login identifier. Comparison is case-sensitive.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a hash, never plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
