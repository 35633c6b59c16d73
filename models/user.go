package models

import "time"

// User represents an account entity used for authentication and post
// ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the store-assigned surrogate key of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every JSON response.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Set once by the store and immutable afterwards.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body accepted by the register and login
// endpoints. It is a flat record, deliberately separate from User so that
// the plaintext password never travels through the entity type.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
