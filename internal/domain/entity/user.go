package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a back-office account. Accounts are created by the seed
// bootstrap; there is no self-registration endpoint.
type User struct {
	ID           int64
	Email        string // unique, stored lower-cased
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         string // admin, user
	CreatedAt    time.Time
}
