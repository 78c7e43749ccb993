package model

import "time"

// Roles stored in the users.role column and in the JWT "role" claim.
const (
	RoleAdmin = "ADMIN"
	RoleFan   = "FAN"
)

// User represents an application user record as stored in the
// `users` table.  Admin-only operations require Role == RoleAdmin;
// the admin flag is carried in the JWT and enforced by middleware,
// never re-derived by handlers.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email (unique)
	PasswordHash string    // users.password_hash (bcrypt)
	Role         string    // users.role: ADMIN | FAN
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  The
// plain token is never stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
