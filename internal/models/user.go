package models

import "time"

// User is the persisted form of an account principal.
type User struct {
	UserID                 string     `db:"user_id"`
	Email                  string     `db:"email"`
	Name                   string     `db:"name"`
	PasswordHash           string     `db:"password_hash"`
	AuthProvider           string     `db:"auth_provider"`
	ProviderID             string     `db:"provider_id"`
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
}
