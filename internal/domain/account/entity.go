package account

import "time"

// Entity represents an Account in the domain layer.
type Entity struct {
	ID           ID
	Username     Username
	Email        Email
	PasswordHash PasswordHash
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEntity creates a new Account entity.
func NewEntity(username Username, email Email, hash PasswordHash, role Role) *Entity {
	now := time.Now().UTC()
	return &Entity{
		ID:           NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
