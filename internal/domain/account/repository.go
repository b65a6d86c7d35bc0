package account

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("account: not found")

// Repository defines the persistence interface for Account.
// Implementations live in the infra layer.
type Repository interface {
	// CreateIfAbsent stores entity unless its username is taken. It returns the stored
	// account and whether it was created by this call.
	CreateIfAbsent(ctx context.Context, entity *Entity) (*Entity, bool, error)
	FindByUsername(ctx context.Context, username Username) (*Entity, error)
}
