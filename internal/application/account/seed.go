package account

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/kaitobq/mysql-bootstrap/internal/domain/account"
)

type SeedAdminInput struct {
	Username string
	Password string
	Email    string
}

type SeedAdminOutput struct {
	Account *DTO
	Created bool
}

// SeedAdmin makes sure the administrator account exists. An existing account with the
// same username is left untouched.
func (f *Facade) SeedAdmin(ctx context.Context, in *SeedAdminInput) (*SeedAdminOutput, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, ErrAdminNotConfigured
	}

	username, err := domain.NewUsername(in.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	hash, err := f.hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	entity := domain.NewEntity(username, email, hash, domain.RoleAdmin)
	stored, created, err := f.repo.CreateIfAbsent(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("seed admin account: %w", err)
	}
	return &SeedAdminOutput{Account: toDTO(stored), Created: created}, nil
}
