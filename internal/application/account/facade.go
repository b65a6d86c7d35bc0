package account

import (
	domain "github.com/kaitobq/mysql-bootstrap/internal/domain/account"
)

// Facade aggregates the Account use cases.
type Facade struct {
	repo domain.Repository
	hash func(string) (domain.PasswordHash, error)
}

// NewFacade creates a new Account facade.
func NewFacade(repo domain.Repository) *Facade {
	return &Facade{repo: repo, hash: domain.HashPassword}
}

func toDTO(e *domain.Entity) *DTO {
	return &DTO{
		ID:        e.ID.String(),
		Username:  e.Username.String(),
		Email:     e.Email.String(),
		Role:      e.Role.String(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
