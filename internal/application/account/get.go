package account

import (
	"context"
	"fmt"

	domain "github.com/kaitobq/mysql-bootstrap/internal/domain/account"
)

func (f *Facade) GetByUsername(ctx context.Context, username string) (*DTO, error) {
	name, err := domain.NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	entity, err := f.repo.FindByUsername(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	return toDTO(entity), nil
}
