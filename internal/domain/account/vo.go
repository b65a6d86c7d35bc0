package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/kaitobq/mysql-bootstrap/internal/domain/account/internal/uid"
)

// ID is the unique identifier of an Account.
type ID string

func NewID() ID {
	return ID(uid.Generate())
}

func ParseID(s string) (ID, error) {
	if s == "" {
		return "", errors.New("account id must not be empty")
	}
	return ID(s), nil
}

func (id ID) String() string { return string(id) }

// Username is the unique login name of an Account.
type Username string

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if len(s) < 1 || len(s) > 63 {
		return "", fmt.Errorf("username must be 1-63 characters, got %d", len(s))
	}
	return Username(s), nil
}

func (u Username) String() string { return string(u) }

// Email is a bare address such as admin@example.com.
type Email string

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) > 255 {
		return "", fmt.Errorf("email must be at most 255 characters, got %d", len(s))
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("invalid email %q: %w", s, err)
	}
	if addr.Address != s {
		return "", fmt.Errorf("email must be a bare address, got %q", s)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) String() string { return string(r) }
