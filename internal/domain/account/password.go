package account

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash is a bcrypt hash. The plain password is never stored.
type PasswordHash string

func HashPassword(plain string) (PasswordHash, error) {
	if plain == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return PasswordHash(hash), nil
}

// Matches reports whether plain hashes to h.
func (h PasswordHash) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(plain)) == nil
}

func (h PasswordHash) String() string { return string(h) }
