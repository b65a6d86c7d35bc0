package account

import "time"

// DTO is the data transfer object for Account. It never carries the password hash.
type DTO struct {
	ID        string
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
