package uid

import "github.com/google/uuid"

// Generate returns a random (version 4) UUID string.
func Generate() string {
	return uuid.NewString()
}
