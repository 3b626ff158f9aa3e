package users

import (
	"time"

	"github.com/pitchside/pitchside/internal/domain"

	"github.com/google/uuid"
)

// User is the stable identity attached to a push connection or an API
// request: id plus role, decoded once from the bearer credential.
type User struct {
	ID           uuid.UUID
	Name         string
	Role         domain.Role
	RegisteredAt time.Time
}

type Secret struct {
	PasswordHash []byte
	Salt         []byte
}
