package storage

import (
	"context"

	"github.com/pitchside/pitchside/auth/users"

	"github.com/google/uuid"
)

type AuthStorage interface {
	// CreateUser stores a new account. emailEnc is the already encrypted
	// contact address; this layer never sees plaintext.
	CreateUser(ctx context.Context, user users.User, secret users.Secret, emailEnc string) error
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserSecret(ctx context.Context, user users.User) (users.Secret, error)
	SignIn(ctx context.Context, name string, passwordHash []byte) (users.User, error)
}
