package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/pitchside/pitchside/auth/storage"
	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/gen/table"
	"github.com/pitchside/pitchside/internal/domain"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

// New wraps the shared database handle; migrations are the caller's
// concern (applied once at startup by the main storage).
func New(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "auth-storage"),
	}
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret, emailEnc string) error {
	role := user.Role
	if !role.Valid() {
		role = domain.RolePlayer
	}
	now := time.Now()
	_, err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(dbmodel.Users{
			ID:           user.ID.String(),
			Name:         user.Name,
			Role:         string(role),
			EmailEnc:     emailEnc,
			PasswordHash: hex.EncodeToString(secret.PasswordHash),
			PasswordSalt: hex.EncodeToString(secret.Salt),
			CreatedAt:    now,
			LastActiveAt: now,
		}).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dbUser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		)).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUser(dbUser)
}

func (s *Storage) GetUserSecret(ctx context.Context, user users.User) (users.Secret, error) {
	var where sqlite.BoolExpression
	switch {
	case user.ID != uuid.Nil:
		where = table.Users.ID.EQ(sqlite.UUID(user.ID))
	case user.Name != "":
		where = table.Users.Name.EQ(sqlite.String(user.Name))
	default:
		return users.Secret{}, errors.New("empty user")
	}

	var dbUser dbmodel.Users
	err := table.Users.
		SELECT(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		).
		FROM(table.Users).
		WHERE(where).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.Secret{}, sql.ErrNoRows
		}
		return users.Secret{}, err
	}
	hash, err := hex.DecodeString(dbUser.PasswordHash)
	if err != nil {
		return users.Secret{}, err
	}
	salt, err := hex.DecodeString(dbUser.PasswordSalt)
	if err != nil {
		return users.Secret{}, err
	}
	return users.Secret{
		PasswordHash: hash,
		Salt:         salt,
	}, nil
}

func (s *Storage) SignIn(ctx context.Context, name string, passwordHash []byte) (users.User, error) {
	var dbUser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.Name.EQ(sqlite.String(name)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	storedHash, err := hex.DecodeString(dbUser.PasswordHash)
	if err != nil {
		return users.User{}, err
	}
	if !bytes.Equal(storedHash, passwordHash) {
		return users.User{}, sql.ErrNoRows
	}
	return convertUser(dbUser)
}

func convertUser(u dbmodel.Users) (users.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return users.User{}, fmt.Errorf("user id: %w", err)
	}
	return users.User{
		ID:           id,
		Name:         u.Name,
		Role:         domain.Role(u.Role),
		RegisteredAt: u.CreatedAt,
	}, nil
}
