package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pitchside/pitchside/auth/storage"
	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/domain"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	byID   map[uuid.UUID]users.User
	byName map[string]users.User
	secret map[uuid.UUID]users.Secret
}

var _ storage.AuthStorage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{
		byID:   make(map[uuid.UUID]users.User),
		byName: make(map[string]users.User),
		secret: make(map[uuid.UUID]users.Secret),
	}
}

func (m *memStorage) CreateUser(_ context.Context, user users.User, secret users.Secret, _ string) error {
	m.byID[user.ID] = user
	m.byName[user.Name] = user
	m.secret[user.ID] = secret
	return nil
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (m *memStorage) GetUserSecret(_ context.Context, user users.User) (users.Secret, error) {
	u, ok := m.byName[user.Name]
	if !ok {
		u, ok = m.byID[user.ID]
	}
	if !ok {
		return users.Secret{}, sql.ErrNoRows
	}
	return m.secret[u.ID], nil
}

func (m *memStorage) SignIn(_ context.Context, name string, passwordHash []byte) (users.User, error) {
	u, ok := m.byName[name]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	if !bytes.Equal(m.secret[u.ID].PasswordHash, passwordHash) {
		return users.User{}, sql.ErrNoRows
	}
	return u, nil
}

func testConfig() config.Auth {
	return config.Auth{
		Token:          "test-secret",
		Expiration:     "1h",
		PasswordPepper: "pepper",
		RootPassword:   "root-password",
	}
}

func newTestService(t *testing.T) (*Service, *memStorage) {
	t.Helper()
	st := newMemStorage()
	s, err := New(context.Background(), testConfig(), st)
	require.NoError(t, err)
	return s, st
}

func TestNewCreatesRootUser(t *testing.T) {
	s, st := newTestService(t)

	root, ok := st.byName["root"]
	require.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, root.Role)

	got, err := s.Login(context.Background(), "root", "root-password")
	require.NoError(t, err)
	assert.Equal(t, root.ID, got.ID)
}

func TestSignUpAndLogin(t *testing.T) {
	s, _ := newTestService(t)

	created, err := s.SignUp(context.Background(), "alice", "hunter2", domain.RolePlayer, "encrypted")
	require.NoError(t, err)

	got, err := s.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestVerifyRoundTrip(t *testing.T) {
	s, _ := newTestService(t)
	created, err := s.SignUp(context.Background(), "bob", "pw", domain.RoleCoach, "")
	require.NoError(t, err)

	token, _, err := s.IssueToken(created.ID)
	require.NoError(t, err)

	got, err := s.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.RoleCoach, got.Role)
}

func TestVerifyRefusals(t *testing.T) {
	s, _ := newTestService(t)
	created, err := s.SignUp(context.Background(), "carol", "pw", domain.RoleParent, "")
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		_, err := s.Verify(context.Background(), "")
		assert.ErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Verify(context.Background(), "definitely.not.a.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			Subject:   created.ID.String(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = s.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong signature", func(t *testing.T) {
		claims := jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			Subject:   created.ID.String(),
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, err = s.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("unknown subject", func(t *testing.T) {
		token, _, err := s.IssueToken(uuid.New())
		require.NoError(t, err)
		_, err = s.Verify(context.Background(), token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestAuthMapsEverythingToNotAuthorized(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Auth(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = s.Auth(context.Background(), "junk")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
