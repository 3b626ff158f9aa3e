package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"errors"
	"time"

	"github.com/pitchside/pitchside/auth/storage"
	"github.com/pitchside/pitchside/auth/users"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type Service struct {
	storage storage.AuthStorage
	cfg     config.Auth
}

var (
	ErrForbidden     = errors.New("access denied")
	ErrNotAuthorized = errors.New("unauthorized")

	// Handshake refusal reasons. Surfaced only to logs, never to the
	// remote peer, so a probing client cannot tell which check failed.
	ErrTokenMissing = errors.New("credential missing")
	ErrTokenExpired = errors.New("credential expired")
	ErrTokenInvalid = errors.New("credential invalid")
)

func New(ctx context.Context, cfg config.Auth, storage storage.AuthStorage) (*Service, error) {
	s := Service{
		cfg:     cfg,
		storage: storage,
	}
	_, err := s.storage.GetUserSecret(ctx, users.User{Name: "root"})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		salt, err := randomSalt()
		if err != nil {
			return nil, err
		}
		secret := generateSecret(cfg.RootPassword, cfg.PasswordPepper, salt)
		err = s.storage.CreateUser(ctx, users.User{
			ID:           uuid.New(),
			Name:         "root",
			Role:         domain.RoleAdmin,
			RegisteredAt: time.Now(),
		}, secret, "")
		if err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *Service) Login(ctx context.Context, name string, password string) (users.User, error) {
	userSecret, err := s.storage.GetUserSecret(ctx, users.User{Name: name})
	if err != nil {
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, userSecret.Salt)
	return s.storage.SignIn(ctx, name, secret.PasswordHash)
}

func (s *Service) SignUp(ctx context.Context, name string, password string, role domain.Role, emailEnc string) (users.User, error) {
	salt, err := randomSalt()
	if err != nil {
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, salt)
	u := users.User{
		ID:           uuid.New(),
		Name:         name,
		Role:         role,
		RegisteredAt: time.Now(),
	}
	err = s.storage.CreateUser(ctx, u, secret, emailEnc)
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	token, expirationTime, err := s.IssueToken(userID)
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

func (s *Service) IssueToken(userID uuid.UUID) (string, time.Time, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return "", time.Time{}, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expirationTime, nil
}

// Verify decodes a bearer credential into a stable identity. It is the
// single authentication step of the push handshake: callers refuse the
// upgrade on any error and log the reason, returning no detail to the
// peer.
func (s *Service) Verify(ctx context.Context, raw string) (users.User, error) {
	if raw == "" {
		return users.User{}, ErrTokenMissing
	}
	token, err := jwt.ParseWithClaims(raw, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		ve := &jwt.ValidationError{}
		if errors.As(err, &ve) && ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return users.User{}, ErrTokenExpired
		}
		return users.User{}, ErrTokenInvalid
	}
	if !token.Valid {
		return users.User{}, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return users.User{}, ErrTokenInvalid
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, ErrTokenInvalid
	}
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrTokenInvalid
		}
		return users.User{}, err
	}
	return user, nil
}

// Auth is the API-middleware entry point: verify the token and reject
// with ErrNotAuthorized so handlers map it to a 401.
func (s *Service) Auth(ctx context.Context, token string) (users.User, error) {
	user, err := s.Verify(ctx, token)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}
	return user, nil
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, 8)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}

func generateSecret(password string, pepper string, salt []byte) users.Secret {
	sha := sha256.New()
	sha.Write([]byte(pepper + password))
	sha.Write(salt)
	return users.Secret{
		PasswordHash: sha.Sum(nil),
		Salt:         salt,
	}
}
