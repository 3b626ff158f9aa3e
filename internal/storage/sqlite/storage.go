package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pitchside/pitchside/gen/table"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/domain"
	sqlite3 "github.com/pitchside/pitchside/internal/migrate"
	"github.com/pitchside/pitchside/internal/storage"

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

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.PreferenceStorage = (*Storage)(nil)
var _ storage.AlertLogStorage = (*Storage)(nil)
var _ storage.PostingStorage = (*Storage)(nil)
var _ storage.EmailQueueStorage = (*Storage)(nil)
var _ storage.ActivityStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.Up(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

// NewWithDB wraps an already opened (and migrated) database handle.
// Used by tests running against a temporary file.
func NewWithDB(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "storage"),
	}
}

// DB exposes the shared handle so the auth storage can run on the same
// connection (sqlite is limited to one open connection here).
func (s *Storage) DB() *sql.DB {
	return s.db
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var dbUser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.User{}, sql.ErrNoRows
		}
		return domain.User{}, err
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) TouchLastActive(ctx context.Context, id uuid.UUID) error {
	_, err := table.Users.
		UPDATE(table.Users.LastActiveAt).
		SET(sqlite.DATETIME(time.Now())).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) ListInactive(ctx context.Context, inactiveBefore, registeredBefore time.Time) ([]domain.User, error) {
	var rows []struct {
		dbmodel.Users
		AlertPreferences *dbmodel.AlertPreferences
	}
	err := table.Users.
		SELECT(table.Users.AllColumns, table.AlertPreferences.EmailNotifications).
		FROM(table.Users.
			LEFT_JOIN(table.AlertPreferences, table.AlertPreferences.UserID.EQ(table.Users.ID))).
		WHERE(table.Users.DeletedAt.IS_NULL().
			AND(table.Users.LastActiveAt.LT(sqlite.DATETIME(inactiveBefore))).
			AND(table.Users.CreatedAt.LT(sqlite.DATETIME(registeredBefore)))).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		// No stored row means default opt-in.
		if p := rows[i].AlertPreferences; p != nil && !p.EmailNotifications {
			continue
		}
		u, err := convertUserToDomain(rows[i].Users)
		if err != nil {
			s.log.WithError(err).WithField("user", rows[i].Users.ID).Warn("skipping unreadable user row")
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
