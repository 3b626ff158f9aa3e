package sqlite

import (
	"context"
	"time"

	"github.com/pitchside/pitchside/gen/table"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) RecordPageView(ctx context.Context, userID *uuid.UUID, path string) error {
	_, err := table.PageViews.
		INSERT(table.PageViews.AllColumns).
		MODEL(dbmodel.PageViews{
			ID:        uuid.New().String(),
			UserID:    uuidPtrToString(userID),
			Path:      path,
			CreatedAt: time.Now(),
		}).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) RecordSearch(ctx context.Context, userID *uuid.UUID, query string) error {
	_, err := table.SearchHistory.
		INSERT(table.SearchHistory.AllColumns).
		MODEL(dbmodel.SearchHistory{
			ID:        uuid.New().String(),
			UserID:    uuidPtrToString(userID),
			Query:     query,
			CreatedAt: time.Now(),
		}).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) RecordSession(ctx context.Context, userID uuid.UUID) error {
	_, err := table.UserSessions.
		INSERT(table.UserSessions.AllColumns).
		MODEL(dbmodel.UserSessions{
			ID:        uuid.New().String(),
			UserID:    userID.String(),
			CreatedAt: time.Now(),
		}).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) PrunePageViews(ctx context.Context, before time.Time) (int64, error) {
	res, err := table.PageViews.
		DELETE().
		WHERE(table.PageViews.CreatedAt.LT(sqlite.DATETIME(before))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) PruneSessions(ctx context.Context, before time.Time) (int64, error) {
	res, err := table.UserSessions.
		DELETE().
		WHERE(table.UserSessions.CreatedAt.LT(sqlite.DATETIME(before))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) PruneSearchHistory(ctx context.Context, before time.Time) (int64, error) {
	res, err := table.SearchHistory.
		DELETE().
		WHERE(table.SearchHistory.CreatedAt.LT(sqlite.DATETIME(before))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) PruneEmailQueue(ctx context.Context, before time.Time) (int64, error) {
	res, err := table.EmailQueue.
		DELETE().
		WHERE(table.EmailQueue.Processed.EQ(sqlite.Bool(true)).
			AND(table.EmailQueue.CreatedAt.LT(sqlite.DATETIME(before)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) PruneAlertLogs(ctx context.Context, before time.Time) (int64, error) {
	res, err := table.AlertLogs.
		DELETE().
		WHERE(table.AlertLogs.SentAt.LT(sqlite.DATETIME(before))).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
