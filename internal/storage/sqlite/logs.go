package sqlite

import (
	"context"
	"time"

	"github.com/pitchside/pitchside/gen/table"
	"github.com/pitchside/pitchside/internal/domain"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) Append(ctx context.Context, entry domain.AlertLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}
	_, err := table.AlertLogs.
		INSERT(table.AlertLogs.AllColumns).
		MODEL(dbmodel.AlertLogs{
			ID:         entry.ID.String(),
			UserID:     entry.UserID.String(),
			AlertType:  string(entry.AlertType),
			TargetID:   entry.TargetID.String(),
			TargetType: entry.TargetType,
			SentAt:     entry.SentAt,
		}).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) Enqueue(ctx context.Context, id, userID uuid.UUID, subject string) error {
	_, err := table.EmailQueue.
		INSERT(table.EmailQueue.AllColumns).
		MODEL(dbmodel.EmailQueue{
			ID:        id.String(),
			UserID:    userID.String(),
			Subject:   subject,
			Processed: false,
			CreatedAt: time.Now(),
		}).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := table.EmailQueue.
		UPDATE(table.EmailQueue.Processed).
		SET(sqlite.Bool(true)).
		WHERE(table.EmailQueue.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	return err
}
