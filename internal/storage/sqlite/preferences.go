package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/pitchside/pitchside/gen/table"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) Get(ctx context.Context, userID uuid.UUID) (domain.AlertPreference, bool, error) {
	var row dbmodel.AlertPreferences
	err := table.AlertPreferences.
		SELECT(table.AlertPreferences.AllColumns).
		FROM(table.AlertPreferences).
		WHERE(table.AlertPreferences.UserID.EQ(sqlite.UUID(userID))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.AlertPreference{}, false, nil
		}
		return domain.AlertPreference{}, false, err
	}
	pref, err := convertPreferenceToDomain(row)
	if err != nil {
		return domain.AlertPreference{}, false, err
	}
	return pref, true, nil
}

func (s *Storage) Upsert(ctx context.Context, pref domain.AlertPreference) error {
	row, err := convertPreferenceFromDomain(pref)
	if err != nil {
		return err
	}
	row.UpdatedAt = time.Now()
	_, err = table.AlertPreferences.
		INSERT(table.AlertPreferences.AllColumns).
		MODEL(row).
		ON_CONFLICT(table.AlertPreferences.UserID).
		DO_UPDATE(sqlite.SET(
			table.AlertPreferences.EmailNotifications.SET(table.AlertPreferences.EXCLUDED.EmailNotifications),
			table.AlertPreferences.NewVacancyAlerts.SET(table.AlertPreferences.EXCLUDED.NewVacancyAlerts),
			table.AlertPreferences.NewPlayerAlerts.SET(table.AlertPreferences.EXCLUDED.NewPlayerAlerts),
			table.AlertPreferences.TrialInvitations.SET(table.AlertPreferences.EXCLUDED.TrialInvitations),
			table.AlertPreferences.WeeklyDigest.SET(table.AlertPreferences.EXCLUDED.WeeklyDigest),
			table.AlertPreferences.InstantAlerts.SET(table.AlertPreferences.EXCLUDED.InstantAlerts),
			table.AlertPreferences.PreferredLeagues.SET(table.AlertPreferences.EXCLUDED.PreferredLeagues),
			table.AlertPreferences.AgeGroups.SET(table.AlertPreferences.EXCLUDED.AgeGroups),
			table.AlertPreferences.Positions.SET(table.AlertPreferences.EXCLUDED.Positions),
			table.AlertPreferences.MaxDistanceKm.SET(table.AlertPreferences.EXCLUDED.MaxDistanceKm),
			table.AlertPreferences.UpdatedAt.SET(table.AlertPreferences.EXCLUDED.UpdatedAt),
		)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) ListCandidates(ctx context.Context, roles ...domain.Role) ([]storage.Candidate, error) {
	roleExprs := make([]sqlite.Expression, 0, len(roles))
	for _, r := range roles {
		roleExprs = append(roleExprs, sqlite.String(string(r)))
	}

	var rows []struct {
		dbmodel.Users
		AlertPreferences *dbmodel.AlertPreferences
	}
	err := table.Users.
		SELECT(table.Users.ID, table.Users.Role, table.AlertPreferences.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.AlertPreferences, table.AlertPreferences.UserID.EQ(table.Users.ID))).
		WHERE(table.Users.DeletedAt.IS_NULL().
			AND(table.Users.Role.IN(roleExprs...))).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	candidates := make([]storage.Candidate, 0, len(rows))
	for i := range rows {
		c, err := convertCandidate(rows[i].Users, rows[i].AlertPreferences)
		if err != nil {
			s.log.WithError(err).WithField("user", rows[i].Users.ID).Warn("skipping unreadable candidate row")
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func (s *Storage) ListDigestRecipients(ctx context.Context) ([]uuid.UUID, error) {
	var rows []struct {
		dbmodel.Users
		AlertPreferences *dbmodel.AlertPreferences
	}
	err := table.Users.
		SELECT(table.Users.ID, table.AlertPreferences.WeeklyDigest, table.AlertPreferences.EmailNotifications).
		FROM(table.Users.
			LEFT_JOIN(table.AlertPreferences, table.AlertPreferences.UserID.EQ(table.Users.ID))).
		WHERE(table.Users.DeletedAt.IS_NULL()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		// No stored row means default opt-in.
		if p := rows[i].AlertPreferences; p != nil && !(p.WeeklyDigest && p.EmailNotifications) {
			continue
		}
		id, err := uuid.Parse(rows[i].Users.ID)
		if err != nil {
			s.log.WithError(err).WithField("user", rows[i].Users.ID).Warn("skipping unreadable user id")
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
