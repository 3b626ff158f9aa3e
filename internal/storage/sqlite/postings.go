package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/pitchside/pitchside/gen/table"
	"github.com/pitchside/pitchside/internal/domain"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) CreateVacancy(ctx context.Context, v domain.Vacancy) (domain.Vacancy, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	var row dbmodel.Vacancies
	err := table.Vacancies.
		INSERT(table.Vacancies.AllColumns).
		MODEL(convertVacancyFromDomain(v)).
		RETURNING(table.Vacancies.AllColumns).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		return domain.Vacancy{}, err
	}
	return convertVacancyToDomain(row)
}

func (s *Storage) CreateAvailability(ctx context.Context, a domain.Availability) (domain.Availability, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	var row dbmodel.Availabilities
	err := table.Availabilities.
		INSERT(table.Availabilities.AllColumns).
		MODEL(convertAvailabilityFromDomain(a)).
		RETURNING(table.Availabilities.AllColumns).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		return domain.Availability{}, err
	}
	return convertAvailabilityToDomain(row)
}

func (s *Storage) CountVacanciesSince(ctx context.Context, since time.Time) (int64, error) {
	var dest struct {
		Count int64
	}
	err := table.Vacancies.
		SELECT(sqlite.COUNT(table.Vacancies.ID).AS("count")).
		FROM(table.Vacancies).
		WHERE(table.Vacancies.CreatedAt.GT(sqlite.DATETIME(since))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	return dest.Count, nil
}

func (s *Storage) CountAvailabilitiesSince(ctx context.Context, since time.Time) (int64, error) {
	var dest struct {
		Count int64
	}
	err := table.Availabilities.
		SELECT(sqlite.COUNT(table.Availabilities.ID).AS("count")).
		FROM(table.Availabilities).
		WHERE(table.Availabilities.CreatedAt.GT(sqlite.DATETIME(since))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	return dest.Count, nil
}

func (s *Storage) RecentVacancies(ctx context.Context, since time.Time, limit int64) ([]domain.Vacancy, error) {
	var rows []dbmodel.Vacancies
	err := table.Vacancies.
		SELECT(table.Vacancies.AllColumns).
		FROM(table.Vacancies).
		WHERE(table.Vacancies.CreatedAt.GT(sqlite.DATETIME(since))).
		ORDER_BY(table.Vacancies.CreatedAt.DESC()).
		LIMIT(limit).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]domain.Vacancy, 0, len(rows))
	for i := range rows {
		v, err := convertVacancyToDomain(rows[i])
		if err != nil {
			s.log.WithError(err).WithField("vacancy", rows[i].ID).Warn("skipping unreadable vacancy row")
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Storage) RecentAvailabilities(ctx context.Context, since time.Time, limit int64) ([]domain.Availability, error) {
	var rows []dbmodel.Availabilities
	err := table.Availabilities.
		SELECT(table.Availabilities.AllColumns).
		FROM(table.Availabilities).
		WHERE(table.Availabilities.CreatedAt.GT(sqlite.DATETIME(since))).
		ORDER_BY(table.Availabilities.CreatedAt.DESC()).
		LIMIT(limit).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]domain.Availability, 0, len(rows))
	for i := range rows {
		a, err := convertAvailabilityToDomain(rows[i])
		if err != nil {
			s.log.WithError(err).WithField("availability", rows[i].ID).Warn("skipping unreadable availability row")
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
