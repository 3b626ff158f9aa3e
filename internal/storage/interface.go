package storage

import (
	"context"
	"time"

	"github.com/pitchside/pitchside/internal/domain"

	"github.com/google/uuid"
)

// Candidate is one row of the matching pass: the user's role gate plus
// preference toggles and the raw (still JSON-encoded) filter lists. A
// user without a stored preference row arrives with default toggles and
// empty lists. Decoding the lists is the matcher's job so that a
// malformed row skips only that candidate.
type Candidate struct {
	UserID             uuid.UUID
	Role               domain.Role
	EmailNotifications bool
	NewVacancyAlerts   bool
	NewPlayerAlerts    bool
	TrialInvitations   bool
	InstantAlerts      bool
	RawLeagues         string
	RawAgeGroups       string
	RawPositions       string
}

type UserStorage interface {
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	TouchLastActive(ctx context.Context, id uuid.UUID) error
	// ListInactive returns users idle since inactiveBefore and registered
	// before registeredBefore who still have email notifications on (a
	// missing preference row counts as opted in).
	ListInactive(ctx context.Context, inactiveBefore, registeredBefore time.Time) ([]domain.User, error)
}

type PreferenceStorage interface {
	// Get returns the stored preference row; found is false when the
	// user never saved one (callers substitute domain.DefaultPreference).
	Get(ctx context.Context, userID uuid.UUID) (pref domain.AlertPreference, found bool, err error)
	Upsert(ctx context.Context, pref domain.AlertPreference) error
	ListCandidates(ctx context.Context, roles ...domain.Role) ([]Candidate, error)
	ListDigestRecipients(ctx context.Context) ([]uuid.UUID, error)
}

type AlertLogStorage interface {
	Append(ctx context.Context, entry domain.AlertLog) error
}

type PostingStorage interface {
	CreateVacancy(ctx context.Context, v domain.Vacancy) (domain.Vacancy, error)
	CreateAvailability(ctx context.Context, a domain.Availability) (domain.Availability, error)
	CountVacanciesSince(ctx context.Context, since time.Time) (int64, error)
	CountAvailabilitiesSince(ctx context.Context, since time.Time) (int64, error)
	RecentVacancies(ctx context.Context, since time.Time, limit int64) ([]domain.Vacancy, error)
	RecentAvailabilities(ctx context.Context, since time.Time, limit int64) ([]domain.Availability, error)
}

type EmailQueueStorage interface {
	Enqueue(ctx context.Context, id, userID uuid.UUID, subject string) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

type ActivityStorage interface {
	RecordPageView(ctx context.Context, userID *uuid.UUID, path string) error
	RecordSearch(ctx context.Context, userID *uuid.UUID, query string) error
	RecordSession(ctx context.Context, userID uuid.UUID) error

	PrunePageViews(ctx context.Context, before time.Time) (int64, error)
	PruneSessions(ctx context.Context, before time.Time) (int64, error)
	PruneSearchHistory(ctx context.Context, before time.Time) (int64, error)
	PruneEmailQueue(ctx context.Context, before time.Time) (int64, error)
	PruneAlertLogs(ctx context.Context, before time.Time) (int64, error)
}
