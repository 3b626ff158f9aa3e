package alerts

import (
	"context"
	"io"
	"testing"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrefs struct {
	candidates []storage.Candidate
	prefs      map[uuid.UUID]domain.AlertPreference
}

var _ storage.PreferenceStorage = (*fakePrefs)(nil)

func (f *fakePrefs) Get(_ context.Context, userID uuid.UUID) (domain.AlertPreference, bool, error) {
	p, ok := f.prefs[userID]
	return p, ok, nil
}

func (f *fakePrefs) Upsert(_ context.Context, pref domain.AlertPreference) error {
	if f.prefs == nil {
		f.prefs = make(map[uuid.UUID]domain.AlertPreference)
	}
	f.prefs[pref.UserID] = pref
	return nil
}

func (f *fakePrefs) ListCandidates(context.Context, ...domain.Role) ([]storage.Candidate, error) {
	return f.candidates, nil
}

func (f *fakePrefs) ListDigestRecipients(context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func candidate(id uuid.UUID, leagues, ageGroups, positions string) storage.Candidate {
	return storage.Candidate{
		UserID:             id,
		Role:               domain.RolePlayer,
		EmailNotifications: true,
		NewVacancyAlerts:   true,
		NewPlayerAlerts:    true,
		TrialInvitations:   true,
		InstantAlerts:      true,
		RawLeagues:         leagues,
		RawAgeGroups:       ageGroups,
		RawPositions:       positions,
	}
}

func testVacancy() domain.Vacancy {
	return domain.Vacancy{
		ID:       uuid.New(),
		TeamName: "Riverside Rovers",
		League:   "Sunday League",
		AgeGroup: "U12",
		Position: "Striker",
	}
}

func TestMatchVacancy(t *testing.T) {
	t.Parallel()

	wildcard := uuid.New()
	exact := uuid.New()
	wrongAge := uuid.New()
	optedOut := uuid.New()
	muted := uuid.New()

	outCandidate := candidate(optedOut, "[]", "[]", "[]")
	outCandidate.NewVacancyAlerts = false
	mutedCandidate := candidate(muted, "[]", "[]", "[]")
	mutedCandidate.EmailNotifications = false

	prefs := &fakePrefs{candidates: []storage.Candidate{
		candidate(wildcard, "[]", "[]", "[]"),
		candidate(exact, `["sunday league"]`, `["U12"]`, `["striker"]`),
		candidate(wrongAge, "[]", `["U14"]`, "[]"),
		outCandidate,
		mutedCandidate,
	}}
	m := NewMatcher(testLogger(), prefs)

	matched, err := m.MatchVacancy(context.Background(), testVacancy())
	require.NoError(t, err)

	assert.True(t, matched.Contains(wildcard), "empty filters match anything")
	assert.True(t, matched.Contains(exact), "matching is case and whitespace insensitive")
	assert.False(t, matched.Contains(wrongAge), "U14 filter must not match a U12 vacancy")
	assert.False(t, matched.Contains(optedOut))
	assert.False(t, matched.Contains(muted))
}

func TestMatchVacancySkipsMalformedFilters(t *testing.T) {
	t.Parallel()

	good := uuid.New()
	broken := uuid.New()
	prefs := &fakePrefs{candidates: []storage.Candidate{
		candidate(broken, `{"not":"a list"`, "[]", "[]"),
		candidate(good, "[]", "[]", "[]"),
	}}
	m := NewMatcher(testLogger(), prefs)

	matched, err := m.MatchVacancy(context.Background(), testVacancy())
	require.NoError(t, err)
	assert.False(t, matched.Contains(broken))
	assert.True(t, matched.Contains(good), "one unreadable candidate must not sink the pass")
}

func TestMatchAvailability(t *testing.T) {
	t.Parallel()

	coach := uuid.New()
	noPlayerAlerts := uuid.New()
	off := candidate(noPlayerAlerts, "[]", "[]", "[]")
	off.NewPlayerAlerts = false

	prefs := &fakePrefs{candidates: []storage.Candidate{
		candidate(coach, "[]", `["u12"]`, "[]"),
		off,
	}}
	m := NewMatcher(testLogger(), prefs)

	matched, err := m.MatchAvailability(context.Background(), domain.Availability{
		ID:         uuid.New(),
		PlayerName: "Jo",
		League:     "Sunday League",
		AgeGroup:   "U12",
		Position:   "Keeper",
	})
	require.NoError(t, err)
	assert.True(t, matched.Contains(coach))
	assert.False(t, matched.Contains(noPlayerAlerts))
}

func TestMatchDirectEvent(t *testing.T) {
	t.Parallel()

	declined := uuid.New()
	pref := domain.DefaultPreference(declined)
	pref.TrialInvitations = false
	prefs := &fakePrefs{prefs: map[uuid.UUID]domain.AlertPreference{declined: pref}}
	m := NewMatcher(testLogger(), prefs)

	ok, err := m.MatchDirectEvent(context.Background(), domain.KindTrialInvitation, declined)
	require.NoError(t, err)
	assert.False(t, ok)

	// No stored row means default preferences: everything on.
	ok, err = m.MatchDirectEvent(context.Background(), domain.KindTrialInvitation, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
