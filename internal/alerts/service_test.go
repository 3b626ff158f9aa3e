package alerts

import (
	"context"
	"testing"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceFixture(t *testing.T) (*Service, *pipelineFixture) {
	t.Helper()
	f := newPipelineFixture(t)
	s := NewService(testLogger(), NewMatcher(testLogger(), f.prefs), f.p)
	return s, f
}

func TestNotifyNewTeamVacancy(t *testing.T) {
	t.Parallel()

	s, f := newServiceFixture(t)
	interested := f.addUser("fan@example.org")
	elsewhere := f.addUser("other@example.org")
	f.prefs.candidates = []storage.Candidate{
		candidate(interested, "[]", `["U12"]`, "[]"),
		candidate(elsewhere, "[]", `["U16"]`, "[]"),
	}

	n, err := s.NotifyNewTeamVacancy(context.Background(), testVacancy())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uuid.UUID{interested}, f.push.sent)
}

func TestNotifyNewTeamVacancyExplicitTargets(t *testing.T) {
	t.Parallel()

	s, f := newServiceFixture(t)
	target := f.addUser("direct@example.org")

	// Explicit targets skip matching entirely; no candidates needed.
	n, err := s.NotifyNewTeamVacancy(context.Background(), testVacancy(), target)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNotifyTrialInvitationSuppressed(t *testing.T) {
	t.Parallel()

	s, f := newServiceFixture(t)
	id := f.addUser("busy@example.org")
	pref := domain.DefaultPreference(id)
	pref.TrialInvitations = false
	require.NoError(t, f.prefs.Upsert(context.Background(), pref))

	res, err := s.NotifyTrialInvitation(context.Background(), domain.TrialInvitation{
		ID:        uuid.New(),
		Recipient: id,
		TeamName:  "Riverside Rovers",
	})
	require.NoError(t, err)
	assert.False(t, res.Pushed)
	assert.False(t, res.Mailed)
	assert.Equal(t, 0, f.logs.count(), "suppressed events leave no trace")
}

func TestNotifyMatchCompletion(t *testing.T) {
	t.Parallel()

	s, f := newServiceFixture(t)
	id := f.addUser("parent@example.org")

	res, err := s.NotifyMatchCompletion(context.Background(), domain.MatchCompletion{
		ID:        uuid.New(),
		Recipient: id,
		HomeTeam:  "Rovers",
		AwayTeam:  "United",
		HomeScore: 2,
		AwayScore: 1,
	})
	require.NoError(t, err)
	assert.True(t, res.Pushed)
	assert.True(t, res.Mailed)
	assert.Equal(t, 1, f.logs.count())
}
