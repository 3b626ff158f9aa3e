package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deliverCall struct {
	recipients []uuid.UUID
	n          domain.Notification
}

type fakeDeliverer struct {
	calls []deliverCall
}

func (f *fakeDeliverer) DeliverAll(_ context.Context, recipients []uuid.UUID, n domain.Notification) (int, error) {
	f.calls = append(f.calls, deliverCall{recipients: recipients, n: n})
	return len(recipients), nil
}

type fakeUsers struct {
	users    map[uuid.UUID]domain.User
	inactive []domain.User
}

func (f *fakeUsers) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUsers) TouchLastActive(context.Context, uuid.UUID) error { return nil }

func (f *fakeUsers) ListInactive(context.Context, time.Time, time.Time) ([]domain.User, error) {
	return f.inactive, nil
}

type fakePrefs struct {
	digest []uuid.UUID
}

func (f *fakePrefs) Get(_ context.Context, id uuid.UUID) (domain.AlertPreference, bool, error) {
	return domain.AlertPreference{}, false, nil
}

func (f *fakePrefs) Upsert(context.Context, domain.AlertPreference) error { return nil }

func (f *fakePrefs) ListCandidates(context.Context, ...domain.Role) ([]storage.Candidate, error) {
	return nil, nil
}

func (f *fakePrefs) ListDigestRecipients(context.Context) ([]uuid.UUID, error) {
	return f.digest, nil
}

type fakePostings struct {
	vacancies      []domain.Vacancy
	availabilities []domain.Availability
}

func (f *fakePostings) CreateVacancy(_ context.Context, v domain.Vacancy) (domain.Vacancy, error) {
	return v, nil
}

func (f *fakePostings) CreateAvailability(_ context.Context, a domain.Availability) (domain.Availability, error) {
	return a, nil
}

func (f *fakePostings) CountVacanciesSince(context.Context, time.Time) (int64, error) {
	return int64(len(f.vacancies)), nil
}

func (f *fakePostings) CountAvailabilitiesSince(context.Context, time.Time) (int64, error) {
	return int64(len(f.availabilities)), nil
}

func (f *fakePostings) RecentVacancies(_ context.Context, _ time.Time, limit int64) ([]domain.Vacancy, error) {
	if int64(len(f.vacancies)) > limit {
		return f.vacancies[:limit], nil
	}
	return f.vacancies, nil
}

func (f *fakePostings) RecentAvailabilities(_ context.Context, _ time.Time, limit int64) ([]domain.Availability, error) {
	if int64(len(f.availabilities)) > limit {
		return f.availabilities[:limit], nil
	}
	return f.availabilities, nil
}

type fakeActivity struct {
	pruned   []string
	failStep string
}

func (f *fakeActivity) RecordPageView(context.Context, *uuid.UUID, string) error { return nil }
func (f *fakeActivity) RecordSearch(context.Context, *uuid.UUID, string) error   { return nil }
func (f *fakeActivity) RecordSession(context.Context, uuid.UUID) error           { return nil }

func (f *fakeActivity) prune(name string) (int64, error) {
	if name == f.failStep {
		return 0, assert.AnError
	}
	f.pruned = append(f.pruned, name)
	return 1, nil
}

func (f *fakeActivity) PrunePageViews(context.Context, time.Time) (int64, error) {
	return f.prune("page_views")
}

func (f *fakeActivity) PruneSessions(context.Context, time.Time) (int64, error) {
	return f.prune("sessions")
}

func (f *fakeActivity) PruneSearchHistory(context.Context, time.Time) (int64, error) {
	return f.prune("search_history")
}

func (f *fakeActivity) PruneEmailQueue(context.Context, time.Time) (int64, error) {
	return f.prune("email_queue")
}

func (f *fakeActivity) PruneAlertLogs(context.Context, time.Time) (int64, error) {
	return f.prune("alert_logs")
}

type jobsFixture struct {
	users     *fakeUsers
	prefs     *fakePrefs
	postings  *fakePostings
	activity  *fakeActivity
	deliverer *fakeDeliverer
	jobs      *Jobs
}

func newJobsFixture() *jobsFixture {
	f := &jobsFixture{
		users:     &fakeUsers{users: make(map[uuid.UUID]domain.User)},
		prefs:     &fakePrefs{},
		postings:  &fakePostings{},
		activity:  &fakeActivity{},
		deliverer: &fakeDeliverer{},
	}
	f.jobs = NewJobs(testLogger(), f.users, f.prefs, f.postings, f.activity, f.deliverer)
	return f
}

func (f *jobsFixture) addUser(role domain.Role) uuid.UUID {
	id := uuid.New()
	f.users.users[id] = domain.User{ID: id, Role: role}
	return id
}

func someVacancy() domain.Vacancy {
	return domain.Vacancy{
		ID:       uuid.New(),
		TeamName: "Rovers",
		League:   "Sunday League",
		AgeGroup: "U12",
		Position: "Striker",
	}
}

func TestWeeklyDigestQuietWeek(t *testing.T) {
	f := newJobsFixture()
	f.prefs.digest = []uuid.UUID{uuid.New()}

	require.NoError(t, f.jobs.WeeklyDigest(context.Background()))
	assert.Empty(t, f.deliverer.calls, "nothing happened, nothing to say")
}

func TestWeeklyDigestSplitsByRole(t *testing.T) {
	f := newJobsFixture()
	coach := f.addUser(domain.RoleCoach)
	player := f.addUser(domain.RolePlayer)
	parent := f.addUser(domain.RoleParent)
	f.prefs.digest = []uuid.UUID{coach, player, parent}
	f.postings.vacancies = []domain.Vacancy{someVacancy()}
	f.postings.availabilities = []domain.Availability{{
		ID: uuid.New(), PlayerName: "Jo", League: "Sunday League", AgeGroup: "U12", Position: "Keeper",
	}}

	require.NoError(t, f.jobs.WeeklyDigest(context.Background()))
	require.Len(t, f.deliverer.calls, 2)

	seekers, coaches := f.deliverer.calls[0], f.deliverer.calls[1]
	assert.ElementsMatch(t, []uuid.UUID{player, parent}, seekers.recipients)
	assert.Contains(t, seekers.n.Body, "Rovers")
	assert.Equal(t, []uuid.UUID{coach}, coaches.recipients)
	assert.Contains(t, coaches.n.Body, "Jo")
	for _, call := range f.deliverer.calls {
		assert.Equal(t, domain.KindWeeklyDigest, call.n.Kind)
	}
}

func TestWeeklyDigestCapsRecommendations(t *testing.T) {
	f := newJobsFixture()
	player := f.addUser(domain.RolePlayer)
	f.prefs.digest = []uuid.UUID{player}
	for i := 0; i < 10; i++ {
		f.postings.vacancies = append(f.postings.vacancies, someVacancy())
	}

	require.NoError(t, f.jobs.WeeklyDigest(context.Background()))
	require.Len(t, f.deliverer.calls, 1)
	assert.Equal(t, maxRecommend, strings.Count(f.deliverer.calls[0].n.Body, "Rovers needs"))
}

func TestCleanupRunsEveryStep(t *testing.T) {
	f := newJobsFixture()
	require.NoError(t, f.jobs.Cleanup(context.Background()))
	assert.ElementsMatch(t,
		[]string{"page_views", "sessions", "search_history", "email_queue", "alert_logs"},
		f.activity.pruned,
	)
}

func TestCleanupReportsFailedSteps(t *testing.T) {
	f := newJobsFixture()
	f.activity.failStep = "sessions"

	err := f.jobs.Cleanup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 5")
	assert.Len(t, f.activity.pruned, 4, "the other steps still run")
}

func TestReEngagementSilenceOnEmpty(t *testing.T) {
	f := newJobsFixture()
	f.users.inactive = []domain.User{{ID: uuid.New()}}

	// Inactive users but no fresh postings: send nothing at all.
	require.NoError(t, f.jobs.ReEngagement(context.Background()))
	assert.Empty(t, f.deliverer.calls)
}

func TestReEngagementNudgesInactiveUsers(t *testing.T) {
	f := newJobsFixture()
	away1, away2 := uuid.New(), uuid.New()
	f.users.inactive = []domain.User{{ID: away1}, {ID: away2}}
	f.postings.vacancies = []domain.Vacancy{someVacancy()}

	require.NoError(t, f.jobs.ReEngagement(context.Background()))
	require.Len(t, f.deliverer.calls, 1)
	call := f.deliverer.calls[0]
	assert.Equal(t, domain.KindReEngagement, call.n.Kind)
	assert.ElementsMatch(t, []uuid.UUID{away1, away2}, call.recipients)
}

func TestReEngagementNoInactiveUsers(t *testing.T) {
	f := newJobsFixture()
	f.postings.vacancies = []domain.Vacancy{someVacancy()}

	require.NoError(t, f.jobs.ReEngagement(context.Background()))
	assert.Empty(t, f.deliverer.calls)
}
