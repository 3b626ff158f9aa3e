package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/pitchside/internal/alerts"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	JobWeeklyDigest = "weekly-digest"
	JobCleanup      = "retention-cleanup"
	JobReEngagement = "re-engagement"

	digestWindow   = 7 * 24 * time.Hour
	inactiveAfter  = 30 * 24 * time.Hour
	minAccountAge  = 7 * 24 * time.Hour
	maxRecommend   = 3
	reEngageWindow = 30 * 24 * time.Hour
)

// Deliverer fans one notification out to a recipient set.
type Deliverer interface {
	DeliverAll(ctx context.Context, recipients []uuid.UUID, n domain.Notification) (int, error)
}

var _ Deliverer = (*alerts.Pipeline)(nil)

// Jobs holds the scheduled work: the weekly digest, the retention
// cleanup and the re-engagement nudge.
type Jobs struct {
	users    storage.UserStorage
	prefs    storage.PreferenceStorage
	postings storage.PostingStorage
	activity storage.ActivityStorage
	pipeline Deliverer
	log      *logrus.Entry
}

func NewJobs(
	l *logrus.Logger,
	users storage.UserStorage,
	prefs storage.PreferenceStorage,
	postings storage.PostingStorage,
	activity storage.ActivityStorage,
	pipeline Deliverer,
) *Jobs {
	return &Jobs{
		users:    users,
		prefs:    prefs,
		postings: postings,
		activity: activity,
		pipeline: pipeline,
		log:      l.WithField("from", "jobs"),
	}
}

// Register wires every job into the scheduler under its cron spec.
func (j *Jobs) Register(s *Scheduler, digestSpec, cleanupSpec, reengagementSpec string) error {
	if err := s.Add(JobWeeklyDigest, digestSpec, j.WeeklyDigest); err != nil {
		return err
	}
	if err := s.Add(JobCleanup, cleanupSpec, j.Cleanup); err != nil {
		return err
	}
	return s.Add(JobReEngagement, reengagementSpec, j.ReEngagement)
}

// WeeklyDigest summarizes the last seven days for every opted-in user.
// Coaches get player recommendations, everyone else gets vacancies. A
// week with no activity sends nothing.
func (j *Jobs) WeeklyDigest(ctx context.Context) error {
	since := time.Now().Add(-digestWindow)
	vacancies, err := j.postings.CountVacanciesSince(ctx, since)
	if err != nil {
		return fmt.Errorf("count vacancies: %w", err)
	}
	availabilities, err := j.postings.CountAvailabilitiesSince(ctx, since)
	if err != nil {
		return fmt.Errorf("count availabilities: %w", err)
	}
	if vacancies == 0 && availabilities == 0 {
		j.log.Info("quiet week, digest skipped")
		return nil
	}

	recipients, err := j.prefs.ListDigestRecipients(ctx)
	if err != nil {
		return fmt.Errorf("list digest recipients: %w", err)
	}
	var coaches, seekers []uuid.UUID
	for _, id := range recipients {
		user, err := j.users.GetUser(ctx, id)
		if err != nil {
			j.log.WithError(err).WithField("user", id).Warn("skipping digest recipient")
			continue
		}
		if user.Role == domain.RoleCoach {
			coaches = append(coaches, id)
		} else {
			seekers = append(seekers, id)
		}
	}

	summary := fmt.Sprintf("This week on Pitchside: %d new vacancies, %d new players looking for a team.", vacancies, availabilities)

	if len(seekers) > 0 {
		recent, err := j.postings.RecentVacancies(ctx, since, maxRecommend)
		if err != nil {
			return fmt.Errorf("recent vacancies: %w", err)
		}
		lines := make([]string, 0, len(recent))
		for _, v := range recent {
			lines = append(lines, fmt.Sprintf("%s needs a %s (%s, %s)", v.TeamName, v.Position, v.AgeGroup, v.League))
		}
		sent, err := j.pipeline.DeliverAll(ctx, seekers, digestNotification(summary, lines))
		if err != nil {
			return err
		}
		j.log.Infof("digest sent to %d of %d players and parents", sent, len(seekers))
	}
	if len(coaches) > 0 {
		recent, err := j.postings.RecentAvailabilities(ctx, since, maxRecommend)
		if err != nil {
			return fmt.Errorf("recent availabilities: %w", err)
		}
		lines := make([]string, 0, len(recent))
		for _, a := range recent {
			lines = append(lines, fmt.Sprintf("%s, %s (%s, %s)", a.PlayerName, a.Position, a.AgeGroup, a.League))
		}
		sent, err := j.pipeline.DeliverAll(ctx, coaches, digestNotification(summary, lines))
		if err != nil {
			return err
		}
		j.log.Infof("digest sent to %d of %d coaches", sent, len(coaches))
	}
	return nil
}

func digestNotification(summary string, lines []string) domain.Notification {
	body := summary
	if len(lines) > 0 {
		body += "\n\nYou might be interested in:\n- " + strings.Join(lines, "\n- ")
	}
	return domain.Notification{
		Kind:       domain.KindWeeklyDigest,
		Title:      "Your weekly Pitchside digest",
		Body:       body,
		TargetType: "digest",
	}
}

// Cleanup prunes aged rows. The horizons are fixed; running the job
// twice in a row deletes nothing the second time.
func (j *Jobs) Cleanup(ctx context.Context) error {
	now := time.Now()
	steps := []struct {
		name   string
		before time.Time
		prune  func(context.Context, time.Time) (int64, error)
	}{
		{"page views", now.AddDate(0, -6, 0), j.activity.PrunePageViews},
		{"sessions", now.AddDate(0, -3, 0), j.activity.PruneSessions},
		{"search history", now.AddDate(-1, 0, 0), j.activity.PruneSearchHistory},
		{"email queue", now.AddDate(0, -1, 0), j.activity.PruneEmailQueue},
		{"alert logs", now.AddDate(-1, 0, 0), j.activity.PruneAlertLogs},
	}
	failed := 0
	for _, step := range steps {
		deleted, err := step.prune(ctx, step.before)
		if err != nil {
			j.log.WithError(err).Errorf("pruning %s failed", step.name)
			failed++
			continue
		}
		if deleted > 0 {
			j.log.Infof("pruned %d %s rows", deleted, step.name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cleanup steps failed", failed, len(steps))
	}
	return nil
}

// ReEngagement nudges users who registered over a week ago and have
// been away for a month. No fresh postings means no send: an empty
// nudge trains people to ignore us.
func (j *Jobs) ReEngagement(ctx context.Context) error {
	now := time.Now()
	inactive, err := j.users.ListInactive(ctx, now.Add(-inactiveAfter), now.Add(-minAccountAge))
	if err != nil {
		return fmt.Errorf("list inactive users: %w", err)
	}
	if len(inactive) == 0 {
		return nil
	}
	recent, err := j.postings.RecentVacancies(ctx, now.Add(-reEngageWindow), maxRecommend)
	if err != nil {
		return fmt.Errorf("recent vacancies: %w", err)
	}
	if len(recent) == 0 {
		j.log.Info("no recent postings, re-engagement skipped")
		return nil
	}
	lines := make([]string, 0, len(recent))
	for _, v := range recent {
		lines = append(lines, fmt.Sprintf("%s needs a %s (%s, %s)", v.TeamName, v.Position, v.AgeGroup, v.League))
	}
	n := domain.Notification{
		Kind:       domain.KindReEngagement,
		Title:      "Fresh opportunities on Pitchside",
		Body:       "Since your last visit:\n- " + strings.Join(lines, "\n- "),
		TargetType: "re_engagement",
	}
	ids := make([]uuid.UUID, 0, len(inactive))
	for _, u := range inactive {
		ids = append(ids, u.ID)
	}
	sent, err := j.pipeline.DeliverAll(ctx, ids, n)
	if err != nil {
		return err
	}
	j.log.Infof("re-engagement sent to %d of %d inactive users", sent, len(ids))
	return nil
}
