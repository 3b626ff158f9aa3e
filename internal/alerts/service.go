package alerts

import (
	"context"
	"fmt"

	"github.com/pitchside/pitchside/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service is the producer-facing API. Posting handlers and the
// scheduler call it; it builds the notification, resolves the audience
// through the matcher and hands delivery to the pipeline.
type Service struct {
	matcher  *Matcher
	pipeline *Pipeline
	log      *logrus.Entry
}

func NewService(l *logrus.Logger, matcher *Matcher, pipeline *Pipeline) *Service {
	return &Service{
		matcher:  matcher,
		pipeline: pipeline,
		log:      l.WithField("from", "alerts"),
	}
}

// NotifyNewTeamVacancy alerts every matching player and parent about a
// fresh vacancy. Explicit targetIDs bypass matching, which lets the
// scheduler resend a posting to a fixed audience.
func (s *Service) NotifyNewTeamVacancy(ctx context.Context, v domain.Vacancy, targetIDs ...uuid.UUID) (int, error) {
	n := domain.Notification{
		Kind:  domain.KindNewVacancy,
		Title: fmt.Sprintf("New vacancy: %s", v.TeamName),
		Body:  fmt.Sprintf("%s is looking for a %s (%s, %s).", v.TeamName, v.Position, v.AgeGroup, v.League),
		Data: map[string]string{
			"league":   v.League,
			"ageGroup": v.AgeGroup,
			"position": v.Position,
		},
		Action:     "/vacancies/" + v.ID.String(),
		TargetID:   v.ID,
		TargetType: "vacancy",
	}
	recipients := targetIDs
	if len(recipients) == 0 {
		matched, err := s.matcher.MatchVacancy(ctx, v)
		if err != nil {
			return 0, err
		}
		recipients = matched.ToSlice()
	}
	s.log.WithField("vacancy", v.ID).Debugf("notifying %d recipients", len(recipients))
	return s.pipeline.DeliverAll(ctx, recipients, n)
}

// NotifyPlayerInterest alerts matching coaches about a player who just
// posted their availability.
func (s *Service) NotifyPlayerInterest(ctx context.Context, a domain.Availability, targetIDs ...uuid.UUID) (int, error) {
	n := domain.Notification{
		Kind:  domain.KindPlayerInterest,
		Title: fmt.Sprintf("Player available: %s", a.PlayerName),
		Body:  fmt.Sprintf("%s is looking for a team as %s (%s, %s).", a.PlayerName, a.Position, a.AgeGroup, a.League),
		Data: map[string]string{
			"league":   a.League,
			"ageGroup": a.AgeGroup,
			"position": a.Position,
		},
		Action:     "/players/" + a.ID.String(),
		TargetID:   a.ID,
		TargetType: "availability",
	}
	recipients := targetIDs
	if len(recipients) == 0 {
		matched, err := s.matcher.MatchAvailability(ctx, a)
		if err != nil {
			return 0, err
		}
		recipients = matched.ToSlice()
	}
	s.log.WithField("availability", a.ID).Debugf("notifying %d recipients", len(recipients))
	return s.pipeline.DeliverAll(ctx, recipients, n)
}

// NotifyTrialInvitation delivers an addressed invitation, gated by the
// recipient's trial-invitation toggle.
func (s *Service) NotifyTrialInvitation(ctx context.Context, inv domain.TrialInvitation) (DeliveryResult, error) {
	ok, err := s.matcher.MatchDirectEvent(ctx, domain.KindTrialInvitation, inv.Recipient)
	if err != nil {
		return DeliveryResult{}, err
	}
	if !ok {
		s.log.WithField("user", inv.Recipient).Debug("trial invitation suppressed by preference")
		return DeliveryResult{}, nil
	}
	n := domain.Notification{
		Kind:  domain.KindTrialInvitation,
		Title: fmt.Sprintf("Trial invitation from %s", inv.TeamName),
		Body:  fmt.Sprintf("%s invited you to a trial at %s on %s.", inv.TeamName, inv.Venue, inv.Starts.Format("Mon 2 Jan 15:04")),
		Data: map[string]string{
			"team":  inv.TeamName,
			"venue": inv.Venue,
		},
		Action:     "/trials/" + inv.ID.String(),
		TargetID:   inv.ID,
		TargetType: "trial_invitation",
	}
	return s.pipeline.Deliver(ctx, inv.Recipient, n)
}

// NotifyMatchCompletion delivers an addressed result notice, gated by
// the recipient's instant-alert toggle.
func (s *Service) NotifyMatchCompletion(ctx context.Context, mc domain.MatchCompletion) (DeliveryResult, error) {
	ok, err := s.matcher.MatchDirectEvent(ctx, domain.KindMatchCompletion, mc.Recipient)
	if err != nil {
		return DeliveryResult{}, err
	}
	if !ok {
		s.log.WithField("user", mc.Recipient).Debug("match completion suppressed by preference")
		return DeliveryResult{}, nil
	}
	n := domain.Notification{
		Kind:  domain.KindMatchCompletion,
		Title: fmt.Sprintf("Full time: %s %d - %d %s", mc.HomeTeam, mc.HomeScore, mc.AwayScore, mc.AwayTeam),
		Body:  fmt.Sprintf("%s %d - %d %s, played %s.", mc.HomeTeam, mc.HomeScore, mc.AwayScore, mc.AwayTeam, mc.PlayedAt.Format("Mon 2 Jan")),
		Data: map[string]string{
			"homeTeam": mc.HomeTeam,
			"awayTeam": mc.AwayTeam,
		},
		Action:     "/matches/" + mc.ID.String(),
		TargetID:   mc.ID,
		TargetType: "match",
	}
	return s.pipeline.Deliver(ctx, mc.Recipient, n)
}
