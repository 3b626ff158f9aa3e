package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertPreference is one user's notification settings. A user with no
// stored row gets DefaultPreference: opted in everywhere with empty
// (match-anything) filter lists, so new users receive alerts before
// they ever touch the settings page.
type AlertPreference struct {
	UserID             uuid.UUID
	EmailNotifications bool
	NewVacancyAlerts   bool
	NewPlayerAlerts    bool
	TrialInvitations   bool
	WeeklyDigest       bool
	InstantAlerts      bool
	PreferredLeagues   []string
	AgeGroups          []string
	Positions          []string
	MaxDistanceKm      int
	UpdatedAt          time.Time
}

func DefaultPreference(userID uuid.UUID) AlertPreference {
	return AlertPreference{
		UserID:             userID,
		EmailNotifications: true,
		NewVacancyAlerts:   true,
		NewPlayerAlerts:    true,
		TrialInvitations:   true,
		WeeklyDigest:       true,
		InstantAlerts:      true,
	}
}

// Allows reports whether the preference toggle for the given alert kind
// is on. Unknown kinds fall through to the master email toggle so a new
// category is opt-out, not silently dropped.
func (p AlertPreference) Allows(kind AlertKind) bool {
	switch kind {
	case KindNewVacancy:
		return p.NewVacancyAlerts
	case KindPlayerInterest:
		return p.NewPlayerAlerts
	case KindTrialInvitation:
		return p.TrialInvitations
	case KindMatchCompletion:
		return p.InstantAlerts
	case KindWeeklyDigest:
		return p.WeeklyDigest
	default:
		return p.EmailNotifications
	}
}
