package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidNotification is returned when a notification misses its
// kind or title and cannot be delivered anywhere.
var ErrInvalidNotification = errors.New("invalid notification")

// AlertKind names a notification category. Each kind maps to one
// preference toggle.
type AlertKind string

const (
	KindNewVacancy      AlertKind = "new_vacancy"
	KindPlayerInterest  AlertKind = "player_interest"
	KindTrialInvitation AlertKind = "trial_invitation"
	KindMatchCompletion AlertKind = "match_completion"
	KindWeeklyDigest    AlertKind = "weekly_digest"
	KindReEngagement    AlertKind = "re_engagement"
	KindWelcome         AlertKind = "welcome"
)

// Notification is the transient value passed through the delivery
// pipeline. It is never persisted, only summarized into an alert log row.
type Notification struct {
	Kind       AlertKind
	Title      string
	Body       string
	Data       map[string]string
	Action     string
	TargetID   uuid.UUID
	TargetType string
}

func (n Notification) Valid() bool {
	return n.Kind != "" && n.Title != ""
}

// Envelope is the wire form of a pushed notification. ID is fresh per
// send so multi-device clients can deduplicate acknowledgements.
type Envelope struct {
	ID        uuid.UUID         `json:"id"`
	Type      AlertKind         `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	Action    string            `json:"action,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func NewEnvelope(n Notification) Envelope {
	return Envelope{
		ID:        uuid.New(),
		Type:      n.Kind,
		Title:     n.Title,
		Message:   n.Body,
		Data:      n.Data,
		Action:    n.Action,
		Timestamp: time.Now(),
	}
}

// AlertLog is one append-only row per delivery call.
type AlertLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	AlertType  AlertKind
	TargetID   uuid.UUID
	TargetType string
	SentAt     time.Time
}
