package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vacancy is a team looking for a player.
type Vacancy struct {
	ID          uuid.UUID
	TeamName    string
	League      string
	AgeGroup    string
	Position    string
	Description string
	CreatedAt   time.Time
}

// Availability is a player (or a parent on their behalf) looking for a team.
type Availability struct {
	ID         uuid.UUID
	PlayerName string
	League     string
	AgeGroup   string
	Position   string
	CreatedAt  time.Time
}

// TrialInvitation is an addressed event: the recipient is already known.
type TrialInvitation struct {
	ID        uuid.UUID
	Recipient uuid.UUID
	TeamName  string
	Venue     string
	Starts    time.Time
}

// MatchCompletion is an addressed event reporting a finished fixture.
type MatchCompletion struct {
	ID        uuid.UUID
	Recipient uuid.UUID
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	PlayedAt  time.Time
}
