package web

import (
	"time"

	"github.com/pitchside/pitchside/internal/domain"

	"github.com/google/uuid"
)

type signupRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type signinRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type preferenceDTO struct {
	EmailNotifications bool     `json:"emailNotifications"`
	NewVacancyAlerts   bool     `json:"newVacancyAlerts"`
	NewPlayerAlerts    bool     `json:"newPlayerAlerts"`
	TrialInvitations   bool     `json:"trialInvitations"`
	WeeklyDigest       bool     `json:"weeklyDigest"`
	InstantAlerts      bool     `json:"instantAlerts"`
	PreferredLeagues   []string `json:"preferredLeagues"`
	AgeGroups          []string `json:"ageGroups"`
	Positions          []string `json:"positions"`
	MaxDistanceKm      int      `json:"maxDistanceKm"`
}

func toPreferenceDTO(p domain.AlertPreference) preferenceDTO {
	return preferenceDTO{
		EmailNotifications: p.EmailNotifications,
		NewVacancyAlerts:   p.NewVacancyAlerts,
		NewPlayerAlerts:    p.NewPlayerAlerts,
		TrialInvitations:   p.TrialInvitations,
		WeeklyDigest:       p.WeeklyDigest,
		InstantAlerts:      p.InstantAlerts,
		PreferredLeagues:   p.PreferredLeagues,
		AgeGroups:          p.AgeGroups,
		Positions:          p.Positions,
		MaxDistanceKm:      p.MaxDistanceKm,
	}
}

func (d preferenceDTO) toDomain(userID uuid.UUID) domain.AlertPreference {
	return domain.AlertPreference{
		UserID:             userID,
		EmailNotifications: d.EmailNotifications,
		NewVacancyAlerts:   d.NewVacancyAlerts,
		NewPlayerAlerts:    d.NewPlayerAlerts,
		TrialInvitations:   d.TrialInvitations,
		WeeklyDigest:       d.WeeklyDigest,
		InstantAlerts:      d.InstantAlerts,
		PreferredLeagues:   d.PreferredLeagues,
		AgeGroups:          d.AgeGroups,
		Positions:          d.Positions,
		MaxDistanceKm:      d.MaxDistanceKm,
		UpdatedAt:          time.Now(),
	}
}

type vacancyRequest struct {
	TeamName    string `json:"teamName"`
	League      string `json:"league"`
	AgeGroup    string `json:"ageGroup"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

type vacancyDTO struct {
	ID          uuid.UUID `json:"id"`
	TeamName    string    `json:"teamName"`
	League      string    `json:"league"`
	AgeGroup    string    `json:"ageGroup"`
	Position    string    `json:"position"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Notified    int       `json:"notified,omitempty"`
}

func toVacancyDTO(v domain.Vacancy, notified int) vacancyDTO {
	return vacancyDTO{
		ID:          v.ID,
		TeamName:    v.TeamName,
		League:      v.League,
		AgeGroup:    v.AgeGroup,
		Position:    v.Position,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		Notified:    notified,
	}
}

type availabilityRequest struct {
	PlayerName string `json:"playerName"`
	League     string `json:"league"`
	AgeGroup   string `json:"ageGroup"`
	Position   string `json:"position"`
}

type availabilityDTO struct {
	ID         uuid.UUID `json:"id"`
	PlayerName string    `json:"playerName"`
	League     string    `json:"league"`
	AgeGroup   string    `json:"ageGroup"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
	Notified   int       `json:"notified,omitempty"`
}

func toAvailabilityDTO(a domain.Availability, notified int) availabilityDTO {
	return availabilityDTO{
		ID:         a.ID,
		PlayerName: a.PlayerName,
		League:     a.League,
		AgeGroup:   a.AgeGroup,
		Position:   a.Position,
		CreatedAt:  a.CreatedAt,
		Notified:   notified,
	}
}

type trialRequest struct {
	Recipient uuid.UUID `json:"recipient"`
	TeamName  string    `json:"teamName"`
	Venue     string    `json:"venue"`
	Starts    time.Time `json:"starts"`
}

type matchRequest struct {
	Recipient uuid.UUID `json:"recipient"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	PlayedAt  time.Time `json:"playedAt"`
}

type deliveryDTO struct {
	Pushed bool `json:"pushed"`
	Mailed bool `json:"mailed"`
}
