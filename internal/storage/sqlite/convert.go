package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/google/uuid"
)

func convertUserToDomain(u dbmodel.Users) (domain.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user id: %w", err)
	}
	var chatID int64
	if u.TelegramChatID != nil {
		chatID = *u.TelegramChatID
	}
	return domain.User{
		ID:             id,
		Name:           u.Name,
		Role:           domain.Role(u.Role),
		EmailEnc:       u.EmailEnc,
		TelegramChatID: chatID,
		CreatedAt:      u.CreatedAt,
		LastActiveAt:   u.LastActiveAt,
	}, nil
}

func convertPreferenceToDomain(p dbmodel.AlertPreferences) (domain.AlertPreference, error) {
	id, err := uuid.Parse(p.UserID)
	if err != nil {
		return domain.AlertPreference{}, fmt.Errorf("preference user id: %w", err)
	}
	leagues, err := decodeList(p.PreferredLeagues)
	if err != nil {
		return domain.AlertPreference{}, fmt.Errorf("preferred leagues: %w", err)
	}
	ageGroups, err := decodeList(p.AgeGroups)
	if err != nil {
		return domain.AlertPreference{}, fmt.Errorf("age groups: %w", err)
	}
	positions, err := decodeList(p.Positions)
	if err != nil {
		return domain.AlertPreference{}, fmt.Errorf("positions: %w", err)
	}
	return domain.AlertPreference{
		UserID:             id,
		EmailNotifications: p.EmailNotifications,
		NewVacancyAlerts:   p.NewVacancyAlerts,
		NewPlayerAlerts:    p.NewPlayerAlerts,
		TrialInvitations:   p.TrialInvitations,
		WeeklyDigest:       p.WeeklyDigest,
		InstantAlerts:      p.InstantAlerts,
		PreferredLeagues:   leagues,
		AgeGroups:          ageGroups,
		Positions:          positions,
		MaxDistanceKm:      int(p.MaxDistanceKm),
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

func convertPreferenceFromDomain(p domain.AlertPreference) (dbmodel.AlertPreferences, error) {
	leagues, err := encodeList(p.PreferredLeagues)
	if err != nil {
		return dbmodel.AlertPreferences{}, err
	}
	ageGroups, err := encodeList(p.AgeGroups)
	if err != nil {
		return dbmodel.AlertPreferences{}, err
	}
	positions, err := encodeList(p.Positions)
	if err != nil {
		return dbmodel.AlertPreferences{}, err
	}
	return dbmodel.AlertPreferences{
		UserID:             p.UserID.String(),
		EmailNotifications: p.EmailNotifications,
		NewVacancyAlerts:   p.NewVacancyAlerts,
		NewPlayerAlerts:    p.NewPlayerAlerts,
		TrialInvitations:   p.TrialInvitations,
		WeeklyDigest:       p.WeeklyDigest,
		InstantAlerts:      p.InstantAlerts,
		PreferredLeagues:   leagues,
		AgeGroups:          ageGroups,
		Positions:          positions,
		MaxDistanceKm:      int32(p.MaxDistanceKm),
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

func convertCandidate(u dbmodel.Users, p *dbmodel.AlertPreferences) (storage.Candidate, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return storage.Candidate{}, fmt.Errorf("user id: %w", err)
	}
	c := storage.Candidate{
		UserID:             id,
		Role:               domain.Role(u.Role),
		EmailNotifications: true,
		NewVacancyAlerts:   true,
		NewPlayerAlerts:    true,
		TrialInvitations:   true,
		InstantAlerts:      true,
		RawLeagues:         "[]",
		RawAgeGroups:       "[]",
		RawPositions:       "[]",
	}
	if p != nil {
		c.EmailNotifications = p.EmailNotifications
		c.NewVacancyAlerts = p.NewVacancyAlerts
		c.NewPlayerAlerts = p.NewPlayerAlerts
		c.TrialInvitations = p.TrialInvitations
		c.InstantAlerts = p.InstantAlerts
		c.RawLeagues = p.PreferredLeagues
		c.RawAgeGroups = p.AgeGroups
		c.RawPositions = p.Positions
	}
	return c, nil
}

func convertVacancyFromDomain(v domain.Vacancy) dbmodel.Vacancies {
	return dbmodel.Vacancies{
		ID:          v.ID.String(),
		TeamName:    v.TeamName,
		League:      v.League,
		AgeGroup:    v.AgeGroup,
		Position:    v.Position,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func convertVacancyToDomain(v dbmodel.Vacancies) (domain.Vacancy, error) {
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("vacancy id: %w", err)
	}
	return domain.Vacancy{
		ID:          id,
		TeamName:    v.TeamName,
		League:      v.League,
		AgeGroup:    v.AgeGroup,
		Position:    v.Position,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}, nil
}

func convertAvailabilityFromDomain(a domain.Availability) dbmodel.Availabilities {
	return dbmodel.Availabilities{
		ID:         a.ID.String(),
		PlayerName: a.PlayerName,
		League:     a.League,
		AgeGroup:   a.AgeGroup,
		Position:   a.Position,
		CreatedAt:  a.CreatedAt,
	}
}

func convertAvailabilityToDomain(a dbmodel.Availabilities) (domain.Availability, error) {
	id, err := uuid.Parse(a.ID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("availability id: %w", err)
	}
	return domain.Availability{
		ID:         id,
		PlayerName: a.PlayerName,
		League:     a.League,
		AgeGroup:   a.AgeGroup,
		Position:   a.Position,
		CreatedAt:  a.CreatedAt,
	}, nil
}

func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
