package sqlite

import (
	"testing"
	"time"

	"github.com/pitchside/pitchside/internal/domain"

	dbmodel "github.com/pitchside/pitchside/gen/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceConvertRoundTrip(t *testing.T) {
	pref := domain.AlertPreference{
		UserID:             uuid.New(),
		EmailNotifications: true,
		NewVacancyAlerts:   false,
		NewPlayerAlerts:    true,
		TrialInvitations:   false,
		WeeklyDigest:       true,
		InstantAlerts:      false,
		PreferredLeagues:   []string{"Sunday League"},
		AgeGroups:          []string{"U12", "U14"},
		Positions:          []string{"Striker"},
		MaxDistanceKm:      25,
		UpdatedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	row, err := convertPreferenceFromDomain(pref)
	require.NoError(t, err)
	assert.Equal(t, `["U12","U14"]`, row.AgeGroups)

	back, err := convertPreferenceToDomain(row)
	require.NoError(t, err)
	assert.Equal(t, pref, back)
}

func TestPreferenceConvertNilLists(t *testing.T) {
	row, err := convertPreferenceFromDomain(domain.AlertPreference{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, "[]", row.PreferredLeagues)
	assert.Equal(t, "[]", row.AgeGroups)
	assert.Equal(t, "[]", row.Positions)
}

func TestPreferenceConvertBadJSON(t *testing.T) {
	_, err := convertPreferenceToDomain(dbmodel.AlertPreferences{
		UserID:           uuid.New().String(),
		PreferredLeagues: `{"oops"`,
	})
	assert.Error(t, err)
}

func TestConvertCandidateDefaults(t *testing.T) {
	u := dbmodel.Users{ID: uuid.New().String(), Name: "fresh", Role: "player"}

	// A user without a preference row is opted in with wildcard filters.
	c, err := convertCandidate(u, nil)
	require.NoError(t, err)
	assert.True(t, c.EmailNotifications)
	assert.True(t, c.NewVacancyAlerts)
	assert.Equal(t, "[]", c.RawLeagues)
	assert.Equal(t, "[]", c.RawAgeGroups)
	assert.Equal(t, "[]", c.RawPositions)
}

func TestConvertCandidateStoredRow(t *testing.T) {
	u := dbmodel.Users{ID: uuid.New().String(), Name: "tuned", Role: "coach"}
	p := &dbmodel.AlertPreferences{
		UserID:           u.ID,
		NewPlayerAlerts:  true,
		PreferredLeagues: `["sunday league"]`,
		AgeGroups:        "[]",
		Positions:        "[]",
	}

	c, err := convertCandidate(u, p)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCoach, c.Role)
	assert.False(t, c.EmailNotifications, "stored toggles win over defaults")
	assert.True(t, c.NewPlayerAlerts)
	assert.Equal(t, `["sunday league"]`, c.RawLeagues)
}

func TestConvertUserBadID(t *testing.T) {
	_, err := convertUserToDomain(dbmodel.Users{ID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestVacancyConvertRoundTrip(t *testing.T) {
	v := domain.Vacancy{
		ID:          uuid.New(),
		TeamName:    "Riverside Rovers",
		League:      "Sunday League",
		AgeGroup:    "U12",
		Position:    "Striker",
		Description: "Training Tuesdays",
		CreatedAt:   time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
	}
	back, err := convertVacancyToDomain(convertVacancyFromDomain(v))
	require.NoError(t, err)
	assert.Equal(t, v, back)
}
