package alerts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/normalize"
	"github.com/pitchside/pitchside/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Matcher computes the audience for a posting by intersecting its
// attributes with every candidate's stored filters. An empty filter
// list is a wildcard: new users get alerts before they ever configure
// preferences. A candidate whose stored filters cannot be decoded is
// skipped, never the whole pass.
type Matcher struct {
	prefs storage.PreferenceStorage
	log   *logrus.Entry
}

func NewMatcher(l *logrus.Logger, prefs storage.PreferenceStorage) *Matcher {
	return &Matcher{
		prefs: prefs,
		log:   l.WithField("from", "matcher"),
	}
}

// MatchVacancy selects players and parents who opted into vacancy
// alerts and whose league, age-group and position filters all pass.
func (m *Matcher) MatchVacancy(ctx context.Context, v domain.Vacancy) (mapset.Set[uuid.UUID], error) {
	candidates, err := m.prefs.ListCandidates(ctx, domain.RolePlayer, domain.RoleParent)
	if err != nil {
		return nil, fmt.Errorf("list vacancy candidates: %w", err)
	}
	matched := mapset.NewSet[uuid.UUID]()
	for _, c := range candidates {
		if !c.EmailNotifications || !c.NewVacancyAlerts {
			continue
		}
		ok, err := m.filtersPass(c, v.League, v.AgeGroup, v.Position)
		if err != nil {
			m.log.WithError(err).WithField("user", c.UserID).Warn("skipping candidate with unreadable filters")
			continue
		}
		if ok {
			matched.Add(c.UserID)
		}
	}
	return matched, nil
}

// MatchAvailability is the mirror image: coaches opted into new-player
// alerts, filtered on the availability's attributes.
func (m *Matcher) MatchAvailability(ctx context.Context, a domain.Availability) (mapset.Set[uuid.UUID], error) {
	candidates, err := m.prefs.ListCandidates(ctx, domain.RoleCoach)
	if err != nil {
		return nil, fmt.Errorf("list availability candidates: %w", err)
	}
	matched := mapset.NewSet[uuid.UUID]()
	for _, c := range candidates {
		if !c.EmailNotifications || !c.NewPlayerAlerts {
			continue
		}
		ok, err := m.filtersPass(c, a.League, a.AgeGroup, a.Position)
		if err != nil {
			m.log.WithError(err).WithField("user", c.UserID).Warn("skipping candidate with unreadable filters")
			continue
		}
		if ok {
			matched.Add(c.UserID)
		}
	}
	return matched, nil
}

// MatchDirectEvent gates an addressed event (the recipient is already
// known) on the kind's preference toggle. No filter matching applies.
func (m *Matcher) MatchDirectEvent(ctx context.Context, kind domain.AlertKind, recipientID uuid.UUID) (bool, error) {
	pref, found, err := m.prefs.Get(ctx, recipientID)
	if err != nil {
		return false, fmt.Errorf("get preference: %w", err)
	}
	if !found {
		pref = domain.DefaultPreference(recipientID)
	}
	return pref.Allows(kind), nil
}

// filtersPass applies the three dimension filters with AND across
// dimensions and OR over each list. Comparison is an exact match over
// normalized values, so "U1" can never pass for "U12".
func (m *Matcher) filtersPass(c storage.Candidate, league, ageGroup, position string) (bool, error) {
	leagues, err := decodeFilter(c.RawLeagues)
	if err != nil {
		return false, fmt.Errorf("leagues filter: %w", err)
	}
	ageGroups, err := decodeFilter(c.RawAgeGroups)
	if err != nil {
		return false, fmt.Errorf("age groups filter: %w", err)
	}
	positions, err := decodeFilter(c.RawPositions)
	if err != nil {
		return false, fmt.Errorf("positions filter: %w", err)
	}
	return dimensionMatches(leagues, league) &&
		dimensionMatches(ageGroups, ageGroup) &&
		dimensionMatches(positions, position), nil
}

func dimensionMatches(filter []string, value string) bool {
	if len(filter) == 0 {
		return true
	}
	return mapset.NewSet(normalize.Values(filter)...).Contains(normalize.Value(value))
}

func decodeFilter(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}
