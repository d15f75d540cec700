package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Registry file names inside the configured registry directory.
const (
	TeamsFile    = "teams.json"
	FixturesFile = "fixtures.json"
	EpisodesFile = "episodes.json"
	VenuesFile   = "venues.json"
)

// Registry bundles all loaded, validated reference data for a run.
// It is immutable after Load returns and safe to share across workers.
type Registry struct {
	Teams    []Team
	Fixtures []Fixture
	Episodes []Episode
	Venues   []Venue
}

// Load reads and cross-validates all four registry files from dir. Any
// missing file, parse failure, or consistency violation is returned as an
// error; callers must treat it as fatal configuration.
func Load(dir string) (*Registry, error) {
	reg := &Registry{}
	if err := loadJSON(filepath.Join(dir, TeamsFile), &reg.Teams); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, FixturesFile), &reg.Fixtures); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, EpisodesFile), &reg.Episodes); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, VenuesFile), &reg.Venues); err != nil {
		return nil, err
	}
	if err := reg.validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// FixtureByID returns the fixture with the given match identifier.
func (r *Registry) FixtureByID(matchID string) (Fixture, bool) {
	for _, fixture := range r.Fixtures {
		if fixture.MatchID == matchID {
			return fixture, true
		}
	}
	return Fixture{}, false
}

// EpisodeByID returns the episode with the given identifier.
func (r *Registry) EpisodeByID(episodeID string) (Episode, bool) {
	for _, episode := range r.Episodes {
		if episode.ID == episodeID {
			return episode, true
		}
	}
	return Episode{}, false
}

func loadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read registry file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse registry file %q: %w", path, err)
	}
	return nil
}

func (r *Registry) validate() error {
	teamNames := make(map[string]struct{}, len(r.Teams))
	for _, team := range r.Teams {
		name := strings.TrimSpace(team.Name)
		if name == "" {
			return fmt.Errorf("team registry: entry with empty full_name")
		}
		if _, dup := teamNames[name]; dup {
			return fmt.Errorf("team registry: duplicate team %q", name)
		}
		teamNames[name] = struct{}{}
	}

	fixtureIDs := make(map[string]struct{}, len(r.Fixtures))
	for _, fixture := range r.Fixtures {
		if strings.TrimSpace(fixture.MatchID) == "" {
			return fmt.Errorf("fixture registry: fixture with empty match_id")
		}
		if _, dup := fixtureIDs[fixture.MatchID]; dup {
			return fmt.Errorf("fixture registry: duplicate match_id %q", fixture.MatchID)
		}
		fixtureIDs[fixture.MatchID] = struct{}{}
		for _, side := range []string{fixture.HomeTeam, fixture.AwayTeam} {
			if _, known := teamNames[side]; !known {
				return fmt.Errorf("fixture %q: unknown team %q", fixture.MatchID, side)
			}
		}
		if fixture.HomeTeam == fixture.AwayTeam {
			return fmt.Errorf("fixture %q: home and away team are both %q", fixture.MatchID, fixture.HomeTeam)
		}
	}

	episodeIDs := make(map[string]struct{}, len(r.Episodes))
	for _, episode := range r.Episodes {
		if strings.TrimSpace(episode.ID) == "" {
			return fmt.Errorf("episode manifest: episode with empty episode_id")
		}
		if _, dup := episodeIDs[episode.ID]; dup {
			return fmt.Errorf("episode manifest: duplicate episode_id %q", episode.ID)
		}
		episodeIDs[episode.ID] = struct{}{}

		// A team must appear in at most one fixture per episode; opponent
		// inference relies on the scheduled opponent being unambiguous.
		episodeTeams := make(map[string]string, len(episode.ExpectedMatches)*2)
		for _, matchID := range episode.ExpectedMatches {
			fixture, known := r.FixtureByID(matchID)
			if !known {
				return fmt.Errorf("episode %q: unknown match_id %q", episode.ID, matchID)
			}
			for _, side := range []string{fixture.HomeTeam, fixture.AwayTeam} {
				if other, seen := episodeTeams[side]; seen {
					return fmt.Errorf("episode %q: team %q appears in fixtures %q and %q", episode.ID, side, other, matchID)
				}
				episodeTeams[side] = matchID
			}
		}
	}

	for _, venue := range r.Venues {
		if strings.TrimSpace(venue.Stadium) == "" {
			return fmt.Errorf("venue registry: entry for team %q with empty stadium", venue.Team)
		}
		if _, known := teamNames[venue.Team]; !known {
			return fmt.Errorf("venue registry: unknown team %q", venue.Team)
		}
	}

	return nil
}
