package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, dir, name string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func validRegistryDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeRegistry(t, dir, TeamsFile, []Team{
		{Name: "Liverpool", Abbreviation: "LIV", Alternates: []string{"The Reds"}},
		{Name: "Everton", Abbreviation: "EVE"},
		{Name: "Arsenal", Abbreviation: "ARS"},
		{Name: "Chelsea", Abbreviation: "CHE"},
	})
	writeRegistry(t, dir, FixturesFile, []Fixture{
		{MatchID: "m1", HomeTeam: "Liverpool", AwayTeam: "Everton", Score: "2-0"},
		{MatchID: "m2", HomeTeam: "Arsenal", AwayTeam: "Chelsea"},
	})
	writeRegistry(t, dir, EpisodesFile, []Episode{
		{ID: "ep1", ExpectedMatches: []string{"m1", "m2"}},
	})
	writeRegistry(t, dir, VenuesFile, []Venue{
		{Team: "Liverpool", Stadium: "Anfield", Aliases: []string{"The Kop"}},
	})
	return dir
}

func TestLoadValidRegistry(t *testing.T) {
	reg, err := Load(validRegistryDir(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(reg.Teams) != 4 || len(reg.Fixtures) != 2 || len(reg.Episodes) != 1 || len(reg.Venues) != 1 {
		t.Fatalf("unexpected registry sizes: %+v", reg)
	}
	if _, ok := reg.FixtureByID("m1"); !ok {
		t.Fatal("FixtureByID(m1) not found")
	}
	if _, ok := reg.EpisodeByID("ep1"); !ok {
		t.Fatal("EpisodeByID(ep1) not found")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	dir := validRegistryDir(t)
	if err := os.Remove(filepath.Join(dir, VenuesFile)); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for missing venues file")
	}
}

func TestLoadRejectsDuplicateMatchID(t *testing.T) {
	dir := validRegistryDir(t)
	writeRegistry(t, dir, FixturesFile, []Fixture{
		{MatchID: "m1", HomeTeam: "Liverpool", AwayTeam: "Everton"},
		{MatchID: "m1", HomeTeam: "Arsenal", AwayTeam: "Chelsea"},
	})
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for duplicate match_id")
	}
}

func TestLoadRejectsTeamInTwoFixturesPerEpisode(t *testing.T) {
	dir := validRegistryDir(t)
	writeRegistry(t, dir, FixturesFile, []Fixture{
		{MatchID: "m1", HomeTeam: "Liverpool", AwayTeam: "Everton"},
		{MatchID: "m2", HomeTeam: "Liverpool", AwayTeam: "Chelsea"},
	})
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for team in two fixtures of one episode")
	}
}

func TestLoadRejectsUnknownEpisodeFixture(t *testing.T) {
	dir := validRegistryDir(t)
	writeRegistry(t, dir, EpisodesFile, []Episode{
		{ID: "ep1", ExpectedMatches: []string{"m1", "missing"}},
	})
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for unknown match_id in episode")
	}
}

func TestTeamVariants(t *testing.T) {
	team := Team{Name: "Liverpool", Abbreviation: "LIV", Codes: []string{"LFC"}, Alternates: []string{"The Reds", " "}}
	variants := team.Variants()
	want := []string{"Liverpool", "LIV", "LFC", "The Reds"}
	if len(variants) != len(want) {
		t.Fatalf("variants = %v", variants)
	}
	for i, v := range want {
		if variants[i] != v {
			t.Fatalf("variants[%d] = %q, want %q", i, variants[i], v)
		}
	}
}

func TestFixtureOpponent(t *testing.T) {
	fixture := Fixture{MatchID: "m1", HomeTeam: "Liverpool", AwayTeam: "Everton"}
	if got := fixture.Opponent("Liverpool"); got != "Everton" {
		t.Fatalf("Opponent(home) = %q", got)
	}
	if got := fixture.Opponent("Everton"); got != "Liverpool" {
		t.Fatalf("Opponent(away) = %q", got)
	}
	if got := fixture.Opponent("Arsenal"); got != "" {
		t.Fatalf("Opponent(outsider) = %q", got)
	}
}
