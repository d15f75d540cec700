package match

import (
	"rundown/internal/config"
	"rundown/internal/registry"
)

func testTeams() []registry.Team {
	return []registry.Team{
		{Name: "Liverpool", Abbreviation: "LIV", Alternates: []string{"The Reds"}},
		{Name: "Everton", Abbreviation: "EVE"},
		{Name: "Arsenal", Abbreviation: "ARS"},
		{Name: "Chelsea", Abbreviation: "CHE"},
		{Name: "Manchester United", Abbreviation: "MUN", Alternates: []string{"Man Utd"}},
		{Name: "Tottenham Hotspur", Abbreviation: "TOT", Alternates: []string{"Spurs"}},
		{Name: "West Ham United", Abbreviation: "WHU", Alternates: []string{"West Ham"}},
		{Name: "Aston Villa", Abbreviation: "AVL", Alternates: []string{"Villa"}},
	}
}

func testRegistry() *registry.Registry {
	return &registry.Registry{
		Teams: testTeams(),
		Fixtures: []registry.Fixture{
			{MatchID: "m1", HomeTeam: "Liverpool", AwayTeam: "Everton", Score: "2-0"},
			{MatchID: "m2", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: "1-1"},
			{MatchID: "m3", HomeTeam: "Tottenham Hotspur", AwayTeam: "Manchester United", Score: "0-3"},
			{MatchID: "m4", HomeTeam: "West Ham United", AwayTeam: "Aston Villa", Score: "2-2"},
		},
		Episodes: []registry.Episode{
			{ID: "ep1", ExpectedMatches: []string{"m1", "m2", "m3", "m4"}},
			{ID: "ep2", ExpectedMatches: []string{"m1"}},
		},
		Venues: []registry.Venue{
			{Team: "Liverpool", Stadium: "Anfield", Aliases: []string{"The Kop"}},
			{Team: "Manchester United", Stadium: "Old Trafford", Aliases: []string{"Theatre of Dreams"}},
			{Team: "Tottenham Hotspur", Stadium: "Tottenham Hotspur Stadium"},
		},
	}
}

func testMatchingConfig() config.Matching {
	cfg := config.Default()
	return cfg.Matching
}
