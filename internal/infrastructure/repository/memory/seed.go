package memory

import (
	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
)

const (
	LeagueIDDowntown = "downtown-dynasty-2026"
	LeagueIDGarage   = "garage-league-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDDowntown,
			Name:        "Downtown Dynasty",
			Season:      "2026/2027",
			DraftRounds: 13,
			IsDefault:   true,
			Units:       league.DefaultUnitConfigs(),
		},
		{
			ID:          LeagueIDGarage,
			Name:        "Garage League",
			Season:      "2026/2027",
			DraftRounds: 10,
			IsDefault:   false,
			Units: league.UnitConfigs{
				league.UnitStarters: {
					MaxPlayers: 5,
					Multiplier: 1.0,
					Requirements: map[player.Position]int{
						player.PositionGuard:   2,
						player.PositionForward: 2,
						player.PositionCenter:  1,
					},
				},
				league.UnitRotation: {
					MaxPlayers: 5,
					Multiplier: 0.75,
					Requirements: map[player.Position]int{
						player.PositionGuard:   1,
						player.PositionForward: 1,
						player.PositionUtility: 3,
					},
				},
				league.UnitBench: {
					MaxPlayers: 3,
					Multiplier: 0.5,
				},
			},
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "dd-splash", LeagueID: LeagueIDDowntown, Name: "Splash Brigade", OwnerUserID: "user-ava", DraftPosition: 1},
		{ID: "dd-paint", LeagueID: LeagueIDDowntown, Name: "Paint Patrol", OwnerUserID: "user-ben", DraftPosition: 2},
		{ID: "dd-glass", LeagueID: LeagueIDDowntown, Name: "Glass Cleaners", OwnerUserID: "user-cho", DraftPosition: 3},
		{ID: "dd-fast", LeagueID: LeagueIDDowntown, Name: "Fastbreak Felons", OwnerUserID: "user-dee", DraftPosition: 4},
		{ID: "gl-bricks", LeagueID: LeagueIDGarage, Name: "Brick City", OwnerUserID: "user-eli", DraftPosition: 1},
		{ID: "gl-hoops", LeagueID: LeagueIDGarage, Name: "Hoop Dreams", OwnerUserID: "user-fay", DraftPosition: 2},
	}
}

// SeedPlayers keeps raw positions in listing form so the normalization path
// is exercised end to end, including a dual-role "Guard-Forward" entry.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "dd-p01", LeagueID: LeagueIDDowntown, Name: "Marcus Vale", NBATeam: "GSW", JerseyNumber: 30, RawPosition: "Point Guard", Position: player.PositionGuard},
		{ID: "dd-p02", LeagueID: LeagueIDDowntown, Name: "Terrence Okafor", NBATeam: "BOS", JerseyNumber: 7, RawPosition: "Shooting Guard", Position: player.PositionGuard},
		{ID: "dd-p03", LeagueID: LeagueIDDowntown, Name: "Jalen Whitfield", NBATeam: "MIA", JerseyNumber: 22, RawPosition: "Small Forward", Position: player.PositionForward},
		{ID: "dd-p04", LeagueID: LeagueIDDowntown, Name: "Dmitri Kovac", NBATeam: "DEN", JerseyNumber: 15, RawPosition: "Power Forward", Position: player.PositionForward},
		{ID: "dd-p05", LeagueID: LeagueIDDowntown, Name: "Andre Bol", NBATeam: "SAS", JerseyNumber: 41, RawPosition: "Center", Position: player.PositionCenter},
		{ID: "dd-p06", LeagueID: LeagueIDDowntown, Name: "Kye Morrison", NBATeam: "OKC", JerseyNumber: 3, RawPosition: "Guard-Forward", Position: player.PositionGuard},
		{ID: "dd-p07", LeagueID: LeagueIDDowntown, Name: "Lucas Ferreira", NBATeam: "LAL", JerseyNumber: 11, RawPosition: "Forward-Center", Position: player.PositionForward},
		{ID: "dd-p08", LeagueID: LeagueIDDowntown, Name: "Theo Mbeki", NBATeam: "TOR", JerseyNumber: 9, RawPosition: "Guard", Position: player.PositionGuard},
		{ID: "dd-p09", LeagueID: LeagueIDDowntown, Name: "Caleb Strand", NBATeam: "PHX", JerseyNumber: 55, RawPosition: "Forward", Position: player.PositionForward},
		{ID: "dd-p10", LeagueID: LeagueIDDowntown, Name: "Ivan Petrov", NBATeam: "NYK", JerseyNumber: 17, RawPosition: "Center", Position: player.PositionCenter},
		{ID: "gl-p01", LeagueID: LeagueIDGarage, Name: "Omar Haddad", NBATeam: "CHI", JerseyNumber: 1, RawPosition: "Point Guard", Position: player.PositionGuard},
		{ID: "gl-p02", LeagueID: LeagueIDGarage, Name: "Sasha Lindqvist", NBATeam: "MIL", JerseyNumber: 34, RawPosition: "Power Forward", Position: player.PositionForward},
		{ID: "gl-p03", LeagueID: LeagueIDGarage, Name: "Rudy Tanaka", NBATeam: "UTA", JerseyNumber: 27, RawPosition: "Center", Position: player.PositionCenter},
		{ID: "gl-p04", LeagueID: LeagueIDGarage, Name: "Devon Castillo", NBATeam: "POR", JerseyNumber: 8, RawPosition: "Guard-Forward", Position: player.PositionGuard},
	}
}
