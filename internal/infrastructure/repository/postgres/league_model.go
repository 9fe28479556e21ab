package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

type leagueTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Season      string     `db:"season"`
	DraftRounds int        `db:"draft_rounds"`
	IsDefault   bool       `db:"is_default"`
	UnitConfigs []byte     `db:"unit_configs"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// unitConfigDoc is the JSONB shape of one unit's configuration.
type unitConfigDoc struct {
	MaxPlayers           int            `json:"max_players"`
	Multiplier           float64        `json:"multiplier"`
	Requirements         map[string]int `json:"requirements,omitempty"`
	FallbackRequirements []string       `json:"fallback_requirements,omitempty"`
}

func encodeUnitConfigs(units league.UnitConfigs) ([]byte, error) {
	if len(units) == 0 {
		return []byte("{}"), nil
	}

	doc := make(map[string]unitConfigDoc, len(units))
	for unit, cfg := range units {
		requirements := make(map[string]int, len(cfg.Requirements))
		for pos, count := range cfg.Requirements {
			requirements[string(pos)] = count
		}
		fallback := make([]string, 0, len(cfg.FallbackRequirements))
		for _, pos := range cfg.FallbackRequirements {
			fallback = append(fallback, string(pos))
		}
		doc[string(unit)] = unitConfigDoc{
			MaxPlayers:           cfg.MaxPlayers,
			Multiplier:           cfg.Multiplier,
			Requirements:         requirements,
			FallbackRequirements: fallback,
		}
	}

	encoded, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode unit configs: %w", err)
	}
	return encoded, nil
}

func decodeUnitConfigs(raw []byte) (league.UnitConfigs, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var doc map[string]unitConfigDoc
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode unit configs: %w", err)
	}
	if len(doc) == 0 {
		return nil, nil
	}

	units := make(league.UnitConfigs, len(doc))
	for name, cfg := range doc {
		requirements := make(map[player.Position]int, len(cfg.Requirements))
		for pos, count := range cfg.Requirements {
			requirements[player.Position(pos)] = count
		}
		fallback := make([]player.Position, 0, len(cfg.FallbackRequirements))
		for _, pos := range cfg.FallbackRequirements {
			fallback = append(fallback, player.Position(pos))
		}
		if len(requirements) == 0 {
			requirements = nil
		}
		units[league.Unit(name)] = league.UnitConfig{
			MaxPlayers:           cfg.MaxPlayers,
			Multiplier:           cfg.Multiplier,
			Requirements:         requirements,
			FallbackRequirements: fallback,
		}
	}

	return units, nil
}

func leagueFromRow(row leagueTableModel) (league.League, error) {
	units, err := decodeUnitConfigs(row.UnitConfigs)
	if err != nil {
		return league.League{}, err
	}

	return league.League{
		ID:          row.PublicID,
		Name:        row.Name,
		Season:      row.Season,
		DraftRounds: row.DraftRounds,
		IsDefault:   row.IsDefault,
		Units:       units,
	}, nil
}
