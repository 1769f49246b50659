package model

import "github.com/tmcrae/batstat/internal/domain/stat"

// YearRange is the (min, max) season year observed in the raw table.
// It marshals as a two-element array.
type YearRange [2]int

// Min returns the earliest year.
func (y YearRange) Min() int { return y[0] }

// Max returns the latest year.
func (y YearRange) Max() int { return y[1] }

// RecordEntry is the winning (player, value) pair for one ranked
// metric. ID is nil and Value missing when no player qualifies.
type RecordEntry struct {
	ID    *string    `json:"id"`
	Value stat.Value `json:"value"`
}

// LeagueSubset groups the cleaned rows for one league code together
// with its distinct-player and distinct-team cardinalities. Dat is an
// independent copy; mutating it never leaks back into the report table.
type LeagueSubset struct {
	Dat     []Row `json:"dat"`
	Players int   `json:"players"`
	Teams   int   `json:"teams"`
}

// Report is the full analytical summary. The key names, dots included,
// are a compatibility contract with downstream consumers; any deviation
// breaks them.
type Report struct {
	RecordCount   int                    `json:"record.count"`
	CompleteCases int                    `json:"complete.cases"`
	Years         YearRange              `json:"years"`
	PlayerCount   int                    `json:"player.count"`
	TeamCount     int                    `json:"team.count"`
	LeagueCount   int                    `json:"league.count"`
	BB            []Row                  `json:"bb"`
	NL            LeagueSubset           `json:"nl"`
	AL            LeagueSubset           `json:"al"`
	Records       map[string]RecordEntry `json:"records"`
}
