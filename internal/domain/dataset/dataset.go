// Package dataset computes raw-table summary statistics, the
// complete-case filter, and the league partition. Cleaning runs exactly
// once, before any derived column exists, so derived columns are the
// only source of missingness downstream.
package dataset

import (
	"fmt"
	"math"

	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/stat"
)

// League codes recognized by the partitioner. Rows with any other code,
// blank included, belong to neither subset.
const (
	LeagueNL = "NL"
	LeagueAL = "AL"
)

// Summary describes the raw table before cleaning.
type Summary struct {
	RecordCount   int
	CompleteCases int
	Years         model.YearRange
	PlayerCount   int
	TeamCount     int
	LeagueCount   int
}

// Summarize computes the raw-table summary. Distinct counts skip blank
// identifiers; blank league codes are not a league but do not make a
// row incomplete.
func Summarize(raw []model.RawRow) Summary {
	s := Summary{RecordCount: len(raw)}

	players := make(map[string]struct{})
	teams := make(map[string]struct{})
	leagues := make(map[string]struct{})
	minYear, maxYear := math.MaxInt, math.MinInt

	for _, r := range raw {
		if r.Complete() {
			s.CompleteCases++
		}
		if r.ID != "" {
			players[r.ID] = struct{}{}
		}
		if r.Team != "" {
			teams[r.Team] = struct{}{}
		}
		if r.League != "" {
			leagues[r.League] = struct{}{}
		}
		if y, ok := r.Year.Float(); ok {
			yr := int(math.Round(y))
			if yr < minYear {
				minYear = yr
			}
			if yr > maxYear {
				maxYear = yr
			}
		}
	}

	if minYear <= maxYear {
		s.Years = model.YearRange{minYear, maxYear}
	}
	s.PlayerCount = len(players)
	s.TeamCount = len(teams)
	s.LeagueCount = len(leagues)
	return s
}

// Clean drops every row with a missing schema field and converts the
// survivors to typed rows. A missing field slipping past the filter is
// a broken cleaning step and yields ErrIncompleteAfterClean.
func Clean(raw []model.RawRow) ([]model.Row, error) {
	rows := make([]model.Row, 0, len(raw))
	for i, r := range raw {
		if !r.Complete() {
			continue
		}
		row, ok := toRow(r)
		if !ok {
			return nil, fmt.Errorf("row %d: %w", i, ErrIncompleteAfterClean)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Partition splits cleaned rows into the NL and AL subsets, copying
// rows so neither subset aliases the input table.
func Partition(rows []model.Row) (nl, al model.LeagueSubset) {
	return subset(rows, LeagueNL), subset(rows, LeagueAL)
}

func subset(rows []model.Row, league string) model.LeagueSubset {
	dat := make([]model.Row, 0)
	players := make(map[string]struct{})
	teams := make(map[string]struct{})
	for _, r := range rows {
		if r.League != league {
			continue
		}
		dat = append(dat, r)
		players[r.ID] = struct{}{}
		teams[r.Team] = struct{}{}
	}
	return model.LeagueSubset{Dat: dat, Players: len(players), Teams: len(teams)}
}

func toRow(r model.RawRow) (model.Row, bool) {
	fields := []stat.Value{r.Year, r.G, r.AB, r.H, r.HR, r.RBI, r.SB, r.SO, r.BB, r.HBP, r.SH, r.SF}
	ints := make([]int, len(fields))
	for i, v := range fields {
		f, ok := v.Float()
		if !ok {
			return model.Row{}, false
		}
		ints[i] = int(math.Round(f))
	}
	if r.ID == "" || r.Team == "" {
		return model.Row{}, false
	}
	return model.Row{
		ID:     r.ID,
		Team:   r.Team,
		League: r.League,
		Year:   ints[0],
		G:      ints[1],
		AB:     ints[2],
		H:      ints[3],
		HR:     ints[4],
		RBI:    ints[5],
		SB:     ints[6],
		SO:     ints[7],
		BB:     ints[8],
		HBP:    ints[9],
		SH:     ints[10],
		SF:     ints[11],
	}, true
}
