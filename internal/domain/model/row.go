// Package model contains the records passed between pipeline stages.
package model

import "github.com/tmcrae/batstat/internal/domain/stat"

// RawRow is one source row before cleaning. Numeric fields may be
// missing. An empty player id or team is treated as missing; an empty
// league code is a present-but-blank value and never drops the row.
type RawRow struct {
	ID     string
	Team   string
	League string
	Year   stat.Value

	G   stat.Value
	AB  stat.Value
	H   stat.Value
	HR  stat.Value
	RBI stat.Value
	SB  stat.Value
	SO  stat.Value
	BB  stat.Value
	HBP stat.Value
	SH  stat.Value
	SF  stat.Value
}

// Complete reports whether every schema field is present. The league
// code is exempt: blank leagues survive cleaning and simply fall
// outside both league subsets.
func (r RawRow) Complete() bool {
	if r.ID == "" || r.Team == "" {
		return false
	}
	for _, v := range []stat.Value{r.Year, r.G, r.AB, r.H, r.HR, r.RBI, r.SB, r.SO, r.BB, r.HBP, r.SH, r.SF} {
		if v.IsMissing() {
			return false
		}
	}
	return true
}

// Row is one cleaned player-season-team stint. Counting fields are
// always populated; only the derived OBP and PAB may be missing.
type Row struct {
	ID     string `json:"id"`
	Team   string `json:"team"`
	League string `json:"lg"`
	Year   int    `json:"year"`

	G   int `json:"g"`
	AB  int `json:"ab"`
	H   int `json:"h"`
	HR  int `json:"hr"`
	RBI int `json:"rbi"`
	SB  int `json:"sb"`
	SO  int `json:"so"`
	BB  int `json:"bb"`
	HBP int `json:"hbp"`
	SH  int `json:"sh"`
	SF  int `json:"sf"`

	OBP stat.Value `json:"obp"`
	PAB stat.Value `json:"pab"`
}

// CareerTotals holds one player's counting statistics summed across all
// of their stints, with the derived career rates attached. Rate fields
// may be missing; counting fields never are.
type CareerTotals struct {
	PlayerID string

	G   int
	AB  int
	H   int
	HR  int
	RBI int
	SB  int
	SO  int
	BB  int
	HBP int
	SH  int
	SF  int

	OBP  stat.Value
	PAB  stat.Value
	HRP  stat.Value
	HP   stat.Value
	SBP  stat.Value
	SOP  stat.Value
	SOPA stat.Value
	BBP  stat.Value
}
