// Package rates derives the on-base and per-at-bat rate columns. All
// formulas go through stat's safe division, so a zero denominator
// produces a missing value rather than an infinity.
package rates

import (
	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/stat"
)

// OnBase appends the two row-level derived columns to cleaned rows:
//
//	obp = (h + bb + hbp) / (ab + bb + hbp)
//	pab = (h + bb + hbp + sf + sh) / (ab + bb + hbp + sf + sh)
//
// These are the only columns in the cleaned table allowed to be missing.
func OnBase(rows []model.Row) {
	num := make([]stat.Value, len(rows))
	den := make([]stat.Value, len(rows))

	for i, r := range rows {
		num[i] = stat.OfInt(r.H + r.BB + r.HBP)
		den[i] = stat.OfInt(r.AB + r.BB + r.HBP)
	}
	for i, v := range stat.SafeDiv(num, den) {
		rows[i].OBP = v
	}

	for i, r := range rows {
		num[i] = stat.OfInt(r.H + r.BB + r.HBP + r.SF + r.SH)
		den[i] = stat.OfInt(r.AB + r.BB + r.HBP + r.SF + r.SH)
	}
	for i, v := range stat.SafeDiv(num, den) {
		rows[i].PAB = v
	}
}

// Career attaches the eight career rate statistics to each totals
// record. Counting fields stay populated regardless; only rates may
// come out missing.
func Career(totals []model.CareerTotals) {
	for i := range totals {
		t := &totals[i]
		pa := stat.OfInt(t.AB + t.BB + t.HBP + t.SH + t.SF)

		t.OBP = stat.Div(stat.OfInt(t.H+t.BB+t.HBP), stat.OfInt(t.AB+t.BB+t.HBP))
		t.PAB = stat.Div(stat.OfInt(t.H+t.BB+t.HBP+t.SF+t.SH), pa)
		t.HRP = stat.Div(stat.OfInt(t.HR), stat.OfInt(t.AB))
		t.HP = stat.Div(stat.OfInt(t.H), stat.OfInt(t.AB))
		t.SBP = stat.Div(stat.OfInt(t.SB), stat.OfInt(t.AB))
		t.SOP = stat.Div(stat.OfInt(t.SO), stat.OfInt(t.AB))
		t.SOPA = stat.Div(stat.OfInt(t.SO), pa)
		t.BBP = stat.Div(stat.OfInt(t.BB), stat.OfInt(t.AB))
	}
}
