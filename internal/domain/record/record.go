// Package record selects the best career performer per metric with a
// deterministic tie-break: highest value wins, ties go to the smallest
// player id.
package record

import (
	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/stat"
)

// Metrics lists the ranked metrics in report order. Eight are derived
// rates; hr, h, sb, so, bb and g rank the raw career sums directly.
var Metrics = []string{
	"obp", "pab",
	"hr", "hrp",
	"h", "hp",
	"sb", "sbp",
	"so", "sop", "sopa",
	"bb", "bbp",
	"g",
}

func metricValue(t model.CareerTotals, metric string) stat.Value {
	switch metric {
	case "obp":
		return t.OBP
	case "pab":
		return t.PAB
	case "hrp":
		return t.HRP
	case "hp":
		return t.HP
	case "sbp":
		return t.SBP
	case "sop":
		return t.SOP
	case "sopa":
		return t.SOPA
	case "bbp":
		return t.BBP
	case "hr":
		return stat.OfInt(t.HR)
	case "h":
		return stat.OfInt(t.H)
	case "sb":
		return stat.OfInt(t.SB)
	case "so":
		return stat.OfInt(t.SO)
	case "bb":
		return stat.OfInt(t.BB)
	case "g":
		return stat.OfInt(t.G)
	default:
		return stat.Missing()
	}
}

// Find returns the record holder for one metric. Records with a missing
// value are skipped; if none remain the entry has a nil id and a
// missing value. Among equal values the smallest player id wins, so the
// result does not depend on input order.
func Find(totals []model.CareerTotals, metric string) model.RecordEntry {
	var (
		bestID  string
		bestVal float64
		found   bool
	)
	for _, t := range totals {
		v, ok := metricValue(t, metric).Float()
		if !ok {
			continue
		}
		if !found || v > bestVal || (v == bestVal && t.PlayerID < bestID) {
			found = true
			bestVal = v
			bestID = t.PlayerID
		}
	}
	if !found {
		return model.RecordEntry{Value: stat.Missing()}
	}
	id := bestID
	return model.RecordEntry{ID: &id, Value: stat.Of(bestVal)}
}

// All runs Find for every ranked metric.
func All(totals []model.CareerTotals) map[string]model.RecordEntry {
	out := make(map[string]model.RecordEntry, len(Metrics))
	for _, m := range Metrics {
		out[m] = Find(totals, m)
	}
	return out
}
