// Package career rolls season stints up into per-player career totals.
package career

import (
	"sort"

	"github.com/tmcrae/batstat/internal/domain/model"
)

// defaultMinAtBats excludes small-sample players from record
// consideration.
const defaultMinAtBats = 50

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithMinAtBats sets the qualifying at-bats threshold.
func WithMinAtBats(n int) Option {
	return func(a *Aggregator) {
		if n >= 0 {
			a.minAtBats = n
		}
	}
}

// Aggregator sums counting statistics by player identity.
type Aggregator struct {
	minAtBats int
}

// NewAggregator creates an aggregator with the default threshold.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{minAtBats: defaultMinAtBats}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Totals groups rows by player id, sums the eleven counting statistics
// across each player's stints, and keeps only players whose career
// at-bats meet the threshold. Output is sorted by player id so repeated
// runs over the same table are identical regardless of input order.
func (a *Aggregator) Totals(rows []model.Row) []model.CareerTotals {
	acc := make(map[string]*model.CareerTotals)
	for _, r := range rows {
		t, ok := acc[r.ID]
		if !ok {
			t = &model.CareerTotals{PlayerID: r.ID}
			acc[r.ID] = t
		}
		t.G += r.G
		t.AB += r.AB
		t.H += r.H
		t.HR += r.HR
		t.RBI += r.RBI
		t.SB += r.SB
		t.SO += r.SO
		t.BB += r.BB
		t.HBP += r.HBP
		t.SH += r.SH
		t.SF += r.SF
	}

	out := make([]model.CareerTotals, 0, len(acc))
	for _, t := range acc {
		if t.AB >= a.minAtBats {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}
