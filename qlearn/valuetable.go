package qlearn

import (
	"math"

	"github.com/katalvlaran/gridq/gridenv"
)

// ValueTable maps each visited position to per-action value estimates.
// Rows are created lazily: the first time a position is seen (as a
// current or resulting state) its row is inserted with every valid
// action initialized to 0.0, and never re-initialized afterwards. Rows
// accumulate for the table's lifetime; nothing is ever deleted.
//
// A ValueTable is owned by exactly one agent, which is the only writer.
// Readers (renderers, tests) use Get, Row, Best, and BestAction.
type ValueTable struct {
	rows map[gridenv.Position]map[gridenv.Action]float64
}

// NewValueTable returns an empty table.
func NewValueTable() *ValueTable {
	return &ValueTable{rows: make(map[gridenv.Position]map[gridenv.Action]float64)}
}

// ensure inserts a zero-initialized row for pos keyed by exactly the
// given actions, unless a row already exists. Returns the live row.
func (t *ValueTable) ensure(pos gridenv.Position, actions []gridenv.Action) map[gridenv.Action]float64 {
	if row, ok := t.rows[pos]; ok {
		return row
	}
	row := make(map[gridenv.Action]float64, len(actions))
	for _, a := range actions {
		row[a] = 0
	}
	t.rows[pos] = row
	return row
}

// Has reports whether pos has a row.
func (t *ValueTable) Has(pos gridenv.Position) bool {
	_, ok := t.rows[pos]
	return ok
}

// Len returns the number of positions with a row.
func (t *ValueTable) Len() int { return len(t.rows) }

// Get returns the estimate for (pos, a) and whether it exists.
func (t *ValueTable) Get(pos gridenv.Position, a gridenv.Action) (float64, bool) {
	row, ok := t.rows[pos]
	if !ok {
		return 0, false
	}
	v, ok := row[a]
	return v, ok
}

// Row returns a copy of the row for pos, or nil if absent.
func (t *ValueTable) Row(pos gridenv.Position) map[gridenv.Action]float64 {
	row, ok := t.rows[pos]
	if !ok {
		return nil
	}
	out := make(map[gridenv.Action]float64, len(row))
	for a, v := range row {
		out[a] = v
	}
	return out
}

// Best returns the maximum estimate in the row for pos, or 0 if the
// position has no row or an empty one.
func (t *ValueTable) Best(pos gridenv.Position) float64 {
	row, ok := t.rows[pos]
	if !ok || len(row) == 0 {
		return 0
	}
	best := math.Inf(-1)
	for _, v := range row {
		if v > best {
			best = v
		}
	}
	return best
}

// BestAction returns the action holding the maximum estimate for pos,
// scanning in canonical order so ties resolve to the first maximum
// (Up < Down < Left < Right). ok is false if pos has no row.
func (t *ValueTable) BestAction(pos gridenv.Position) (gridenv.Action, bool) {
	row, present := t.rows[pos]
	if !present || len(row) == 0 {
		return 0, false
	}
	best := math.Inf(-1)
	var bestAct gridenv.Action
	found := false
	for _, a := range gridenv.Actions() {
		v, ok := row[a]
		if !ok {
			continue
		}
		if !found || v > best {
			best = v
			bestAct = a
			found = true
		}
	}
	return bestAct, found
}
