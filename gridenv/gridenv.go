// Package gridenv represents a rectangular grid world as an immutable
// environment for tabular reinforcement learning. It answers the four
// queries an agent needs: which moves stay on the grid, what a cell
// contains, whether a cell ends an episode, and what reward entering a
// cell grants.
package gridenv

import "fmt"

// GridEnvironment is the static world. It is immutable once built:
// rewards and starting positions are precomputed in New, and every
// query is read-only, so a single environment may be shared by
// arbitrarily many agents and episodes.
type GridEnvironment struct {
	rows, cols int
	cells      [][]Cell
	rewards    [][]float64
	starts     []Position
}

// New constructs a GridEnvironment from a non-empty, rectangular layout.
// The layout is deep-copied to ensure immutability.
// Returns ErrEmptyLayout if the layout has no rows or no columns,
// ErrRaggedLayout if any row length differs, and ErrRewardConflict if
// both WithRewardFunc and WithRewardTable are supplied.
// Complexity: O(rows×cols) time and memory.
func New(layout Layout, opts ...Option) (*GridEnvironment, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	rows, cols := len(layout), len(layout[0])
	for i, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, i, len(row), cols)
		}
	}

	var o envOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.fn != nil && o.table != nil {
		return nil, ErrRewardConflict
	}
	rule := o.fn
	if rule == nil {
		rule = DefaultReward
	}

	// Deep copy to prevent external mutation.
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		copy(cells[r], layout[r])
	}

	// Resolve the reward lookup once: a table entry wins, anything else
	// goes through the rule. Reward is a plain lookup afterwards.
	rewards := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		rewards[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			if v, ok := o.table[Position{Row: r, Col: c}]; ok {
				rewards[r][c] = v
				continue
			}
			rewards[r][c] = rule(cells[r][c])
		}
	}

	env := &GridEnvironment{
		rows:    rows,
		cols:    cols,
		cells:   cells,
		rewards: rewards,
	}
	// Precompute valid starting positions in row-major order.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{Row: r, Col: c}
			if !env.IsTerminal(p) {
				env.starts = append(env.starts, p)
			}
		}
	}

	return env, nil
}

// Rows returns the number of grid rows.
func (e *GridEnvironment) Rows() int { return e.rows }

// Cols returns the number of grid columns.
func (e *GridEnvironment) Cols() int { return e.cols }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (e *GridEnvironment) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < e.rows && p.Col >= 0 && p.Col < e.cols
}

// mustInBounds enforces the query contract: CellValue, Reward, and
// ValidActions are only defined for in-bounds positions. An out-of-bounds
// query is a caller bug, not a recoverable condition.
func (e *GridEnvironment) mustInBounds(p Position) {
	if !e.InBounds(p) {
		panic(fmt.Sprintf("gridenv: position %v outside %dx%d grid", p, e.rows, e.cols))
	}
}

// ValidActions returns, in canonical order, the subset of the four
// actions whose resulting position stays within grid bounds. Every
// in-bounds position has at least two valid actions on a 2x2-or-larger
// grid. Panics if p is out of bounds.
// Complexity: O(1).
func (e *GridEnvironment) ValidActions(p Position) []Action {
	e.mustInBounds(p)
	acts := make([]Action, 0, int(numActions))
	for _, a := range Actions() {
		if e.InBounds(a.Apply(p)) {
			acts = append(acts, a)
		}
	}
	return acts
}

// CellValue returns the raw layout cell at p.
// Panics if p is out of bounds; callers must only query positions
// produced by valid transitions or initial placement.
func (e *GridEnvironment) CellValue(p Position) Cell {
	e.mustInBounds(p)
	return e.cells[p.Row][p.Col]
}

// IsTerminal reports whether p ends an episode: true iff the cell is a
// hole or carries a strictly positive value. Panics if p is out of bounds.
func (e *GridEnvironment) IsTerminal(p Position) bool {
	c := e.CellValue(p)
	return c.Hole || c.Value > 0
}

// Reward returns the scalar reward for *entering* p. This is what the
// agent receives, not the raw cell content: under the default rule a
// hole and a zero-valued open cell both yield −1, while any other cell
// value passes through unchanged. Panics if p is out of bounds.
// Complexity: O(1) — rewards are resolved at construction.
func (e *GridEnvironment) Reward(p Position) float64 {
	e.mustInBounds(p)
	return e.rewards[p.Row][p.Col]
}

// StartingPositions returns every non-terminal position in row-major
// order. The set is precomputed at construction; the returned slice is
// a copy and safe to mutate.
func (e *GridEnvironment) StartingPositions() []Position {
	out := make([]Position, len(e.starts))
	copy(out, e.starts)
	return out
}
