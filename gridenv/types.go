// Package gridenv defines core types, options, and sentinel errors
// for the gridenv subpackage of github.com/katalvlaran/gridq.
package gridenv

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridenv operations.
var (
	// ErrEmptyLayout indicates the input layout has no rows or no columns.
	ErrEmptyLayout = errors.New("gridenv: layout must have at least one row and one column")
	// ErrRaggedLayout indicates rows of differing lengths.
	ErrRaggedLayout = errors.New("gridenv: all layout rows must have the same length")
	// ErrBadCell indicates a layout cell that is neither an integer nor a hole marker.
	ErrBadCell = errors.New("gridenv: cell must be an integer or a hole marker")
	// ErrRewardConflict indicates both a reward function and a reward table were supplied.
	ErrRewardConflict = errors.New("gridenv: WithRewardFunc and WithRewardTable are mutually exclusive")
)

// Reward constants applied by the default reward rule.
const (
	// HolePenalty is granted for entering a hole cell.
	HolePenalty = -1.0
	// StepPenalty is granted for entering an open cell of value 0,
	// to discourage aimless wandering.
	StepPenalty = -1.0
)

// Position identifies a cell by (row, column). It is a comparable value
// type: two positions are equal iff both coordinates match, which makes
// it suitable as a map key for value-table lookups.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Action is one of the four directional moves. The declaration order
// Up < Down < Left < Right is the canonical action ordering; greedy
// tie-breaks follow it (first maximum wins). That ordering is
// implementation-defined, not semantically meaningful.
type Action int

const (
	// Up decrements the row.
	Up Action = iota
	// Down increments the row.
	Down
	// Left decrements the column.
	Left
	// Right increments the column.
	Right

	numActions
)

var actionNames = [numActions]string{"Up", "Down", "Left", "Right"}

// String returns the action name, or "Action(n)" for an unknown value.
func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Offset returns the (row, col) displacement the action applies.
func (a Action) Offset() (dRow, dCol int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Apply returns the position reached by taking the action from p.
// No bounds check is performed; callers restrict themselves to actions
// reported by GridEnvironment.ValidActions.
func (a Action) Apply(p Position) Position {
	dr, dc := a.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Actions returns all four actions in canonical order.
// The returned slice is fresh on every call and safe to mutate.
func Actions() []Action {
	return []Action{Up, Down, Left, Right}
}

// Cell is a single layout cell: either a hole (terminal, always yields
// HolePenalty under the default rule) or an open cell carrying an
// integer value. Open cells with a strictly positive value are terminal.
type Cell struct {
	// Value is the raw cell content; meaningless when Hole is true.
	Value int
	// Hole marks the cell as a hole.
	Hole bool
}

// OpenCell returns an open (non-hole) cell with the given value.
func OpenCell(v int) Cell { return Cell{Value: v} }

// HoleCell returns a hole cell.
func HoleCell() Cell { return Cell{Hole: true} }

// Layout is an ordered sequence of rows of cells. It must be non-empty
// and rectangular to construct a GridEnvironment.
type Layout [][]Cell

// RewardFunc maps a cell to the scalar reward granted for entering it.
type RewardFunc func(Cell) float64

// DefaultReward is the reward rule applied when no option overrides it:
// hole → HolePenalty; open cell of value exactly 0 → StepPenalty; any
// other value passes through unchanged, including negative non-hole
// values.
func DefaultReward(c Cell) float64 {
	if c.Hole {
		return HolePenalty
	}
	if c.Value == 0 {
		return StepPenalty
	}
	return float64(c.Value)
}

// Option configures environment construction via functional arguments.
type Option func(*envOptions)

// envOptions collects construction-time settings. The reward lookup is
// resolved once in New; Reward never dispatches on option state at
// query time.
type envOptions struct {
	fn    RewardFunc
	table map[Position]float64
}

// WithRewardFunc replaces the default reward rule with a closed-form
// function of the cell content. Mutually exclusive with WithRewardTable.
func WithRewardFunc(fn RewardFunc) Option {
	return func(o *envOptions) {
		if fn != nil {
			o.fn = fn
		}
	}
}

// WithRewardTable supplies precomputed per-position rewards. Positions
// absent from the table fall back to the default rule. Mutually
// exclusive with WithRewardFunc.
func WithRewardTable(table map[Position]float64) Option {
	return func(o *envOptions) {
		if table != nil {
			o.table = table
		}
	}
}
