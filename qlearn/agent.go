// Package qlearn implements a tabular temporal-difference agent over a
// gridenv.GridEnvironment: an ε-greedy action policy plus the one-step
// Q-learning backup over a lazily-populated value table.
package qlearn

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridq/gridenv"
)

// Agent is a TemporalDifferenceAgent: it owns a value table and a
// current state, chooses actions ε-greedily, and updates estimates with
// the one-step Q-learning rule. Single-threaded; the bound environment
// is read-only and may be shared, the agent itself may not.
type Agent struct {
	env   *gridenv.GridEnvironment
	table *ValueTable
	rng   *rand.Rand

	discount float64
	epsilon  float64
	alpha    float64

	current gridenv.Position
	reward  float64
}

// NewAgent binds an agent to env at the given start position.
// Returns ErrNilEnvironment for a nil env, ErrBadParameter for any
// learning parameter outside [0,1], and ErrOutOfBounds for a start
// outside the grid.
func NewAgent(env *gridenv.GridEnvironment, start gridenv.Position, opts AgentOptions) (*Agent, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if err := checkUnit("Discount", opts.Discount); err != nil {
		return nil, err
	}
	if err := checkUnit("ExplorationRate", opts.ExplorationRate); err != nil {
		return nil, err
	}
	if err := checkUnit("LearningRate", opts.LearningRate); err != nil {
		return nil, err
	}
	if !env.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Agent{
		env:      env,
		table:    NewValueTable(),
		rng:      rng,
		discount: opts.Discount,
		epsilon:  opts.ExplorationRate,
		alpha:    opts.LearningRate,
		current:  start,
	}, nil
}

// checkUnit validates a learning parameter against [0,1].
func checkUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s=%v", ErrBadParameter, name, v)
	}
	return nil
}

// State returns the agent's current position.
func (ag *Agent) State() gridenv.Position { return ag.current }

// CumulativeReward returns the reward accumulated since the last Reset.
func (ag *Agent) CumulativeReward() float64 { return ag.reward }

// Values exposes the agent's value table for read-only inspection
// (rendering, evaluation). The agent remains the sole writer.
func (ag *Agent) Values() *ValueTable { return ag.table }

// ExplorationRate returns the current ε.
func (ag *Agent) ExplorationRate() float64 { return ag.epsilon }

// SetExplorationRate switches ε, typically between a training value and
// 0 for greedy evaluation. Returns ErrBadParameter outside [0,1].
func (ag *Agent) SetExplorationRate(eps float64) error {
	if err := checkUnit("ExplorationRate", eps); err != nil {
		return err
	}
	ag.epsilon = eps
	return nil
}

// SetLearningRate switches α. Returns ErrBadParameter outside [0,1].
func (ag *Agent) SetLearningRate(alpha float64) error {
	if err := checkUnit("LearningRate", alpha); err != nil {
		return err
	}
	ag.alpha = alpha
	return nil
}

// SetDiscount switches γ. Returns ErrBadParameter outside [0,1].
func (ag *Agent) SetDiscount(gamma float64) error {
	if err := checkUnit("Discount", gamma); err != nil {
		return err
	}
	ag.discount = gamma
	return nil
}

// Reset zeroes the cumulative reward and relocates the agent to start.
// The value table is untouched: estimates learned in earlier episodes
// survive. Returns ErrOutOfBounds for a start outside the grid.
func (ag *Agent) Reset(start gridenv.Position) error {
	if !ag.env.InBounds(start) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	ag.current = start
	ag.reward = 0
	return nil
}

// ChooseAction picks an action for pos: with probability ε a uniformly
// random element of ValidActions(pos), otherwise the first maximum of
// the position's value-table row in canonical order. The row is
// lazily initialized on first visit. Never fails for an in-bounds pos.
func (ag *Agent) ChooseAction(pos gridenv.Position) gridenv.Action {
	valid := ag.env.ValidActions(pos)
	if ag.rng.Float64() < ag.epsilon {
		return valid[ag.rng.Intn(len(valid))]
	}
	ag.table.ensure(pos, valid)
	a, _ := ag.table.BestAction(pos)
	return a
}

// Step advances one transition using the agent's own policy and returns
// the action taken. It never returns ErrInvalidAction: policy choices
// are restricted to the valid-action set.
func (ag *Agent) Step() (gridenv.Action, error) {
	a := ag.ChooseAction(ag.current)
	ag.advance(a)
	return a, nil
}

// StepWith advances one transition using the caller-supplied action.
// If a is not in ValidActions of the current state it returns
// ErrInvalidAction and leaves the current state, cumulative reward, and
// value table unmodified; the caller may retry with a valid action.
func (ag *Agent) StepWith(a gridenv.Action) (gridenv.Action, error) {
	valid := ag.env.ValidActions(ag.current)
	ok := false
	for _, v := range valid {
		if v == a {
			ok = true
			break
		}
	}
	if !ok {
		return 0, fmt.Errorf("%w: %v from %v", ErrInvalidAction, a, ag.current)
	}
	ag.advance(a)
	return a, nil
}

// advance applies one transition for an action already known to be
// valid: lazy-init the current row, move by the action's offset (no
// bounds check needed), run the backup, and adopt the next state.
func (ag *Agent) advance(a gridenv.Action) {
	row := ag.table.ensure(ag.current, ag.env.ValidActions(ag.current))
	next := a.Apply(ag.current)
	ag.learn(row, a, next)
	ag.current = next
}

// learn applies the one-step temporal-difference backup for the
// transition (current, a) → next:
//
//	q ← q + α·(r + γ·maxₐ′ Q(next, a′) − q)
//
// The max over the successor row makes this the off-policy Q-learning
// rule rather than SARSA: the backup target ignores how the next action
// will actually be chosen. Applied exactly once per step.
func (ag *Agent) learn(row map[gridenv.Action]float64, a gridenv.Action, next gridenv.Position) {
	ag.table.ensure(next, ag.env.ValidActions(next))
	r := ag.env.Reward(next)
	ag.reward += r
	bestNext := ag.table.Best(next)
	old := row[a]
	row[a] = old + ag.alpha*(r+ag.discount*bestNext-old)
}
