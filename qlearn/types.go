// Package qlearn defines agent options and sentinel errors for the
// qlearn subpackage of github.com/katalvlaran/gridq.
package qlearn

import (
	"errors"
	"math/rand"
)

// Sentinel errors for agent construction and stepping.
var (
	// ErrNilEnvironment is returned when a nil environment is supplied.
	ErrNilEnvironment = errors.New("qlearn: environment is nil")
	// ErrBadParameter indicates a learning parameter outside [0,1].
	ErrBadParameter = errors.New("qlearn: parameter must lie in [0,1]")
	// ErrOutOfBounds indicates a start position outside the grid.
	ErrOutOfBounds = errors.New("qlearn: position outside grid bounds")
	// ErrInvalidAction indicates a caller-supplied action that is not
	// valid from the agent's current state.
	ErrInvalidAction = errors.New("qlearn: action not valid from the current state")
)

// AgentOptions configures a TemporalDifferenceAgent.
//
// Fields:
//   - Discount       — weight γ ∈ [0,1] applied to the best estimated
//     value of the successor state.
//   - ExplorationRate — probability ε ∈ [0,1] of choosing a uniformly
//     random valid action instead of the greedy one.
//   - LearningRate   — step size α ∈ [0,1] blending the new estimate
//     into the old one; 1 reproduces the exact one-step backup on a
//     deterministic environment.
//   - Rand           — pseudo-random source for the exploration branch.
//     Inject a seeded *rand.Rand for reproducible runs; nil falls back
//     to a time-seeded source.
//
// Example:
//
//	opts := qlearn.DefaultAgentOptions()
//	opts.Rand = rand.New(rand.NewSource(42))
//	ag, err := qlearn.NewAgent(env, start, opts)
type AgentOptions struct {
	Discount        float64
	ExplorationRate float64
	LearningRate    float64
	Rand            *rand.Rand
}

// DefaultAgentOptions returns AgentOptions with the usual training
// settings: Discount=0.9, ExplorationRate=0.5, LearningRate=1, Rand=nil.
func DefaultAgentOptions() AgentOptions {
	return AgentOptions{
		Discount:        0.9,
		ExplorationRate: 0.5,
		LearningRate:    1,
		Rand:            nil,
	}
}
