// Package episode defines options and sentinel errors for the episode
// subpackage of github.com/katalvlaran/gridq.
package episode

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridq/gridenv"
)

// Sentinel errors for episode execution.
var (
	// ErrNilEnvironment is returned if a nil environment is passed.
	ErrNilEnvironment = errors.New("episode: environment is nil")
	// ErrNilAgent is returned if a nil agent is passed.
	ErrNilAgent = errors.New("episode: agent is nil")
	// ErrTerminalStart is returned when an episode would begin on a
	// terminal position.
	ErrTerminalStart = errors.New("episode: starting position is terminal")
	// ErrNoEpisodes is returned for a non-positive episode count.
	ErrNoEpisodes = errors.New("episode: episode count must be positive")
	// ErrNoStart is returned when the environment has no non-terminal
	// position to start from.
	ErrNoStart = errors.New("episode: environment has no starting positions")
	// ErrStepLimit is returned when WithMaxSteps is exhausted before a
	// terminal state is reached.
	ErrStepLimit = errors.New("episode: step limit reached before a terminal state")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("episode: invalid option supplied")
)

// Option configures episode execution via functional arguments.
// An invalid Option (e.g. negative step limit) is recorded internally
// and surfaced as ErrOptionViolation when the runner is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing episode runs.
type Options struct {
	// Ctx allows cancellation and deadlines across long training runs.
	Ctx context.Context

	// MaxSteps, if > 0, aborts an episode with ErrStepLimit after that
	// many steps. 0 disables the limit: termination then relies purely
	// on the environment having a reachable terminal state, which is a
	// layout well-formedness obligation of the caller.
	MaxSteps int

	// OnStep is called after every transition with the 1-based step
	// count, the state just entered, and the action taken.
	OnStep func(step int, state gridenv.Position, action gridenv.Action)

	// Rand draws random starting positions in Train and Evaluate.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step limit (MaxSteps == 0)
//   - no-op OnStep hook
//   - a deterministic rand source seeded with 1.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   func(int, gridenv.Position, gridenv.Action) {},
		Rand:     rand.New(rand.NewSource(1)),
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps aborts episodes after n steps.
//
//	n > 0: limit to n steps per episode
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a callback to run after every transition.
func WithOnStep(fn func(step int, state gridenv.Position, action gridenv.Action)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRand sets the random source used to draw starting positions.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// Result describes one completed episode.
type Result struct {
	// Start is the position the episode began at.
	Start gridenv.Position
	// Final is the terminal position that ended the episode.
	Final gridenv.Position
	// Steps is the number of transitions taken.
	Steps int
	// Reward is the cumulative reward collected over the episode.
	Reward float64
}

// Summary aggregates rewards over a batch of evaluation episodes.
type Summary struct {
	Episodes   int
	MeanReward float64
	MinReward  float64
	MaxReward  float64
}
