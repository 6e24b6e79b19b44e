// Package episode runs training and evaluation loops for a qlearn.Agent
// over a gridenv.GridEnvironment: single episodes from a chosen start,
// batches of training episodes from random starts, and greedy
// evaluation with the agent's exploration rate temporarily zeroed.
package episode

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridq/gridenv"
	"github.com/katalvlaran/gridq/qlearn"
)

// Run executes one episode: reset the agent to start, then step until
// the environment reports the current state terminal.
// Returns ErrNilEnvironment / ErrNilAgent for nil inputs,
// ErrTerminalStart if start would end the episode immediately,
// ErrOptionViolation for bad options, ErrStepLimit when WithMaxSteps is
// exhausted, and the context error on cancellation.
func Run(env *gridenv.GridEnvironment, ag *qlearn.Agent, start gridenv.Position, opts ...Option) (Result, error) {
	if env == nil {
		return Result{}, ErrNilEnvironment
	}
	if ag == nil {
		return Result{}, ErrNilAgent
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	if err := ag.Reset(start); err != nil {
		return Result{}, err
	}
	if env.IsTerminal(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrTerminalStart, start)
	}

	steps := 0
	for !env.IsTerminal(ag.State()) {
		select {
		case <-o.Ctx.Done():
			return Result{}, o.Ctx.Err()
		default:
		}
		if o.MaxSteps > 0 && steps >= o.MaxSteps {
			return Result{}, fmt.Errorf("%w: %d steps from %v", ErrStepLimit, steps, start)
		}
		act, err := ag.Step()
		if err != nil {
			return Result{}, err
		}
		steps++
		o.OnStep(steps, ag.State(), act)
	}

	return Result{
		Start:  start,
		Final:  ag.State(),
		Steps:  steps,
		Reward: ag.CumulativeReward(),
	}, nil
}

// Train runs the given number of episodes, each from a starting
// position drawn uniformly from the environment's non-terminal
// positions, and returns the per-episode results in order.
// The agent's exploration rate is used as configured; set it before
// calling to control the explore/exploit balance.
func Train(env *gridenv.GridEnvironment, ag *qlearn.Agent, episodes int, opts ...Option) ([]Result, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if ag == nil {
		return nil, ErrNilAgent
	}
	if episodes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoEpisodes, episodes)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	starts := env.StartingPositions()
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	results := make([]Result, 0, episodes)
	for i := 0; i < episodes; i++ {
		start := starts[o.Rand.Intn(len(starts))]
		res, err := Run(env, ag, start, opts...)
		if err != nil {
			return results, fmt.Errorf("episode %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// Evaluate runs the given number of greedy episodes from random
// non-terminal starts and summarizes the rewards. The agent's
// exploration rate is set to 0 for the duration and restored
// afterwards, even on error; learned values are still updated during
// evaluation, exactly as a driver looping Step would observe.
func Evaluate(env *gridenv.GridEnvironment, ag *qlearn.Agent, episodes int, opts ...Option) (Summary, error) {
	if ag == nil {
		return Summary{}, ErrNilAgent
	}
	eps := ag.ExplorationRate()
	if err := ag.SetExplorationRate(0); err != nil {
		return Summary{}, err
	}
	defer func() { _ = ag.SetExplorationRate(eps) }()

	results, err := Train(env, ag, episodes, opts...)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Episodes:  len(results),
		MinReward: math.Inf(1),
		MaxReward: math.Inf(-1),
	}
	total := 0.0
	for _, r := range results {
		total += r.Reward
		sum.MinReward = math.Min(sum.MinReward, r.Reward)
		sum.MaxReward = math.Max(sum.MaxReward, r.Reward)
	}
	sum.MeanReward = total / float64(len(results))

	return sum, nil
}
