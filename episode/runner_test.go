package episode_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridq/episode"
	"github.com/katalvlaran/gridq/gridenv"
	"github.com/katalvlaran/gridq/qlearn"
)

// corridor is a 1×2 world: one open cell and a terminal 10.
func corridor(t *testing.T) *gridenv.GridEnvironment {
	t.Helper()
	env, err := gridenv.New(gridenv.Layout{
		{gridenv.OpenCell(0), gridenv.OpenCell(10)},
	})
	require.NoError(t, err)
	return env
}

// lake is the 4×7 worked example: two holes, terminal rewards 5 and 10.
func lake(t *testing.T) *gridenv.GridEnvironment {
	t.Helper()
	layout, err := gridenv.ParseLayout([]byte(`
- [0, 0, 0, 0, 0, 0, 0]
- [0, H, 0, 0, 0, H, 0]
- [0, 0, 0, 5, 0, 0, 0]
- [0, 0, 0, 0, 0, 0, 10]
`))
	require.NoError(t, err)
	env, err := gridenv.New(layout)
	require.NoError(t, err)
	return env
}

// agent builds a seeded agent on env.
func agent(t *testing.T, env *gridenv.GridEnvironment, eps float64, seed int64) *qlearn.Agent {
	t.Helper()
	opts := qlearn.DefaultAgentOptions()
	opts.ExplorationRate = eps
	opts.Rand = rand.New(rand.NewSource(seed))
	ag, err := qlearn.NewAgent(env, env.StartingPositions()[0], opts)
	require.NoError(t, err)
	return ag
}

// TestRun_Corridor runs one greedy episode to the terminal cell.
func TestRun_Corridor(t *testing.T) {
	env := corridor(t)
	ag := agent(t, env, 0, 1)

	res, err := episode.Run(env, ag, gridenv.Position{})
	require.NoError(t, err)
	assert.Equal(t, gridenv.Position{}, res.Start)
	assert.Equal(t, gridenv.Position{Row: 0, Col: 1}, res.Final)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, 10.0, res.Reward)
}

// TestRun_Errors covers nil inputs, terminal starts, and bad options.
func TestRun_Errors(t *testing.T) {
	env := corridor(t)
	ag := agent(t, env, 0, 1)

	_, err := episode.Run(nil, ag, gridenv.Position{})
	assert.ErrorIs(t, err, episode.ErrNilEnvironment)

	_, err = episode.Run(env, nil, gridenv.Position{})
	assert.ErrorIs(t, err, episode.ErrNilAgent)

	_, err = episode.Run(env, ag, gridenv.Position{Row: 0, Col: 1})
	assert.ErrorIs(t, err, episode.ErrTerminalStart)

	_, err = episode.Run(env, ag, gridenv.Position{Row: 5, Col: 5})
	assert.ErrorIs(t, err, qlearn.ErrOutOfBounds)

	_, err = episode.Run(env, ag, gridenv.Position{}, episode.WithMaxSteps(-1))
	assert.ErrorIs(t, err, episode.ErrOptionViolation)
}

// TestRun_StepLimit verifies that a world with no reachable terminal
// state aborts with ErrStepLimit instead of looping.
func TestRun_StepLimit(t *testing.T) {
	env, err := gridenv.New(gridenv.Layout{
		{gridenv.OpenCell(0), gridenv.OpenCell(0)},
		{gridenv.OpenCell(0), gridenv.OpenCell(0)},
	})
	require.NoError(t, err)
	ag := agent(t, env, 0, 1)

	_, err = episode.Run(env, ag, gridenv.Position{}, episode.WithMaxSteps(5))
	assert.ErrorIs(t, err, episode.ErrStepLimit)
}

// TestRun_Cancellation verifies context cancellation surfaces as the
// context error.
func TestRun_Cancellation(t *testing.T) {
	env := lake(t)
	ag := agent(t, env, 0.5, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := episode.Run(env, ag, gridenv.Position{}, episode.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_OnStepHook checks the hook fires once per transition.
func TestRun_OnStepHook(t *testing.T) {
	env := lake(t)
	ag := agent(t, env, 0.5, 3)

	calls := 0
	res, err := episode.Run(env, ag, gridenv.Position{},
		episode.WithOnStep(func(step int, _ gridenv.Position, _ gridenv.Action) {
			calls++
			assert.Equal(t, calls, step)
		}),
		episode.WithMaxSteps(100000))
	require.NoError(t, err)
	assert.Equal(t, res.Steps, calls)
}

// TestTrain_Errors covers episode counts and start-less environments.
func TestTrain_Errors(t *testing.T) {
	env := corridor(t)
	ag := agent(t, env, 0, 1)

	_, err := episode.Train(env, ag, 0)
	assert.ErrorIs(t, err, episode.ErrNoEpisodes)

	sealed, err := gridenv.New(gridenv.Layout{{gridenv.HoleCell(), gridenv.OpenCell(5)}})
	require.NoError(t, err)
	sealedAgent, err := qlearn.NewAgent(sealed, gridenv.Position{}, qlearn.DefaultAgentOptions())
	require.NoError(t, err)
	_, err = episode.Train(sealed, sealedAgent, 3)
	assert.ErrorIs(t, err, episode.ErrNoStart)
}

// TestTrain_RunsAllEpisodes checks batch size and non-terminal starts.
func TestTrain_RunsAllEpisodes(t *testing.T) {
	env := lake(t)
	ag := agent(t, env, 0.5, 5)

	results, err := episode.Train(env, ag, 50,
		episode.WithRand(rand.New(rand.NewSource(5))),
		episode.WithMaxSteps(100000))
	require.NoError(t, err)
	require.Len(t, results, 50)
	for _, r := range results {
		assert.False(t, env.IsTerminal(r.Start), "start %v must be non-terminal", r.Start)
		assert.True(t, env.IsTerminal(r.Final), "final %v must be terminal", r.Final)
		assert.Positive(t, r.Steps)
	}
}

// TestEvaluate_RestoresExploration verifies ε is forced to 0 for the
// batch and restored afterwards.
func TestEvaluate_RestoresExploration(t *testing.T) {
	env := lake(t)
	ag := agent(t, env, 0.5, 7)

	seen := make([]float64, 0, 4)
	_, err := episode.Evaluate(env, ag, 3,
		episode.WithRand(rand.New(rand.NewSource(7))),
		episode.WithMaxSteps(100000),
		episode.WithOnStep(func(int, gridenv.Position, gridenv.Action) {
			seen = append(seen, ag.ExplorationRate())
		}))
	require.NoError(t, err)
	for _, eps := range seen {
		assert.Zero(t, eps, "evaluation must run greedily")
	}
	assert.Equal(t, 0.5, ag.ExplorationRate(), "ε must be restored after evaluation")
}

// TestTrainingImprovesPolicy is the convergence property: on the 4×7
// worked example, greedy evaluation after training beats the same
// evaluation protocol run on an untrained agent.
func TestTrainingImprovesPolicy(t *testing.T) {
	env := lake(t)

	untrained := agent(t, env, 0.5, 11)
	before, err := episode.Evaluate(env, untrained, 100,
		episode.WithRand(rand.New(rand.NewSource(11))),
		episode.WithMaxSteps(1000000))
	require.NoError(t, err)

	trained := agent(t, env, 0.5, 11)
	_, err = episode.Train(env, trained, 2000,
		episode.WithRand(rand.New(rand.NewSource(11))),
		episode.WithMaxSteps(1000000))
	require.NoError(t, err)
	after, err := episode.Evaluate(env, trained, 100,
		episode.WithRand(rand.New(rand.NewSource(11))),
		episode.WithMaxSteps(1000000))
	require.NoError(t, err)

	assert.Greater(t, after.MeanReward, before.MeanReward,
		"training must improve mean greedy reward (before %.2f, after %.2f)",
		before.MeanReward, after.MeanReward)
}
