package episode_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridq/episode"
	"github.com/katalvlaran/gridq/gridenv"
	"github.com/katalvlaran/gridq/qlearn"
)

// ExampleRun executes a single greedy episode on a two-cell corridor.
func ExampleRun() {
	env, _ := gridenv.New(gridenv.Layout{
		{gridenv.OpenCell(0), gridenv.OpenCell(10)},
	})
	opts := qlearn.DefaultAgentOptions()
	opts.ExplorationRate = 0
	opts.Rand = rand.New(rand.NewSource(1))
	ag, _ := qlearn.NewAgent(env, gridenv.Position{}, opts)

	res, _ := episode.Run(env, ag, gridenv.Position{})
	fmt.Printf("steps=%d reward=%.0f final=%v\n", res.Steps, res.Reward, res.Final)

	// Output:
	// steps=1 reward=10 final=(0,1)
}

// ExampleEvaluate trains on a small world, then summarizes greedy runs.
func ExampleEvaluate() {
	layout, _ := gridenv.ParseLayout([]byte(`
- [0, 0, 0]
- [0, H, 10]
`))
	env, _ := gridenv.New(layout)

	opts := qlearn.DefaultAgentOptions()
	opts.Rand = rand.New(rand.NewSource(42))
	ag, _ := qlearn.NewAgent(env, env.StartingPositions()[0], opts)

	_, _ = episode.Train(env, ag, 500,
		episode.WithRand(rand.New(rand.NewSource(42))),
		episode.WithMaxSteps(10000))
	sum, _ := episode.Evaluate(env, ag, 50,
		episode.WithRand(rand.New(rand.NewSource(42))),
		episode.WithMaxSteps(10000))

	fmt.Println("episodes:", sum.Episodes)
	fmt.Println("trained agent beats a random walk:", sum.MeanReward > 0)

	// Output:
	// episodes: 50
	// trained agent beats a random walk: true
}
