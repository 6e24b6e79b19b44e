package episode_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridq/episode"
	"github.com/katalvlaran/gridq/gridenv"
	"github.com/katalvlaran/gridq/qlearn"
)

// benchLake builds the 4×7 two-hole world without *testing.T plumbing.
func benchLake(b *testing.B) *gridenv.GridEnvironment {
	b.Helper()
	layout, err := gridenv.ParseLayout([]byte(`
- [0, 0, 0, 0, 0, 0, 0]
- [0, H, 0, 0, 0, H, 0]
- [0, 0, 0, 5, 0, 0, 0]
- [0, 0, 0, 0, 0, 0, 10]
`))
	if err != nil {
		b.Fatalf("ParseLayout error: %v", err)
	}
	env, err := gridenv.New(layout)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	return env
}

// BenchmarkTrain measures a 100-episode training batch on the 4×7 world.
func BenchmarkTrain(b *testing.B) {
	env := benchLake(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts := qlearn.DefaultAgentOptions()
		opts.Rand = rand.New(rand.NewSource(7))
		ag, err := qlearn.NewAgent(env, env.StartingPositions()[0], opts)
		if err != nil {
			b.Fatalf("NewAgent error: %v", err)
		}
		if _, err = episode.Train(env, ag, 100,
			episode.WithRand(rand.New(rand.NewSource(7))),
			episode.WithMaxSteps(100000)); err != nil {
			b.Fatalf("Train error: %v", err)
		}
	}
}

// BenchmarkEvaluate measures greedy evaluation on a trained agent.
func BenchmarkEvaluate(b *testing.B) {
	env := benchLake(b)
	opts := qlearn.DefaultAgentOptions()
	opts.Rand = rand.New(rand.NewSource(7))
	ag, err := qlearn.NewAgent(env, env.StartingPositions()[0], opts)
	if err != nil {
		b.Fatalf("NewAgent error: %v", err)
	}
	if _, err = episode.Train(env, ag, 500,
		episode.WithRand(rand.New(rand.NewSource(7))),
		episode.WithMaxSteps(100000)); err != nil {
		b.Fatalf("Train error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = episode.Evaluate(env, ag, 50,
			episode.WithRand(rand.New(rand.NewSource(7))),
			episode.WithMaxSteps(100000)); err != nil {
			b.Fatalf("Evaluate error: %v", err)
		}
	}
}
