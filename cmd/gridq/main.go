// Command gridq trains a tabular Q-learning agent on a grid world and
// renders the learned greedy policy in the terminal.
//
// Usage:
//
//	gridq [-layout lake.yaml] [-episodes 2000] [-eval 200]
//	      [-epsilon 0.5] [-gamma 0.9] [-alpha 1] [-seed 1]
//
// Without -layout it uses a built-in 4×7 world with two holes and
// terminal reward cells of value 5 and 10.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridq/episode"
	"github.com/katalvlaran/gridq/gridenv"
	"github.com/katalvlaran/gridq/qlearn"
)

var (
	layoutPath = flag.String("layout", "", "YAML layout file (integers = open cells, H = hole)")
	episodes   = flag.Int("episodes", 2000, "training episodes")
	evalRuns   = flag.Int("eval", 200, "greedy evaluation episodes")
	epsilon    = flag.Float64("epsilon", 0.5, "training exploration rate")
	gamma      = flag.Float64("gamma", 0.9, "discount factor")
	alpha      = flag.Float64("alpha", 1, "learning rate")
	seed       = flag.Int64("seed", 1, "random seed")
	maxSteps   = flag.Int("max-steps", 10000, "per-episode step cap (0 = unlimited)")
)

var (
	holeStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(lipgloss.Color("9")).Bold(true)
	goalStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(lipgloss.Color("10")).Bold(true)
	policyStyle = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(lipgloss.Color("12"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// defaultLayout is the classic 4×7 two-hole world.
var defaultLayout = []byte(`
- [0, 0, 0, 0, 0, 0, 0]
- [0, H, 0, 0, 0, H, 0]
- [0, 0, 0, 5, 0, 0, 0]
- [0, 0, 0, 0, 0, 0, 10]
`)

func main() {
	flag.Parse()

	data := defaultLayout
	if *layoutPath != "" {
		var err error
		data, err = os.ReadFile(*layoutPath)
		if err != nil {
			log.Fatalf("read layout: %v", err)
		}
	}
	layout, err := gridenv.ParseLayout(data)
	if err != nil {
		log.Fatalf("parse layout: %v", err)
	}
	env, err := gridenv.New(layout)
	if err != nil {
		log.Fatalf("build environment: %v", err)
	}
	starts := env.StartingPositions()
	if len(starts) == 0 {
		log.Fatal("layout has no non-terminal starting position")
	}

	opts := qlearn.DefaultAgentOptions()
	opts.Discount = *gamma
	opts.ExplorationRate = *epsilon
	opts.LearningRate = *alpha

	// Untrained baseline: greedy over an all-zero table.
	opts.Rand = rand.New(rand.NewSource(*seed))
	baseline, err := qlearn.NewAgent(env, starts[0], opts)
	if err != nil {
		log.Fatalf("build baseline agent: %v", err)
	}
	before, err := episode.Evaluate(env, baseline, *evalRuns,
		episode.WithRand(rand.New(rand.NewSource(*seed))),
		episode.WithMaxSteps(*maxSteps))
	if err != nil {
		log.Fatalf("evaluate baseline: %v", err)
	}

	opts.Rand = rand.New(rand.NewSource(*seed))
	agent, err := qlearn.NewAgent(env, starts[0], opts)
	if err != nil {
		log.Fatalf("build agent: %v", err)
	}
	if _, err = episode.Train(env, agent, *episodes,
		episode.WithRand(rand.New(rand.NewSource(*seed))),
		episode.WithMaxSteps(*maxSteps)); err != nil {
		log.Fatalf("train: %v", err)
	}
	after, err := episode.Evaluate(env, agent, *evalRuns,
		episode.WithRand(rand.New(rand.NewSource(*seed))),
		episode.WithMaxSteps(*maxSteps))
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	fmt.Println(titleStyle.Render("Learned greedy policy"))
	fmt.Println(frameStyle.Render(renderPolicy(env, agent.Values())))
	fmt.Printf("untrained: mean %.2f (min %.2f, max %.2f) over %d episodes\n",
		before.MeanReward, before.MinReward, before.MaxReward, before.Episodes)
	fmt.Printf("trained:   mean %.2f (min %.2f, max %.2f) over %d episodes after %d training episodes\n",
		after.MeanReward, after.MinReward, after.MaxReward, after.Episodes, *episodes)
}

// arrows maps each action to its policy glyph.
var arrows = map[gridenv.Action]string{
	gridenv.Up:    "↑",
	gridenv.Down:  "↓",
	gridenv.Left:  "←",
	gridenv.Right: "→",
}

// renderPolicy draws the grid: holes as ××, terminal rewards as their
// value, and every other cell as the greedy action from the value table
// (or · when the cell was never visited).
func renderPolicy(env *gridenv.GridEnvironment, table *qlearn.ValueTable) string {
	rows := make([]string, 0, env.Rows())
	for r := 0; r < env.Rows(); r++ {
		cells := make([]string, 0, env.Cols())
		for c := 0; c < env.Cols(); c++ {
			pos := gridenv.Position{Row: r, Col: c}
			cell := env.CellValue(pos)
			switch {
			case cell.Hole:
				cells = append(cells, holeStyle.Render("××"))
			case env.IsTerminal(pos):
				cells = append(cells, goalStyle.Render(fmt.Sprintf("%d", cell.Value)))
			default:
				glyph := "·"
				if a, ok := table.BestAction(pos); ok {
					glyph = arrows[a]
				}
				cells = append(cells, policyStyle.Render(glyph))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
