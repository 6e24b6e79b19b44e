// Package episode drives qlearn agents through gridenv worlds.
//
// What:
//
//   - Run: one episode from a chosen non-terminal start to a terminal
//     state, with optional step limit, cancellation, and per-step hook.
//   - Train: a batch of episodes from uniformly random starts.
//   - Evaluate: a greedy batch (ε forced to 0 and restored afterwards)
//     summarized as mean/min/max cumulative reward.
//
// Why:
//
//   - The train-then-evaluate loop is part of the agent's contract;
//     packaging it keeps drivers to a handful of lines and makes the
//     explore/exploit toggle explicit.
//
// Options:
//
//   - WithContext: cancellation and deadlines for long runs.
//   - WithMaxSteps: per-episode step cap (0 = unlimited).
//   - WithOnStep: observe every transition.
//   - WithRand: seedable source for start-position draws.
//
// Errors:
//
//   - ErrNilEnvironment, ErrNilAgent: nil inputs.
//   - ErrTerminalStart: episode would begin on a terminal position.
//   - ErrNoEpisodes: non-positive episode count.
//   - ErrNoStart: the environment has no non-terminal position.
//   - ErrStepLimit: WithMaxSteps exhausted before a terminal state.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// An episode over a layout with no reachable terminal state and no step
// limit never returns; supplying a well-formed layout (or WithMaxSteps)
// is the caller's responsibility.
package episode
