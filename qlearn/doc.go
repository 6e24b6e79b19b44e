// Package qlearn provides a tabular Q-learning agent for
// gridenv.GridEnvironment.
//
// What:
//
//   - ValueTable: lazily-populated per-(state, action) estimates, keyed
//     by exactly the actions valid from each state.
//   - Agent: ε-greedy action selection plus the one-step Q-learning
//     backup, with a current state and cumulative reward that Reset
//     rewinds without touching learned values.
//
// Why:
//
//   - The smallest complete value-based learner: explicit state space,
//     action space, reward signal, and temporal-difference update.
//   - Deterministic where it matters: the random source is injected and
//     seedable, and greedy ties break on the canonical action order.
//
// Update rule (applied exactly once per step, for the previous
// state/action pair, using the reward observed on entering the next
// state):
//
//	Q(s,a) ← Q(s,a) + α·(r + γ·maxₐ′ Q(s′,a′) − Q(s,a))
//
// Episode contract: callers start the agent at a non-terminal position,
// call Step until the environment reports the current state terminal,
// and read CumulativeReward. The terminal state never serves as a state
// an action is chosen from, but it may receive a lazily-initialized
// all-zero row as a backup target.
//
// Errors:
//
//   - ErrNilEnvironment: NewAgent given a nil environment.
//   - ErrBadParameter: Discount, ExplorationRate, or LearningRate
//     outside [0,1].
//   - ErrOutOfBounds: start position outside the grid.
//   - ErrInvalidAction: StepWith given an action that is not valid from
//     the current state; the agent's state is left unmodified.
//
// No retries anywhere: all operations are synchronous, single-threaded,
// and deterministic given the injected random source.
package qlearn
