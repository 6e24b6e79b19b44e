// Package gridq is your in-memory playground for tabular reinforcement
// learning — a grid world, a Q-learning agent, and the loops that train
// and evaluate it.
//
// 🚀 What is gridq?
//
//	A small, pure-Go library that brings together:
//		• Grid worlds: immutable rectangular layouts of open cells,
//		  terminal reward cells, and holes, with YAML decoding
//		• A temporal-difference agent: ε-greedy policy over a
//		  lazily-populated value table + one-step Q-learning backup
//		• Episode loops: Run / Train / Evaluate with hooks, step limits
//		  and context cancellation
//		• A terminal demo that renders the learned greedy policy
//
// ✨ Why choose gridq?
//
//   - Beginner-friendly – the whole learner fits in your head
//   - Deterministic where it matters – injectable, seedable randomness;
//     canonical greedy tie-breaks
//   - Pure Go – no cgo, a read-only environment safe to share across
//     any number of agents
//
// Under the hood, everything is organized under three subpackages:
//
//	gridenv/ — Position, Action, Layout & the immutable GridEnvironment
//	qlearn/  — ValueTable & the ε-greedy TemporalDifference Agent
//	episode/ — Run, Train, Evaluate loops with functional options
//
// Quick ASCII example (H = hole, positive numbers = terminal rewards):
//
//	0  0  0  0  0  0  0
//	0  H  0  0  0  H  0
//	0  0  0  5  0  0  0
//	0  0  0  0  0  0 10
//
//	an agent dropped anywhere on the open cells learns to walk to the
//	10-cell while skirting both holes.
//
// Dive into cmd/gridq for a runnable, rendered walkthrough.
//
//	go get github.com/katalvlaran/gridq
package gridq
