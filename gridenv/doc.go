// Package gridenv models a rectangular grid world as an immutable,
// shareable environment for tabular reinforcement learning.
//
// What:
//
//   - Position and Action value types with a canonical action ordering
//     (Up < Down < Left < Right) used for deterministic tie-breaks.
//   - GridEnvironment wraps a rectangular Layout of open and hole cells.
//   - Answers state/action/reward queries: ValidActions, CellValue,
//     IsTerminal, Reward, StartingPositions.
//   - Layouts decode from YAML (integers = open cells, "H"/"hole"/"x" = holes).
//
// Why:
//
//   - Grid worlds: the smallest honest testbed for value-based agents.
//   - Read-only after construction, so one environment serves many
//     independently-stateful agents without coordination.
//
// Semantics:
//
//   - Terminal cells: holes and strictly positive cell values.
//   - Reward for entering a cell (default rule): hole → −1, open cell of
//     value 0 → −1, any other value passes through unchanged.
//   - The reward lookup is fixed at construction: either the default
//     rule, a closed-form WithRewardFunc, or a precomputed
//     WithRewardTable — never dispatched at query time.
//
// Complexity:
//
//   - New:               O(rows×cols) time and memory.
//   - Every query:       O(1).
//
// Errors:
//
//   - ErrEmptyLayout: layout has no rows or no columns.
//   - ErrRaggedLayout: rows have differing lengths.
//   - ErrBadCell: a YAML cell is neither an integer nor a hole marker.
//   - ErrRewardConflict: both WithRewardFunc and WithRewardTable given.
//
// Out-of-bounds CellValue/Reward/ValidActions queries violate the call
// contract and panic; they indicate a caller bug, not a runtime
// condition to recover from.
package gridenv
