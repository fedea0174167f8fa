// Package rebalance computes the whole-unit trades that move a portfolio
// of held positions toward a target allocation, without ever overshooting
// any single asset's target share.
//
// The core functionalities include:
//   - Positions: immutable one-unit holdings recorded at their current price.
//   - Target Allocations: validated sets of (percentage, asset) pairs that
//     are guaranteed to sum to exactly 100% with strictly positive entries.
//   - Rebalancing: a pure, total function producing a Suggestion of unit
//     counts to buy and sell per asset, using a conservative never-overshoot
//     policy (leftover fractional value stays unallocated as implicit cash).
//   - Data Plumbing: decoding and encoding of portfolio snapshots in a
//     human-readable JSONL format, and price refresh from JSON quote
//     snapshot documents.
//
// All arithmetic is decimal-exact: percentages and prices are never handled
// as binary floating-point, so the sum-to-100 invariant is checked with
// exact equality rather than an epsilon.
//
// This package serves as the foundational logic for the `rbl` command-line
// tool.
package rebalance
