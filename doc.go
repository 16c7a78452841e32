// Package sovereigntax computes capital-gains tax lots for a Bitcoin
// transaction history. It is designed to be local-first and auditable: the
// whole engine is a pure function of the transaction list, so results can
// always be recomputed and verified from the ledger file.
//
// The core functionalities include:
//   - Lot tracking: replaying a chronological history of buys into open
//     lots, each carrying its own cost basis and acquisition date.
//   - Sale matching: consuming lots against sales under FIFO, LIFO, HIFO or
//     Specific Identification, with per-wallet cost basis enforcement and a
//     non-mutating simulation entry point for sale previews.
//   - Loss carryforward: applying the annual capital-loss deduction cap and
//     rolling the remainder across tax years.
//   - Transfer reconciliation: pairing cross-exchange transfer legs and
//     flagging balance anomalies that suggest missing history.
//   - Data persistence: encoding and decoding the transaction ledger in a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `sovtax`
// command-line tool; report rendering and export formats live in
// collaborating packages that consume the structures produced here.
package sovereigntax
