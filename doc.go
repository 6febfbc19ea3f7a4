// Package exledger splits exchange-exported transaction ledgers and
// summarizes the interest they report. It is designed to be local-first and
// auditable: every row read from an export is accounted for in the output.
//
// The core functionalities include:
//   - Exchange Schemas: a static registry describing the CSV layout of each
//     supported exchange (columns, type column, currency columns).
//   - Field Normalization: turning display strings like "$1,234.50" into
//     exact decimal values.
//   - Partitioning: an exhaustive and disjoint split of a ledger by
//     transaction type, with a verified row count.
//   - Interest Aggregation: per-asset totals of interest received, in asset
//     units and in fiat-equivalent value.
//
// This package serves as the foundational logic for the `exl` command-line
// tool. It performs no logging and returns typed errors for the caller to
// report.
package exledger
