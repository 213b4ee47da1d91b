// Package fundpool is the valuation and attribution engine for a small
// multi-contributor investment pool. Capital is injected in discrete batches,
// each batch buys securities on the Taiwanese (lot-based, TWD) or the US
// (share-based, USD) market, and every figure the engine produces is expressed
// in the pool's home currency, TWD.
//
// The engine is a set of pure functions over an immutable Ledger snapshot:
//   - As-of resolution of historical closing prices and USD/TWD rates.
//   - Home-currency cost and market value of individual investments.
//   - Proportional attribution of pooled holdings back to the funding sources
//     that financed them, with exact conservation of units and cost.
//   - Per-category, per-dimension and per-batch summaries.
//   - Interval profit and loss between two arbitrary dates.
//   - A daily, gap-filled value/cost time series over the life of the pool.
//
// Nothing here performs I/O beyond the JSONL codec and the spreadsheet import
// at the boundary; recomputing any report from the same snapshot yields
// identical output.
//
// This package is the foundational logic for the `fpool` command-line tool.
package fundpool
