// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - StockPoster: turns a completed receipt or delivery into stock ledger entries
package services
