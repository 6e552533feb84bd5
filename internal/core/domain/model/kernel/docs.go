// Package kernel provides the shared value objects of the warehouse domain.
//
// The package includes:
//   - UUID: identifier for line items and ledger entries
//   - Location: a warehouse stock location code such as "WH/Stock1"
//
// Both are immutable and invalid in their zero value; they must be created through
// their constructors.
package kernel
