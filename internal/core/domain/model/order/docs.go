// Package order provides the transfer order aggregate of the warehouse: inbound
// receipts and outbound deliveries, their line items and the status workflow that
// the "Validate" action drives.
//
// The package includes:
//   - Order: the aggregate root holding identity, partner, location, status and lines
//   - LineItem: a single product/quantity entry with its stock availability flag
//   - Availability: the result of evaluating a line sequence for shortfalls
//   - Status: the closed set of workflow states and its transition tables
//
// Key business rules:
//   - Deliveries advance Draft -> Ready when every line is in stock, Draft -> Waiting
//     otherwise; Waiting stays Waiting until the shortfall clears; Ready -> Done
//   - Receipts advance Draft -> Ready -> Done without stock gating
//   - Done is terminal; validating a Done order is an invalid transition
//   - Lines are appended in display order until the order is Done
//   - An order without lines is vacuously in stock
package order
