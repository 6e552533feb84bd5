// Package stock classifies on-hand quantities against per-product reorder points.
//
// Key business rules:
//   - A product at or below its reorder point is low on stock
//   - A product at or below half its reorder point is critical
//   - A product without a reorder rule has a reorder point of zero, so it is only
//     flagged once it runs out
package stock
