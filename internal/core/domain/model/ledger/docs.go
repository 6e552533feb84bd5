// Package ledger models stock ledger entries: the signed stock movements posted when
// a receipt or a delivery is completed. The running stock of a product is the sum of
// its entries.
package ledger
