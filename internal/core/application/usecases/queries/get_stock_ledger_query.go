package queries

import (
	"errors"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/ledger"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetStockLedgerQueryIsNotConstructed = errors.New(
		"GetStockLedgerQuery must be created via NewGetStockLedgerQuery constructor",
	)
)

// GetStockLedgerQuery reads the move history, optionally for a single product.
type GetStockLedgerQuery struct {
	sku string

	guard guard.ConstructorGuard
}

// NewGetStockLedgerQuery creates a ledger query. An empty sku reads every product.
func NewGetStockLedgerQuery(sku string) GetStockLedgerQuery {
	return GetStockLedgerQuery{
		sku:   strings.TrimSpace(sku),
		guard: guard.NewConstructorGuard(),
	}
}

func (q GetStockLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetStockLedgerQueryIsNotConstructed)
}

func (q GetStockLedgerQuery) SKU() string {
	return q.sku
}

// GetStockLedgerQueryResponse is one movement with the product's stock after it.
type GetStockLedgerQueryResponse struct {
	ID           kernel.UUID
	Type         ledger.EntryType
	SKU          string
	Product      string
	Quantity     int
	Location     string
	Reference    string
	PostedAt     time.Time
	RunningStock int
}
