package ledgerrepo

import (
	"context"

	"warehouse/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository and InventoryLookup using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts entries in a single batch.
func (r *GormLedgerRepository) Append(ctx context.Context, entries ...ledger.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, entry := range entries {
		r.tracker.TrackAggregate(entry.ID().String(), entry)
	}
	return nil
}

// OnHand sums every movement of the product. Unknown products have zero stock.
func (r *GormLedgerRepository) OnHand(ctx context.Context, sku string) (int, error) {
	var onHand int
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(quantity), 0) FROM ledger_entries WHERE sku = ?", sku).
		Scan(&onHand).Error
	if err != nil {
		return 0, err
	}

	return onHand, nil
}

// GetByReference returns the movements posted for one order, oldest first.
func (r *GormLedgerRepository) GetByReference(ctx context.Context, reference string) ([]ledger.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("posted_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
