package stockrepo

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/stock"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReorderRuleRepository implements ReorderRuleRepository using GORM.
type GormReorderRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormReorderRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormReorderRuleRepository {
	return &GormReorderRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the rule keyed by sku.
func (r *GormReorderRuleRepository) Save(ctx context.Context, rule stock.ReorderRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule, time.Now())
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{"point", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate("reorder:"+rule.SKU(), rule)
	return nil
}
