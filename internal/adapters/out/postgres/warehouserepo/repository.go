package warehouserepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/warehouse"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse and its locations.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Update saves name, address and locations when the stored version matches the
// aggregate's, then bumps the stored version. Locations are upserted; removed
// locations are not supported.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&WarehouseDTO{}).
		Where("code = ? AND version = ?", dto.Code, dto.Version).
		Updates(map[string]any{
			"name":    dto.Name,
			"address": dto.Address,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.Code())
	}

	if len(dto.Locations) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_code"}, {Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "position"}),
		}).Create(&dto.Locations).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Get retrieves a warehouse with its locations in insertion order.
func (r *GormWarehouseRepository) Get(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO
	err := r.db.WithContext(ctx).
		Preload("Locations", orderedLocations).
		First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormWarehouseRepository) missingOrStale(ctx context.Context, code string) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&WarehouseDTO{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("warehouse", code)
	}
	return errs.NewVersionIsInvalidError(code)
}

func orderedLocations(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
