package orderrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID returns MAX(id)+1 for the kind. Inside a transaction the kind is locked with
// an advisory lock until commit so concurrent creators do not collide.
func (r *GormOrderRepository) NextID(ctx context.Context, kind order.Kind) (int, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("SELECT pg_advisory_xact_lock(?)", int(kind)).Error; err != nil {
		return 0, err
	}

	var next int
	if err := db.Raw("SELECT COALESCE(MAX(id), 0) + 1 FROM orders WHERE kind = ?", int(kind)).
		Scan(&next).Error; err != nil {
		return 0, err
	}

	return next, nil
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Reference(), aggregate)
	return nil
}

// Update saves status and lines of an existing order when the stored version matches
// the aggregate's, then bumps the stored version. Lines are upserted; only their stock
// flag can change after insert.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("kind = ? AND id = ? AND version = ?", dto.Kind, dto.ID, dto.Version).
		Updates(map[string]any{
			"partner":            dto.Partner,
			"location_warehouse": dto.Location.Warehouse,
			"location_name":      dto.Location.Name,
			"scheduled_at":       dto.ScheduledAt,
			"status":             dto.Status,
			"version":            gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	if len(dto.Lines) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"in_stock"}),
		}).Create(&dto.Lines).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Reference(), aggregate)
	return nil
}

// Get retrieves an order with its lines in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, kind order.Kind, id int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", orderedLines).
		First(&dto, "kind = ? AND id = ?", int(kind), id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", order.FormatReference(kind, id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves every order of the kind in one of the statuses, by id.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context,
	kind order.Kind,
	statuses ...order.Status,
) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int(s))
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", orderedLines).
		Where("kind = ? AND status IN ?", int(kind), codes).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, aggregate *order.Order) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("kind = ? AND id = ?", int(aggregate.Kind()), aggregate.ID()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.Reference())
	}
	return errs.NewVersionIsInvalidError(aggregate.Reference())
}

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
