package orderrepo

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/google/uuid"
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
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column of an existing order, including zero values, and
// brings its line items in line with the aggregate. Line items never change once
// written, so existing rows are kept and missing ones inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	itemIDs := make([]uuid.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemIDs = append(itemIDs, item.ID)
	}

	stale := db.Where("order_id = ?", dto.ID)
	if len(itemIDs) > 0 {
		stale = stale.Where("id NOT IN ?", itemIDs)
	}
	if err := stale.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForTable retrieves an order by ID only when it was placed for tableID.
func (r *GormOrderRepository) GetForTable(ctx context.Context, tableID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tableID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).First(&dto, "id = ? AND table_id = ?", id.Bytes(), tableID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ActiveForTable retrieves the table's unpaid orders, newest first.
func (r *GormOrderRepository) ActiveForTable(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	return r.find(r.withItems(ctx).
		Where("table_id = ? AND status <> ?", tableID.Bytes(), order.Paid.String()).
		Order("created_at DESC"))
}

// AllOpen retrieves every unpaid order, newest first.
func (r *GormOrderRepository) AllOpen(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).
		Where("status <> ?", order.Paid.String()).
		Order("created_at DESC"))
}

// Recent retrieves the latest orders of any status.
func (r *GormOrderRepository) Recent(ctx context.Context, limit int) ([]*order.Order, error) {
	if limit <= 0 {
		limit = ports.DefaultRecentLimit
	}

	return r.find(r.withItems(ctx).
		Order("created_at DESC").
		Limit(limit))
}

// AllPaid retrieves every paid order in payment order.
func (r *GormOrderRepository) AllPaid(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.withItems(ctx).
		Where("status = ?", order.Paid.String()).
		Order("paid_at"))
}

// CountForTable counts orders of any status placed for tableID.
func (r *GormOrderRepository) CountForTable(ctx context.Context, tableID kernel.UUID) (int64, error) {
	if err := tableID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("table_id = ?", tableID.Bytes()).
		Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
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
