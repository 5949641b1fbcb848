package catalogrepo

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// byCategoryThenName puts uncategorized items first, the way the menu lists them.
const byCategoryThenName = "category ASC NULLS FIRST, name ASC"

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update overwrites every column of an existing menu item. Line items already
// placed keep their own copy of name and price.
func (r *GormMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}

	return nil
}

// List retrieves every menu item by category then name.
func (r *GormMenuItemRepository) List(ctx context.Context) ([]*catalog.MenuItem, error) {
	return r.find(r.db.WithContext(ctx).Order(byCategoryThenName))
}

// ListAvailable retrieves available menu items by category then name.
func (r *GormMenuItemRepository) ListAvailable(ctx context.Context) ([]*catalog.MenuItem, error) {
	return r.find(r.db.WithContext(ctx).
		Where("available = ?", true).
		Order(byCategoryThenName))
}

// ListAvailableByName retrieves available menu items by name.
func (r *GormMenuItemRepository) ListAvailableByName(ctx context.Context) ([]*catalog.MenuItem, error) {
	return r.find(r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("name ASC"))
}

func (r *GormMenuItemRepository) find(query *gorm.DB) ([]*catalog.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
