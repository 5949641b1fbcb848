// Package catalogrepo persists the catalog: dining tables and menu items.
package catalogrepo

import (
	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TableDTO represents a dining table row. Codes are stored already normalized.
type TableDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(100);not null"`
}

// TableName avoids the reserved word "tables".
func (TableDTO) TableName() string {
	return "dining_tables"
}

// MenuItemDTO represents a menu item row.
type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category    *string         `gorm:"type:varchar(100);index"`
	Available   bool            `gorm:"not null;default:true"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func tableFromDomain(t *catalog.Table) TableDTO {
	return TableDTO{
		ID:   t.ID().Bytes(),
		Code: t.Code(),
		Name: t.Name(),
	}
}

func tableToDomain(dto TableDTO) (*catalog.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreTable(id, dto.Code, dto.Name)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		Description: m.Description(),
		Price:       m.Price().Decimal(),
		Category:    m.Category(),
		Available:   m.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenuItem(id, dto.Name, dto.Description, kernel.NewMoney(dto.Price), dto.Category, dto.Available)
}
