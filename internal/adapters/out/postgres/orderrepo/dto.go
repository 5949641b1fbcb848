// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the domain, so GORM's automatic time tracking is switched off.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TableID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedBy           *uuid.UUID      `gorm:"type:uuid"`
	Status              string          `gorm:"type:varchar(20);not null;index"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt           time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt           time.Time       `gorm:"not null;autoUpdateTime:false"`
	RequestedAssistance bool            `gorm:"not null;default:false"`
	PaidAt              *time.Time
	PaymentMethod       *string        `gorm:"type:varchar(50)"`
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one persisted line item. Position keeps the order items were added in.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null"`
	MenuItemName string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"type:int;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Position     int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// line items included.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var createdBy *uuid.UUID
	if id := o.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      orderID,
			MenuItemID:   item.MenuItemID().Bytes(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Price:        item.Price().Decimal(),
			Position:     i,
		})
	}

	return OrderDTO{
		ID:                  orderID,
		TableID:             o.TableID().Bytes(),
		CreatedBy:           createdBy,
		Status:              o.Status().String(),
		TotalAmount:         o.TotalAmount().Decimal(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		RequestedAssistance: o.RequestedAssistance(),
		PaidAt:              o.PaidAt(),
		PaymentMethod:       o.PaymentMethod(),
		Items:               items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// The stored total is ignored: the aggregate recomputes it from the line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		cID, createdByErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if createdByErr != nil {
			return nil, createdByErr
		}
		createdBy = &cID
	}

	status, err := order.RestoreStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                  id,
		TableID:             tableID,
		CreatedBy:           createdBy,
		Status:              status,
		Items:               items,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
		RequestedAssistance: dto.RequestedAssistance,
		PaidAt:              dto.PaidAt,
		PaymentMethod:       dto.PaymentMethod,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, menuItemID, dto.MenuItemName, dto.Quantity, kernel.NewMoney(dto.Price))
}
