package http

import (
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request bodies.
type (
	NewTableOrder struct {
		Quantities map[string]string `json:"quantities"`
	}

	NewStaffOrder struct {
		TableCode  string            `json:"tableCode"`
		Quantities map[string]string `json:"quantities"`
	}

	StatusChange struct {
		Status        string `json:"status"`
		PaymentMethod string `json:"paymentMethod"`
	}

	NewTable struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	// MenuItemInput is shared by create and update. A missing Available means true.
	MenuItemInput struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Category    string `json:"category"`
		Available   *bool  `json:"available"`
	}
)

// Response bodies. Money is rendered as a fixed two-decimal string.
type (
	Created struct {
		ID openapi_types.UUID `json:"id"`
	}

	Table struct {
		ID   openapi_types.UUID `json:"id"`
		Code string             `json:"code"`
		Name string             `json:"name"`
	}

	TableBoardRow struct {
		ID              openapi_types.UUID `json:"id"`
		Code            string             `json:"code"`
		Name            string             `json:"name"`
		OpenOrders      int                `json:"openOrders"`
		NeedsAssistance bool               `json:"needsAssistance"`
	}

	MenuItem struct {
		ID          openapi_types.UUID `json:"id"`
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Price       string             `json:"price"`
		Category    string             `json:"category"`
		Available   bool               `json:"available"`
	}

	MenuSection struct {
		Title  string     `json:"title"`
		Anchor string     `json:"anchor"`
		Items  []MenuItem `json:"items"`
	}

	OrderItem struct {
		ID           openapi_types.UUID `json:"id"`
		MenuItemID   openapi_types.UUID `json:"menuItemId"`
		MenuItemName string             `json:"menuItemName"`
		Quantity     int                `json:"quantity"`
		Price        string             `json:"price"`
		Subtotal     string             `json:"subtotal"`
	}

	Order struct {
		ID                  openapi_types.UUID  `json:"id"`
		TableID             openapi_types.UUID  `json:"tableId"`
		CreatedBy           *openapi_types.UUID `json:"createdBy"`
		Status              string              `json:"status"`
		StatusIndex         int                 `json:"statusIndex"`
		Items               []OrderItem         `json:"items"`
		TotalAmount         string              `json:"totalAmount"`
		CreatedAt           time.Time           `json:"createdAt"`
		UpdatedAt           time.Time           `json:"updatedAt"`
		RequestedAssistance bool                `json:"requestedAssistance"`
		PaidAt              *time.Time          `json:"paidAt"`
		PaymentMethod       *string             `json:"paymentMethod"`
		Active              bool                `json:"active"`
	}

	OrderSummary struct {
		Table    Table    `json:"table"`
		Order    Order    `json:"order"`
		Pipeline []string `json:"pipeline"`
	}

	TableMenu struct {
		Table        Table         `json:"table"`
		Sections     []MenuSection `json:"sections"`
		ActiveOrders []Order       `json:"activeOrders"`
		LatestOrder  *Order        `json:"latestOrder,omitempty"`
	}

	SalesSummary struct {
		TotalRevenue string  `json:"totalRevenue"`
		TodayRevenue string  `json:"todayRevenue"`
		RecentOrders []Order `json:"recentOrders"`
	}
)

func toTable(v queries.TableView) Table {
	return Table{ID: v.ID.Bytes(), Code: v.Code, Name: v.Name}
}

func toTables(views []queries.TableView) []Table {
	result := make([]Table, 0, len(views))
	for _, v := range views {
		result = append(result, toTable(v))
	}
	return result
}

func toTableBoard(rows []queries.GetTableBoardQueryResponse) []TableBoardRow {
	result := make([]TableBoardRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, TableBoardRow{
			ID:              row.ID.Bytes(),
			Code:            row.Code,
			Name:            row.Name,
			OpenOrders:      row.OpenOrders,
			NeedsAssistance: row.NeedsAssistance,
		})
	}
	return result
}

func toMenuItems(views []queries.MenuItemView) []MenuItem {
	result := make([]MenuItem, 0, len(views))
	for _, v := range views {
		result = append(result, MenuItem{
			ID:          v.ID.Bytes(),
			Name:        v.Name,
			Description: v.Description,
			Price:       v.Price.String(),
			Category:    v.Category,
			Available:   v.Available,
		})
	}
	return result
}

func toOrder(v queries.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItem{
			ID:           item.ID.Bytes(),
			MenuItemID:   item.MenuItemID.Bytes(),
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			Price:        item.Price.String(),
			Subtotal:     item.Subtotal.String(),
		})
	}

	return Order{
		ID:                  v.ID.Bytes(),
		TableID:             v.TableID.Bytes(),
		CreatedBy:           optionalUUID(v.CreatedBy),
		Status:              v.Status,
		StatusIndex:         v.StatusIndex,
		Items:               items,
		TotalAmount:         v.TotalAmount.String(),
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
		RequestedAssistance: v.RequestedAssistance,
		PaidAt:              v.PaidAt,
		PaymentMethod:       v.PaymentMethod,
		Active:              v.Active,
	}
}

func toOrders(views []queries.OrderView) []Order {
	result := make([]Order, 0, len(views))
	for _, v := range views {
		result = append(result, toOrder(v))
	}
	return result
}

func toTableMenu(r queries.GetTableMenuQueryResponse) TableMenu {
	sections := make([]MenuSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, MenuSection{
			Title:  s.Title,
			Anchor: s.Anchor,
			Items:  toMenuItems(s.Items),
		})
	}

	menu := TableMenu{
		Table:        toTable(r.Table),
		Sections:     sections,
		ActiveOrders: toOrders(r.ActiveOrders),
	}
	if r.LatestOrder != nil {
		latest := toOrder(*r.LatestOrder)
		menu.LatestOrder = &latest
	}
	return menu
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
