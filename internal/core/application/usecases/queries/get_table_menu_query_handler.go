package queries

import (
	"context"

	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

// GetTableMenuQueryHandler combines the catalog and the table's open orders.
//
// Example:
//
//	query, err := NewGetTableMenuQuery("t1")
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	for _, s := range page.Sections {
//	    fmt.Printf("<a href=\"#%s\">%s</a>\n", s.Anchor, s.Title)
//	}
type GetTableMenuQueryHandler struct {
	tables    ports.TableRepository
	menu      ports.MenuItemRepository
	orders    ports.OrderRepository
	sectioner services.MenuSectioner
}

func NewGetTableMenuQueryHandler(
	tables ports.TableRepository,
	menu ports.MenuItemRepository,
	orders ports.OrderRepository,
) GetTableMenuQueryHandler {
	return GetTableMenuQueryHandler{
		tables:    tables,
		menu:      menu,
		orders:    orders,
		sectioner: services.NewMenuSectioner(),
	}
}

func (h GetTableMenuQueryHandler) Handle(ctx context.Context, query GetTableMenuQuery) (GetTableMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTableMenuQueryResponse{}, err
	}

	table, err := h.tables.GetByCode(ctx, query.TableCode())
	if err != nil {
		return GetTableMenuQueryResponse{}, err
	}

	items, err := h.menu.ListAvailable(ctx)
	if err != nil {
		return GetTableMenuQueryResponse{}, err
	}

	active, err := h.orders.ActiveForTable(ctx, table.ID())
	if err != nil {
		return GetTableMenuQueryResponse{}, err
	}

	sections := h.sectioner.Sections(items)
	sectionViews := make([]MenuSectionView, 0, len(sections))
	for _, s := range sections {
		sectionViews = append(sectionViews, MenuSectionView{
			Title:  s.Title,
			Anchor: s.Anchor,
			Items:  newMenuItemViews(s.Items),
		})
	}

	resp := GetTableMenuQueryResponse{
		Table:        newTableView(table),
		Sections:     sectionViews,
		ActiveOrders: newOrderViews(active),
	}
	if len(resp.ActiveOrders) > 0 {
		latest := resp.ActiveOrders[0]
		resp.LatestOrder = &latest
	}

	return resp, nil
}
