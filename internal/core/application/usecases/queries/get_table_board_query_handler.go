package queries

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTableBoardQueryHandler reads the table board straight from the database.
// Uses direct SQL for the aggregate instead of loading every order aggregate.
type GetTableBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetTableBoardQueryHandler creates a handler for table board queries.
// Requires a GORM database connection for query execution.
func NewGetTableBoardQueryHandler(db *gorm.DB) GetTableBoardQueryHandler {
	return GetTableBoardQueryHandler{db: db}
}

// Handle executes the board query. Rows are sorted by table code; tables without
// orders are included with zero counts. Paid orders count towards neither column.
func (h GetTableBoardQueryHandler) Handle(
	ctx context.Context,
	query GetTableBoardQuery,
) ([]GetTableBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetTableBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.code,
			t.name,
			COUNT(o.id) FILTER (WHERE o.status <> ?) AS open_orders,
			COALESCE(BOOL_OR(o.requested_assistance) FILTER (WHERE o.status <> ?), FALSE) AS needs_assistance
		FROM dining_tables t
		LEFT JOIN orders o ON o.table_id = t.id
		GROUP BY t.id, t.code, t.name
		ORDER BY t.code
	`, order.Paid.String(), order.Paid.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetTableBoardQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Code,
			&row.Name,
			&row.OpenOrders,
			&row.NeedsAssistance,
		)
		if err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = tableID

		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
