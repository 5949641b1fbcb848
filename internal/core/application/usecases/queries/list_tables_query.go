package queries

import (
	"context"
	"errors"

	"tableside/internal/core/ports"
	"tableside/internal/pkg/guard"
)

var (
	ErrListTablesQueryIsNotConstructed = errors.New(
		"ListTablesQuery must be created via NewListTablesQuery constructor",
	)
)

// ListTablesQuery retrieves every table ordered by code.
type ListTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewListTablesQuery() ListTablesQuery {
	return ListTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

type ListTablesQueryHandler struct {
	tables ports.TableRepository
}

func NewListTablesQueryHandler(tables ports.TableRepository) ListTablesQueryHandler {
	return ListTablesQueryHandler{tables: tables}
}

func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]TableView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables, err := h.tables.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		views = append(views, newTableView(t))
	}
	return views, nil
}
