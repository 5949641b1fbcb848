package queries

import (
	"errors"

	"tableside/internal/core/ports"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetRecentOrdersQueryIsNotConstructed = errors.New(
		"GetRecentOrdersQuery must be created via NewGetRecentOrdersQuery constructor",
	)
)

// GetRecentOrdersQuery retrieves the latest orders of any status.
type GetRecentOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentOrdersQuery creates the query. A limit that is not positive is replaced
// by ports.DefaultRecentLimit.
func NewGetRecentOrdersQuery(limit int) GetRecentOrdersQuery {
	if limit <= 0 {
		limit = ports.DefaultRecentLimit
	}
	return GetRecentOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

func (q GetRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentOrdersQueryIsNotConstructed)
}

func (q GetRecentOrdersQuery) Limit() int {
	return q.limit
}
