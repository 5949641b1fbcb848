package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
		"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
	)
)

// GetSalesSummaryQuery is the admin dashboard. Today is supplied by the caller; its
// location decides which calendar day counts as today.
type GetSalesSummaryQuery struct {
	today time.Time

	guard guard.ConstructorGuard
}

func NewGetSalesSummaryQuery(today time.Time) (GetSalesSummaryQuery, error) {
	if today.IsZero() {
		return GetSalesSummaryQuery{}, errs.NewValueIsRequiredError("today")
	}
	return GetSalesSummaryQuery{today: today, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

func (q GetSalesSummaryQuery) Today() time.Time {
	return q.today
}

// GetSalesSummaryQueryResponse holds revenue figures computed on demand from paid
// orders and the most recent orders of any status.
type GetSalesSummaryQueryResponse struct {
	TotalRevenue kernel.Money
	TodayRevenue kernel.Money
	RecentOrders []OrderView
}
