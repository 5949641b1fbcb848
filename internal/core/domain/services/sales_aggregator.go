package services

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// SalesAggregator derives revenue from orders. Nothing is stored: every figure is
// recomputed from the orders passed in, and non-paid orders are ignored.
type SalesAggregator struct{}

func NewSalesAggregator() SalesAggregator {
	return SalesAggregator{}
}

// TotalRevenue sums the totals of all paid orders. It is zero when there are none.
func (SalesAggregator) TotalRevenue(orders []*order.Order) kernel.Money {
	total := kernel.ZeroMoney()
	for _, o := range orders {
		if o.Status() == order.Paid {
			total = total.Add(o.TotalAmount())
		}
	}
	return total
}

// RevenueOn sums paid orders whose paidAt falls on the calendar date of day.
// paidAt is converted into day's location before the dates are compared.
func (SalesAggregator) RevenueOn(orders []*order.Order, day time.Time) kernel.Money {
	total := kernel.ZeroMoney()
	for _, o := range orders {
		if o.Status() != order.Paid {
			continue
		}
		paidAt := o.PaidAt()
		if paidAt == nil || !sameDate(paidAt.In(day.Location()), day) {
			continue
		}
		total = total.Add(o.TotalAmount())
	}
	return total
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
