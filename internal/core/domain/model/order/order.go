package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for one table order and the line items it owns.
//
// Order follows these invariants:
//   - Belongs to exactly one table
//   - totalAmount always equals the rounded sum of line item subtotals
//   - paidAt and paymentMethod are set only while status is Paid
//   - updatedAt never moves backwards and is bumped by every mutation
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableID is the table the order was placed for
	tableID kernel.UUID

	// createdBy is the staff member who keyed the order in (nil for customer orders)
	createdBy *kernel.UUID

	status Status
	items  []*Item

	// totalAmount is derived from items and only written by recalculate
	totalAmount kernel.Money

	createdAt time.Time
	updatedAt time.Time

	requestedAssistance bool

	paidAt        *time.Time
	paymentMethod *string

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a pending order with one line item per selection, each snapshotting
// the menu item's current price.
//
// Parameters:
//   - id: Unique identifier for the order
//   - tableID: The table the order is for
//   - createdBy: The staff member creating it, nil for customer-initiated orders
//   - selections: At least one selection, otherwise ErrNoItemsSelected
//   - now: Creation time, used for createdAt and updatedAt
//
// Example:
//
//	sel, _ := order.NewSelection(padThai, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), table.ID(), nil, []order.Selection{sel}, time.Now())
//	if errors.Is(err, order.ErrNoItemsSelected) {
//	    // re-prompt
//	}
func NewOrder(
	id kernel.UUID,
	tableID kernel.UUID,
	createdBy *kernel.UUID,
	selections []Selection,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if len(selections) == 0 {
		return nil, ErrNoItemsSelected
	}

	for _, sel := range selections {
		if err := o.appendItem(sel.menuItem, sel.quantity); err != nil {
			return nil, err
		}
	}

	o.RecalculateTotal(now)
	return o, nil
}

// Snapshot carries the persisted state RestoreOrder rebuilds an order from.
type Snapshot struct {
	ID                  kernel.UUID
	TableID             kernel.UUID
	CreatedBy           *kernel.UUID
	Status              Status
	Items               []*Item
	CreatedAt           time.Time
	UpdatedAt           time.Time
	RequestedAssistance bool
	PaidAt              *time.Time
	PaymentMethod       *string
}

// RestoreOrder rebuilds an order loaded from persistence. The total is recomputed
// from the restored items without touching updatedAt. Payment fields are dropped
// unless the status is Paid.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		requestedAssistance: s.RequestedAssistance,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setTableID(s.TableID),
		o.setCreatedBy(s.CreatedBy),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = s.Status

	for _, item := range s.Items {
		if item == nil {
			return nil, errs.NewValueIsRequiredError("order item")
		}
		o.items = append(o.items, item)
	}
	o.totalAmount = o.sumSubtotals()

	if o.status == Paid {
		o.paidAt = s.PaidAt
		o.paymentMethod = normalizePaymentMethod(s.PaymentMethod)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// BelongsTo reports whether the order was placed for tableID.
func (o *Order) BelongsTo(tableID kernel.UUID) bool {
	return o.tableID.IsEqual(tableID)
}

// CreatedBy is nil for customer-initiated orders.
func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdBy
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items in insertion order. The slice is a copy.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) RequestedAssistance() bool {
	return o.requestedAssistance
}

// PaidAt is set only while the order is paid.
func (o *Order) PaidAt() *time.Time {
	if o.paidAt == nil {
		return nil
	}
	t := *o.paidAt
	return &t
}

// PaymentMethod is set only while the order is paid, and may be nil even then.
func (o *Order) PaymentMethod() *string {
	if o.paymentMethod == nil {
		return nil
	}
	m := *o.paymentMethod
	return &m
}

// IsActive is false exactly when the order is paid or cancelled.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// AddItem appends a line item for menuItem and recomputes the total.
func (o *Order) AddItem(menuItem *catalog.MenuItem, quantity int, now time.Time) error {
	sel, err := NewSelection(menuItem, quantity)
	if err != nil {
		return err
	}
	if err = o.appendItem(sel.menuItem, sel.quantity); err != nil {
		return err
	}
	o.RecalculateTotal(now)
	return nil
}

// RemoveItem deletes the line item with itemID and recomputes the total.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) error {
	idx := slices.IndexFunc(o.items, func(i *Item) bool { return i.id.IsEqual(itemID) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("order item", itemID.String())
	}
	o.items = slices.Delete(o.items, idx, idx+1)
	o.RecalculateTotal(now)
	return nil
}

// RecalculateTotal sets the total to the sum of line item subtotals and bumps
// updatedAt. Calling it repeatedly yields the same total.
func (o *Order) RecalculateTotal(now time.Time) {
	o.totalAmount = o.sumSubtotals()
	o.touch(now)
}

// Transition moves the order to any pipeline status, backwards included.
//
// Moving to Paid stamps paidAt with now and records paymentMethod (blank means none).
// Moving anywhere else clears both payment fields. A status outside the pipeline
// returns an InvalidStatusError and leaves the order untouched.
//
// Example:
//
//	if err := o.Transition(order.Paid, "cash", time.Now()); err != nil {
//	    // errors.Is(err, order.ErrInvalidStatus)
//	}
func (o *Order) Transition(status Status, paymentMethod string, now time.Time) error {
	if !status.IsPipeline() {
		return NewInvalidStatusError(status.String())
	}

	o.status = status
	if status == Paid {
		paidAt := now
		o.paidAt = &paidAt
		o.paymentMethod = normalizePaymentMethod(&paymentMethod)
	} else {
		o.paidAt = nil
		o.paymentMethod = nil
	}

	o.touch(now)
	return nil
}

// TransitionTo parses raw with ParseStatus and then transitions.
func (o *Order) TransitionTo(raw string, paymentMethod string, now time.Time) error {
	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	return o.Transition(status, paymentMethod, now)
}

// RequestAssistance raises the call-staff flag. Allowed in any status.
func (o *Order) RequestAssistance(now time.Time) {
	o.requestedAssistance = true
	o.touch(now)
}

// AcknowledgeAssistance clears the call-staff flag. Allowed in any status.
func (o *Order) AcknowledgeAssistance(now time.Time) {
	o.requestedAssistance = false
	o.touch(now)
}

func (o *Order) appendItem(menuItem *catalog.MenuItem, quantity int) error {
	item, err := RestoreItem(kernel.NewUUID(), menuItem.ID(), menuItem.Name(), quantity, menuItem.Price())
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

func (o *Order) sumSubtotals() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// touch keeps updatedAt monotonic.
func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("table", err)
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy == nil {
		return nil
	}
	if err := createdBy.Validate(); err != nil {
		return err
	}
	id := *createdBy
	o.createdBy = &id
	return nil
}

func normalizePaymentMethod(method *string) *string {
	if method == nil {
		return nil
	}
	m := strings.TrimSpace(*method)
	if m == "" {
		return nil
	}
	return &m
}
