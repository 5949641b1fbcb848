// Package order provides the Order aggregate root of the ordering engine: an order
// placed against one dining table together with the line items it owns.
//
// The package includes:
//   - Order: the aggregate root owning line items, total, status and assistance flag
//   - Item: a line item snapshotting the menu item's price at the time it was added
//   - Status: the fulfilment pipeline pending -> preparing -> served -> completed -> paid,
//     plus the out-of-pipeline terminal cancelled
//   - Selection: a validated (menu item, quantity) pair used to build orders
//
// Key business rules:
//   - An order is created with at least one positive-quantity selection of an available item
//   - The total is derived from line items and rounded to two decimals; it has no setter
//   - Any pipeline status may be set, including moving backwards
//   - paid_at and payment_method exist only while the order is paid
//   - An order is active unless it is paid or cancelled
package order
