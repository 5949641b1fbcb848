// Package catalog holds the static reference data orders are built from:
// dining tables and menu items.
//
// Key business rules:
//   - Table codes are unique, trimmed and upper-cased
//   - Menu item prices are non-negative and held at two decimals
//   - A blank category means "uncategorized"
//   - Only available menu items may be ordered
//   - Editing a menu item never changes line items already placed
package catalog
