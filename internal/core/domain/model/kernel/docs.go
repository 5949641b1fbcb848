// Package kernel provides the shared value objects of the ordering engine.
//
// The package includes:
//   - UUID: identifier for tables, menu items, orders, line items and actors
//   - Money: a non-negative-agnostic decimal amount held at two-decimal precision
//
// Both are immutable and safe for concurrent use. Their zero values are either
// invalid (UUID) or a meaningful zero (Money).
package kernel
