// Package services provides domain services that compute values across many
// aggregates and do not naturally belong to a single aggregate root.
//
// The package includes:
//   - MenuSectioner: groups a sorted menu into display sections with anchors
//   - SalesAggregator: derives revenue figures from paid orders
//
// Both services are stateless and recompute their results on every call.
package services
