// Package trigger decides when and where the rebalancing engine acts.
//
// A tick is a decision tick when (tick+1) is a multiple of the configured
// resolution. At a decision tick every node is inspected in ascending index
// order and flagged:
//
//	occupancy ≥ supply mark  →  core.Supply (offload)
//	occupancy ≤ demand mark  →  core.Demand (request)
//
// Supply is checked first, so a node is never flagged both ways. Both
// operations derive the tick gate on their own; callers may use either.
package trigger
