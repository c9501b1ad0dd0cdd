// Package strategy wires the rebalancing components behind the surface a
// tick-driven simulation calls:
//
//   - IsDecisionTick / NodesNeedingDecision: water-mark triggering;
//   - ActionScope: bounded, filtered candidate partners for one node;
//   - Distribute: overflow placement with extra-cost attribution;
//   - TransferTime: one Gaussian transfer-time draw, in ticks;
//   - Reset: clears filter caches between episodes;
//   - Neighbors: the ranked neighbor list overflow walks.
//
// A Strategy is single-writer: the simulation must serialize every call.
// The neighbor cache lives for the whole instance; Reset never clears it.
//
// Logging goes through a logr.Logger (WithLogger), metrics through a
// prometheus.Registerer (WithRegisterer). Both default to no-ops.
package strategy
