// Package core defines the shared vocabulary of the rebalancing engine:
// capacity-bounded Nodes, the index-addressed Network that borrows them,
// DistanceEdge pairs produced by the neighbor index, the Polarity of a
// decision and the CostMode that routes extra-cost charges.
//
// What lives here:
//
//   - Node: a station-like entity with a fixed Capacity, a mutable Bikes
//     counter (0 ≤ Bikes ≤ Capacity) and an append-only ExtraCost.
//   - Network: a read-mostly view over []*Node where nodes[i].Index == i.
//   - DistanceEdge: (Neighbor, Distance) pair; Distance 0 means "no edge".
//   - Polarity: Supply (node has excess) or Demand (node has a deficit).
//   - CostMode: Source, Target or Neighbor; selects who pays for overflow moves.
//
// Error taxonomy (sentinel, match with errors.Is):
//
//	– ErrConfiguration       unknown filter kind, missing key, ratio outside [0,1].
//	– ErrInvalidIndex        node or neighbor index outside the known range.
//	– ErrInvariantViolation  a mutation would push Bikes outside [0, Capacity]
//	                         or make ExtraCost decrease. Never clamped.
//
// Ownership & concurrency:
//
//   - Nodes belong to the simulation loop. Every package in this module only
//     borrows them for the duration of a call and mutates Bikes/ExtraCost in
//     place through Receive and ChargeExtraCost.
//   - Nothing in core is synchronized. A host that runs several goroutines must
//     serialize access to one Network (single writer) or give each worker its
//     own copy.
//
// Example:
//
//	nodes := []*core.Node{
//	    {Index: 0, Capacity: 20, Bikes: 18},
//	    {Index: 1, Capacity: 20, Bikes: 2},
//	}
//	net, err := core.NewNetwork(nodes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, _ := net.Node(0)
//	fmt.Println(n.OccupancyRatio()) // 0.9
package core
