// Package overflow spreads the part of a transfer that its target could not
// accept over the target's neighbors.
//
// Neighbors are visited in ascending-distance order. Each one accepts as
// much as its free room allows, the accepted units are added to its bikes,
// and the move is charged an extra cost computed by a CostFunc from the
// accepted units, the neighbor distance and its 0-based rank. The
// core.CostMode decides who pays: the issuing node, the target, or the
// receiving neighbor.
//
// Distribution stops as soon as everything is placed. When the neighbors are
// exhausted first, the rest is dropped; that is a normal outcome reported in
// Result.Remainder, not an error.
package overflow
