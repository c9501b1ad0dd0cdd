// Package scope computes the action scope of a node: for a decision of a
// given polarity, the bounded quantity the node itself may move and the
// bound of each neighbor that survives the filter pipeline.
//
// Bounds:
//
//	            | neighbor bound                  | self bound
//	 -----------+---------------------------------+-------------------------------
//	 Supply     | capacity − bikes (room)         | floor(bikes × (1 − low))
//	 Demand     | floor(bikes × high) (releasable)| capacity − bikes (room)
//
// low and high are the scope ratios, both in [0,1]; anything else is a
// configuration error raised by New.
//
// Scope never mutates nodes and is idempotent: two calls with no state change
// in between return equal maps.
package scope
