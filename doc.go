// Package rebalance is the decision-support core of a bike-share
// rebalancing simulation: it tells a tick-driven simulator when to act,
// which stations are out of balance, how much each candidate partner may
// move, and where overflow goes when a partner is full.
//
// What is inside?
//
//	• Triggering: water-mark checks every resolution ticks
//	• Action scope: per-node bounds narrowed by a filter pipeline
//	• Filters: distance, requirements, historical trip window
//	• Overflow: greedy rank-ordered placement with extra-cost attribution
//	• Transfer time: seedable Gaussian draws
//
// Packages, leaf first:
//
//	core/      Node, Network, Polarity, CostMode, sentinel errors
//	matrix/    distance accessor + dense row-major implementation
//	history/   frame-indexed feature store (trip_requirement)
//	neighbors/ cached ascending-distance neighbor lists
//	filter/    Filter contract, the three variants, Pipeline
//	scope/     action-scope bounds
//	trigger/   decision ticks and flagged nodes
//	overflow/  overflow distribution and cost functions
//	sampler/   Gaussian transfer-time sampler
//	config/    YAML options with validation
//	strategy/  the facade a simulation calls, logging and metrics
//
// Quick picture of one Supply decision:
//
//	node 7 (18/20) ──scope──▶ {7:16, 3:12, 9:4}
//	                 partner 3 docks 12, overflow 4 ──▶ neighbors of 3
//
// A runnable day of trips lives in examples/citibike.
//
//	go get github.com/katalvlaran/rebalance
package rebalance
