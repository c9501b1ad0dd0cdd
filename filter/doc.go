// Package filter implements the action-scope filter pipeline: an ordered
// chain of interchangeable strategies that narrow a candidate map
// (neighbor index → transferable bound) down to the partners a decision
// should consider.
//
// Contract shared by every variant:
//
//   - Apply(index, polarity, in) returns min(Num, len(in)) entries.
//   - Every returned key exists in in, with the same value. Values are
//     never invented or modified; only the key set narrows.
//   - in is never mutated.
//   - Reset clears internal caches and is a no-op where none exist.
//
// Variants (closed set, selected by Kind):
//
//	– KindDistance      ("distance")     keep the nearest Num candidates in
//	                                     the neighbor index's ascending-distance order.
//	– KindRequirements  ("requirements") keep the Num largest values;
//	                                     equal values prefer the higher index.
//	– KindTripsWindow   ("trip_window")  sum the "trip_requirement" history
//	                                     feature over the last Windows frames; Supply keeps
//	                                     the lowest sums, Demand the highest.
//
// Trip-window caching:
//
//   - Every frame except the most recent one is cached once read; recorded
//     history is immutable.
//   - The most recent frame is re-read on every Apply because the simulation
//     may still be writing to it.
//   - Reset drops the whole cache.
//
// Pipeline runs stages strictly in configured order, each consuming the
// previous stage's output (cumulative narrowing). The first stage error
// aborts the run and is returned wrapped with the stage position.
//
// Construction goes through New(Spec, Deps), an exhaustive switch over Kind.
// There is no runtime registry: adding a variant means adding a Kind and a
// case. Invalid specs fail with core.ErrConfiguration at construction time.
//
// Thread safety: none; TripsWindow owns a mutable cache.
package filter
