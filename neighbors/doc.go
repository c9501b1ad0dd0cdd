// Package neighbors resolves, per node, the list of reachable neighbors in
// ascending distance order and memoizes it.
//
// Resolution of node i:
//
//  1. Read distance row i from the matrix.Distances accessor.
//  2. Drop entries whose distance is 0 ("no edge / self") or +Inf.
//  3. Stable-sort by distance, so equal distances keep ascending index order.
//  4. Store the result in the cache.
//
// Cache policy:
//
//   - Entries are built lazily on first access and never invalidated.
//     Distances are immutable for the life of a Resolver; there is no Reset.
//     Filter caches reset between episodes, the neighbor cache does not.
//   - Of returns a copy, so callers cannot corrupt cached lists.
//
// Errors:
//
//	– core.ErrInvalidIndex        index outside [0, Size()).
//	– matrix.ErrDimensionMismatch a row whose length is not Size().
//	– matrix.ErrBadDistance       a NaN or negative distance in the row.
//
// Complexity: first call O(N log N) for a row of N entries, later calls O(k)
// for the copy of k neighbors.
//
// Thread safety: none. One Resolver per single-writer strategy instance.
package neighbors
