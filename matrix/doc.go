// Package matrix provides the distance-matrix accessor consumed by the
// neighbor index, together with a dense, row-major reference implementation.
//
// The accessor contract (Distances) is deliberately narrow:
//
//   - Size() is the number of nodes N; valid row indices are [0, N).
//   - Row(i) returns the N distances from node i to every node, ordered by
//     node index. 0 means "no edge / self"; +Inf means "unreachable".
//
// Dense stores an N×N float64 matrix in a flat slice. Rows are returned as
// copies, so callers (and caches built on top of them) never alias the
// backing storage.
//
// Errors:
//
//	– ErrBadShape           negative size or ragged input rows.
//	– ErrDimensionMismatch  a row whose length differs from Size().
//	– ErrBadDistance        NaN or negative distance.
//	– core.ErrInvalidIndex  row or column outside [0, N) (wrapped).
//
// Complexity: At/Set O(1); Row O(N); FromRows O(N²).
package matrix
