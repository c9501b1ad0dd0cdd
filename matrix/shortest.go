// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn a direct-link matrix (0 = no link) into travel distances with
//     Floyd–Warshall, so stations reachable only through others still get
//     a neighbor entry.
//
// Contract:
//   - Input is left untouched; the result has 0 on the diagonal and +Inf
//     for unreachable pairs (the neighbor index skips both).

package matrix

import (
	"fmt"
	"math"
)

// ShortestPaths returns the all-pairs shortest travel distances over links.
//
// Implementation:
//   - Stage 1: copy links; off-diagonal 0 becomes +Inf, the diagonal 0.
//   - Stage 2: relax in fixed k → i → j order, strict improvements only.
//
// Complexity: O(n³) time, O(n²) memory for the copy.
func ShortestPaths(links *Dense) (*Dense, error) {
	if links == nil {
		return nil, fmt.Errorf("ShortestPaths: nil matrix: %w", ErrBadShape)
	}
	n := links.n
	out := &Dense{n: n, data: make([]float64, len(links.data))}

	// 1) Initialise.
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := links.data[i*n+j]
			switch {
			case i == j:
				v = 0
			case v == 0:
				v = math.Inf(1)
			}
			out.data[i*n+j] = v
		}
	}

	// 2) Relax.
	var ik, kj, cand float64
	data := out.data
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = data[k*n+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand = ik + kj; cand < data[i*n+j] {
					data[i*n+j] = cand
				}
			}
		}
	}

	return out, nil
}
