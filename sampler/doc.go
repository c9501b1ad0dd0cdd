// Package sampler provides the injectable random source behind transfer-time
// draws.
//
// Sampler is a one-method interface so tests can substitute a fixed
// sequence. The default Gaussian draws from gonum's distuv.Normal over a
// math/rand/v2 PCG stream and is fully determined by its seed:
//
//   - seed == 0 uses DefaultSeed;
//   - Derive creates an independent stream for a worker or a restart.
//
// A Gaussian is not safe for concurrent use; give each goroutine its own.
package sampler
