package sampler

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// Sampler draws one value from a distribution with the given mean and
// standard deviation.
type Sampler interface {
	Sample(mean, std float64) float64
}

// Gaussian is a seeded normal sampler. Every call draws a fresh value.
type Gaussian struct {
	seed uint64
	src  *rand.PCG
}

// NewGaussian returns a Gaussian seeded with seed (0 means DefaultSeed).
func NewGaussian(seed uint64) *Gaussian {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Gaussian{seed: seed, src: rand.NewPCG(seed, mix(seed, 0))}
}

// Seed returns the effective seed.
func (g *Gaussian) Seed() uint64 { return g.seed }

// Sample implements Sampler. std == 0 returns mean; a negative std is
// treated as its absolute value.
// Complexity: O(1).
func (g *Gaussian) Sample(mean, std float64) float64 {
	if std < 0 {
		std = -std
	}
	if std == 0 {
		return mean
	}
	n := distuv.Normal{Mu: mean, Sigma: std, Src: g.src}

	return n.Rand()
}

// Derive returns an independent Gaussian for stream, decorrelated from g's
// seed with a SplitMix64 mix.
func (g *Gaussian) Derive(stream uint64) *Gaussian {
	return NewGaussian(mix(g.seed, stream+1))
}

// Func adapts a plain function to Sampler.
type Func func(mean, std float64) float64

// Sample implements Sampler.
func (f Func) Sample(mean, std float64) float64 { return f(mean, std) }

// mix is the SplitMix64 finalizer over parent ^ stream.
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return DefaultSeed
	}

	return x
}
