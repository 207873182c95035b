package prob

import "gonum.org/v1/gonum/floats/scalar"

// Normative tolerances. Sum-to-one and independence checks use absolute
// comparisons so the thresholds read directly as probability mass.
const (
	// SumTolerance bounds how far a partition or distribution may sum from
	// 1.0 before it is rejected as incomplete or overlapping.
	SumTolerance = 1e-6

	// DefaultIndependenceTolerance is the threshold AreIndependent uses when
	// comparing the joint probability against the product of marginals.
	DefaultIndependenceTolerance = 1e-6

	// bayesOverflowTolerance is how far above 1.0 a posterior may land before
	// it is treated as contradictory rather than floating-point noise.
	bayesOverflowTolerance = 1e-4
)

// approxEqual is the single tolerant comparison used by every check in the
// package, so the tolerance semantics cannot drift between call sites.
func approxEqual(a, b, tolerance float64) bool {
	return scalar.EqualWithinAbs(a, b, tolerance)
}

// sumsToOne reports whether a probability mass total is 1.0 within
// SumTolerance.
func sumsToOne(sum float64) bool {
	return approxEqual(sum, 1.0, SumTolerance)
}
