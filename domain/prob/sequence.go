package prob

import (
	"strconv"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"agriprob/domain/core"
)

// TotalProbability computes P(A) = sum of P(Bi) x P(A|Bi) over a partition
// of the sample space.
//
// The partition probabilities must sum to 1.0 within SumTolerance; anything
// else means the partition is not exhaustive and mutually exclusive. The
// result needs no range check: it is a convex combination of values in [0,1].
//
// Example: soil types 30% clay / 50% loam / 20% sandy with high-yield rates
// 60% / 80% / 50% give an overall high-yield probability of 0.68.
func TotalProbability(partitions, conditionals []float64) (float64, error) {
	if len(partitions) != len(conditionals) {
		return 0, core.NewLengthMismatchError(
			"partitions", len(partitions), "conditional probabilities", len(conditionals))
	}
	for i, p := range partitions {
		if err := checkProbability(probName("partition probability", i), p); err != nil {
			return 0, err
		}
	}
	for i, p := range conditionals {
		if err := checkProbability(probName("conditional probability", i), p); err != nil {
			return 0, err
		}
	}

	sum, err := stats.Sum(partitions)
	if err != nil {
		return 0, core.NewInvalidArgumentError("partition must not be empty")
	}
	if !sumsToOne(sum) {
		return 0, core.NewInvalidArgumentError("partitions must sum to 1.0, got %.6f", sum)
	}

	return floats.Dot(partitions, conditionals), nil
}

// AreIndependent reports whether two events are independent, i.e. whether
// P(A and B) equals P(A) x P(B) within DefaultIndependenceTolerance.
func AreIndependent(pA, pB, pAandB float64) (bool, error) {
	return AreIndependentWithin(pA, pB, pAandB, DefaultIndependenceTolerance)
}

// AreIndependentWithin is AreIndependent with an explicit tolerance, for
// callers comparing empirically derived probabilities.
func AreIndependentWithin(pA, pB, pAandB, tolerance float64) (bool, error) {
	if err := checkProbability("P(A)", pA); err != nil {
		return false, err
	}
	if err := checkProbability("P(B)", pB); err != nil {
		return false, err
	}
	if err := checkProbability("P(A and B)", pAandB); err != nil {
		return false, err
	}
	return approxEqual(pAandB, pA*pB, tolerance), nil
}

// ExpectedValue computes E[X] = sum of outcome_i x probability_i.
//
// Outcomes are unconstrained reals; a farming decision may well have negative
// outcomes (losses). The probabilities form a complete distribution and must
// sum to 1.0 within SumTolerance.
func ExpectedValue(outcomes, probabilities []float64) (float64, error) {
	if len(outcomes) != len(probabilities) {
		return 0, core.NewLengthMismatchError(
			"outcomes", len(outcomes), "probabilities", len(probabilities))
	}
	for i, p := range probabilities {
		if err := checkProbability(probName("probability", i), p); err != nil {
			return 0, err
		}
	}

	sum, err := stats.Sum(probabilities)
	if err != nil {
		return 0, core.NewInvalidArgumentError("probabilities must not be empty")
	}
	if !sumsToOne(sum) {
		return 0, core.NewInvalidArgumentError("probabilities must sum to 1.0, got %.6f", sum)
	}

	return floats.Dot(outcomes, probabilities), nil
}

// Normalize scales non-negative values so they sum to 1.0, converting raw
// counts or frequencies into a probability distribution. Order and length
// are preserved.
func Normalize(values []float64) ([]float64, error) {
	for i, v := range values {
		if v < 0 {
			return nil, core.NewInvalidArgumentError("value %d must be non-negative, got %g", i, v)
		}
	}

	total, err := stats.Sum(values)
	if err != nil || total == 0 {
		return nil, core.NewInvalidArgumentError("cannot normalize: sum of values is 0")
	}

	normalized := make([]float64, len(values))
	for i, v := range values {
		normalized[i] = v / total
	}
	return normalized, nil
}

// AtLeastOne computes the probability that at least one of several
// independent events occurs, via the complement rule:
// P(at least one) = 1 - product of (1 - p_i).
//
// The result is guaranteed to lie in [0,1] for valid inputs, so there is no
// failure path beyond input validation.
func AtLeastOne(probabilities []float64) (float64, error) {
	complements := make([]float64, len(probabilities))
	for i, p := range probabilities {
		if err := checkProbability(probName("probability", i), p); err != nil {
			return 0, err
		}
		complements[i] = 1 - p
	}
	return 1 - floats.Prod(complements), nil
}

func probName(kind string, index int) string {
	return kind + " " + strconv.Itoa(index)
}
