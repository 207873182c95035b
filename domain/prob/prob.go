// Package prob implements the elementary probability rules used throughout
// the agricultural examples: basic probability, the addition and
// multiplication rules, complements, conditional probability, Bayes' theorem,
// the law of total probability, independence testing, expected value,
// normalization, and the union of independent events.
//
// Every function is pure and stateless: it validates its inputs, computes a
// closed-form result, and returns. All failure paths return errors matching
// core.ErrInvalidArgument.
package prob

import (
	"agriprob/domain/core"
)

// checkProbability validates a single probability-typed input. The closed
// interval is intentional: 0 and 1 are valid probabilities.
func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return core.NewRangeError(name, p)
	}
	return nil
}

// FromCounts computes the basic probability P(A) = favorable / total.
//
// Example: 85 germinated seeds out of 100 planted gives P(germination) = 0.85.
func FromCounts(favorable, total float64) (float64, error) {
	if total <= 0 {
		return 0, core.NewInvalidArgumentError("total outcomes must be positive, got %g", total)
	}
	if favorable < 0 {
		return 0, core.NewInvalidArgumentError("favorable outcomes cannot be negative, got %g", favorable)
	}
	if favorable > total {
		return 0, core.NewInvalidArgumentError(
			"favorable outcomes (%g) cannot exceed total outcomes (%g)", favorable, total)
	}
	return favorable / total, nil
}

// AdditionRule computes P(A or B) = P(A) + P(B) - P(A and B). For mutually
// exclusive events pass pAandB = 0.
//
// The joint probability can never exceed either marginal, and the union can
// never exceed 1; either condition means the inputs are contradictory.
func AdditionRule(pA, pB, pAandB float64) (float64, error) {
	if err := checkProbability("P(A)", pA); err != nil {
		return 0, err
	}
	if err := checkProbability("P(B)", pB); err != nil {
		return 0, err
	}
	if err := checkProbability("P(A and B)", pAandB); err != nil {
		return 0, err
	}

	if minMarginal := min(pA, pB); pAandB > minMarginal {
		return 0, core.NewInvalidArgumentError(
			"P(A and B) = %g cannot exceed min(P(A), P(B)) = %g", pAandB, minMarginal)
	}

	result := pA + pB - pAandB
	if result > 1 {
		return 0, core.NewInvalidArgumentError("P(A or B) = %.4f exceeds 1.0", result)
	}
	return result, nil
}

// Complement computes P(not A) = 1 - P(A).
func Complement(pA float64) (float64, error) {
	if err := checkProbability("P(A)", pA); err != nil {
		return 0, err
	}
	return 1.0 - pA, nil
}

// Conditional computes P(A|B) = P(A and B) / P(B).
//
// Conditioning on an impossible event (pB = 0) is a domain error, as is a
// joint probability exceeding the probability of the conditioning event.
func Conditional(pAandB, pB float64) (float64, error) {
	if err := checkProbability("P(A and B)", pAandB); err != nil {
		return 0, err
	}
	if err := checkProbability("P(B)", pB); err != nil {
		return 0, err
	}
	if pB == 0 {
		return 0, core.NewInvalidArgumentError("cannot compute P(A|B) when P(B) = 0")
	}
	if pAandB > pB {
		return 0, core.NewInvalidArgumentError(
			"P(A and B) = %g cannot exceed P(B) = %g", pAandB, pB)
	}
	return pAandB / pB, nil
}

// Bayes computes the posterior P(A|B) = P(B|A) x P(A) / P(B).
//
// Results in (1, 1+bayesOverflowTolerance] are capped to 1.0 to absorb
// floating-point drift in the evidence term; anything larger means the
// inputs are contradictory.
func Bayes(pBgivenA, pA, pB float64) (float64, error) {
	if err := checkProbability("P(B|A)", pBgivenA); err != nil {
		return 0, err
	}
	if err := checkProbability("P(A)", pA); err != nil {
		return 0, err
	}
	if err := checkProbability("P(B)", pB); err != nil {
		return 0, err
	}
	if pB == 0 {
		return 0, core.NewInvalidArgumentError("cannot apply Bayes' theorem when P(B) = 0")
	}

	result := pBgivenA * pA / pB
	if result > 1+bayesOverflowTolerance {
		return 0, core.NewInvalidArgumentError("P(A|B) = %.4f exceeds 1.0", result)
	}
	return min(result, 1.0), nil
}
