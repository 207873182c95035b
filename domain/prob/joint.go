package prob

import "agriprob/domain/core"

// Joint describes the inputs to the multiplication rule. The two variants
// make the dependence assumption explicit at the call site instead of hiding
// it behind an optional parameter.
type Joint interface {
	joint()
}

// Independent models two events where neither affects the other, e.g. frost
// in two separate fields. P(A and B) = P(A) x P(B).
type Independent struct {
	PA float64
	PB float64
}

// Dependent models two events where B's probability is conditioned on A,
// e.g. a disease appearing and then spreading. P(A and B) = P(A) x P(B|A).
type Dependent struct {
	PA       float64
	PBgivenA float64
}

func (Independent) joint() {}
func (Dependent) joint()   {}

// MultiplicationRule computes P(A and B) for the given variant.
func MultiplicationRule(j Joint) (float64, error) {
	switch v := j.(type) {
	case Independent:
		if err := checkProbability("P(A)", v.PA); err != nil {
			return 0, err
		}
		if err := checkProbability("P(B)", v.PB); err != nil {
			return 0, err
		}
		return v.PA * v.PB, nil
	case Dependent:
		if err := checkProbability("P(A)", v.PA); err != nil {
			return 0, err
		}
		if err := checkProbability("P(B|A)", v.PBgivenA); err != nil {
			return 0, err
		}
		return v.PA * v.PBgivenA, nil
	default:
		return 0, core.NewInvalidArgumentError("unsupported joint specification %T", j)
	}
}
