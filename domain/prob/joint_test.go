package prob

import (
	"math"
	"testing"

	"agriprob/domain/core"
)

func TestMultiplicationRule_Independent(t *testing.T) {
	// Frost in two separate fields
	p, err := MultiplicationRule(Independent{PA: 0.15, PB: 0.15})
	if err != nil {
		t.Fatalf("MultiplicationRule failed: %v", err)
	}
	if math.Abs(p-0.0225) > 1e-12 {
		t.Errorf("Expected 0.0225, got %g", p)
	}
}

func TestMultiplicationRule_Dependent(t *testing.T) {
	// Disease appearing and then spreading
	p, err := MultiplicationRule(Dependent{PA: 0.30, PBgivenA: 0.70})
	if err != nil {
		t.Fatalf("MultiplicationRule failed: %v", err)
	}
	if math.Abs(p-0.21) > 1e-12 {
		t.Errorf("Expected 0.21, got %g", p)
	}
}

func TestMultiplicationRule_InvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		j    Joint
	}{
		{"independent PA out of range", Independent{PA: 1.5, PB: 0.5}},
		{"independent PB out of range", Independent{PA: 0.5, PB: -0.1}},
		{"dependent PA out of range", Dependent{PA: -0.2, PBgivenA: 0.5}},
		{"dependent conditional out of range", Dependent{PA: 0.5, PBgivenA: 2}},
		{"nil joint", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MultiplicationRule(tc.j); !core.IsInvalidArgument(err) {
				t.Errorf("Expected invalid argument, got %v", err)
			}
		})
	}
}
