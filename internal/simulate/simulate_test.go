package simulate

import (
	"math/rand"
	"testing"
)

func TestOutcomeDeterministicUnderSeed(t *testing.T) {
	const seed = 42

	sim := New(0.8, 500, rand.New(rand.NewSource(seed)))

	// An identical source must reproduce the exact draw sequence.
	want := rand.New(rand.NewSource(seed))

	for i := 0; i < 100; i++ {
		wantPassed := want.Float64() < 0.8

		passed, status := sim.Outcome(200)
		if passed != wantPassed {
			t.Fatalf("draw %d: passed = %v, want %v", i, passed, wantPassed)
		}

		wantStatus := 200
		if !wantPassed {
			wantStatus = 500
		}
		if status != wantStatus {
			t.Fatalf("draw %d: status = %d, want %d", i, status, wantStatus)
		}
	}
}

func TestOutcomeProbabilityExtremes(t *testing.T) {
	tests := []struct {
		name       string
		rate       float64
		wantPassed bool
		wantStatus int
	}{
		{name: "always pass", rate: 1.0, wantPassed: true, wantStatus: 200},
		{name: "always fail", rate: 0.0, wantPassed: false, wantStatus: 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := New(tt.rate, 503, rand.New(rand.NewSource(1)))
			for i := 0; i < 50; i++ {
				passed, status := sim.Outcome(200)
				if passed != tt.wantPassed {
					t.Fatalf("draw %d: passed = %v, want %v", i, passed, tt.wantPassed)
				}
				if status != tt.wantStatus {
					t.Fatalf("draw %d: status = %d, want %d", i, status, tt.wantStatus)
				}
			}
		})
	}
}
