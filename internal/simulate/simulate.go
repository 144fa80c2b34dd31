// Package simulate draws the pass/fail outcome of a flaky test.
package simulate

import "math/rand"

// Simulator produces pass/fail outcomes with a fixed success probability.
// The random source is injected so a seeded run is fully deterministic.
type Simulator struct {
	successRate float64
	failStatus  int
	rng         *rand.Rand
}

// New creates a Simulator. successRate is the probability of a pass in
// [0,1]; failStatus is the status code recorded for a simulated failure.
func New(successRate float64, failStatus int, rng *rand.Rand) *Simulator {
	return &Simulator{
		successRate: successRate,
		failStatus:  failStatus,
		rng:         rng,
	}
}

// Outcome draws one pass/fail result. A pass reports the expected status,
// a failure reports the configured failure sentinel.
func (s *Simulator) Outcome(expectedStatus int) (passed bool, status int) {
	passed = s.rng.Float64() < s.successRate
	if passed {
		return true, expectedStatus
	}
	return false, s.failStatus
}
