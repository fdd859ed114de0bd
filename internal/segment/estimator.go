// internal/segment/estimator.go
package segment

import "math/rand"

// Estimator produces the placeholder audience size shown next to a segment.
// The number is NOT derived from the rules: the dashboard never evaluates a
// segment against customer rows, it scales a random value against the live
// customer count so the figure at least looks plausible. The rand source is
// injectable so tests can pin the output.
type Estimator struct {
	Rand *rand.Rand
}

// DefaultBase stands in when the store reports zero customers.
const DefaultBase = 10000

// Estimate returns a fake audience size in
// [ceil(base*0.1), ceil(base*0.1)+base*0.8).
func (e *Estimator) Estimate(customerCount int) int {
	base := customerCount
	if base <= 0 {
		base = DefaultBase
	}
	low := (base + 9) / 10 // ceil(base * 0.1)
	span := base * 8 / 10
	if span <= 0 {
		span = 1
	}
	return e.Rand.Intn(span) + low
}
