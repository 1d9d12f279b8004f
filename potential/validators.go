package potential

import "math"

// finitePositive reports whether v is a usable physical scale: strictly
// positive and finite. All constructors funnel through this predicate so the
// validation policy stays uniform across potentials.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
