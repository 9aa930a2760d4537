package vector

import "math"

// Tolerance bounds how far two components may differ and still compare
// equal: |a-b| <= Abs + Rel*|b|.
type Tolerance struct {
	Rel float64
	Abs float64
}

var DefaultTolerance = Tolerance{Rel: 1e-5, Abs: 1e-8}

// Close reports whether a is within t of b. NaN is never close to anything;
// infinities are close only to themselves.
func (t Tolerance) Close(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= t.Abs+t.Rel*math.Abs(b)
}
