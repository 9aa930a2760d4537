package vector

import "math/rand/v2"

// Random returns a vector with integer components drawn uniformly from
// [0, high).
func Random(high int) Vector2D {
	return RandomRange(0, high)
}

// RandomRange returns a vector with integer components drawn independently
// and uniformly from [low, high). It panics if high <= low.
func RandomRange(low, high int) Vector2D {
	return RandomFrom(nil, low, high)
}

// RandomFrom is RandomRange drawing from r. A nil r uses the global source.
func RandomFrom(r *rand.Rand, low, high int) Vector2D {
	if high <= low {
		panic("vector: invalid random range")
	}
	// The span of any non-empty int range fits in a uint64, even when
	// high-low overflows int.
	span := uint64(high) - uint64(low)
	draw := rand.Uint64N
	if r != nil {
		draw = r.Uint64N
	}
	return Vector2D{
		x: float64(low + int(draw(span))),
		y: float64(low + int(draw(span))),
	}
}
