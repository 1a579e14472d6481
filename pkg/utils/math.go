// pkg/utils/math.go
package utils

// Lerp interpolates between a and b with t clamped to [0, 1],
// so the result never passes b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// MoveTowards moves current toward target by at most maxDelta, never overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	diff := target - current
	if diff <= maxDelta && diff >= -maxDelta {
		return target
	}
	if diff > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
