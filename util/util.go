package util

// Clamp limits v to [min, max].
func Clamp(v float64, min float64, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates linearly from a to b by t in [0,1].
func Lerp(a float64, b float64, t float64) float64 {
	return a + (b-a)*t
}
