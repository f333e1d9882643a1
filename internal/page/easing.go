package page

import "math"

// EaseOut decelerates towards the end: f(t) = 1 - (1-t)³, t clamped to [0,1].
func EaseOut(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
