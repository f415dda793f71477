package calc

import (
	"math"
	"runtime"
)

const (
	sqrtTolerance     = 1e-4
	sqrtMaxIterations = 100_000
	sqrtYieldEvery    = 5_000
)

// yield is runtime.Gosched; tests swap it to count yields.
var yield = runtime.Gosched

// Sqrt approximates the square root of v with Newton's method, starting from v
// itself. It stops once |g*g - v| <= 1e-4 or after 100,000 iterations, and
// yields the processor every 5,000 iterations.
//
// Not reachable from the menu.
func Sqrt(v float64) float64 {
	g, _ := newtonSqrt(v)
	return g
}

// newtonSqrt runs the iteration behind Sqrt and also reports how many steps it took.
func newtonSqrt(v float64) (float64, int) {
	g := v
	k := 0
	for math.Abs(g*g-v) > sqrtTolerance && k < sqrtMaxIterations {
		g = (g + v/g) / 2
		k++
		if k%sqrtYieldEvery == 0 {
			yield()
		}
	}
	return g, k
}
