// Package lmath implements the Llama runtime's math operations as thin
// passthroughs over the platform math library.
//
// Unlike console I/O, nothing here is checked: square root of a negative
// number, logarithm of zero, overflowing exponentials all flow through
// silently as NaN or an infinity. That asymmetry is the runtime's contract.
package lmath

import "math"

// Abs returns the absolute value of n. Abs(math.MinInt32) wraps to itself,
// matching native signed arithmetic.
func Abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Fabs returns the absolute value of d.
func Fabs(d float64) float64 {
	return math.Abs(d)
}

// Sqrt returns the square root of d.
func Sqrt(d float64) float64 {
	return math.Sqrt(d)
}

// Sin returns the sine of d (radians).
func Sin(d float64) float64 {
	return math.Sin(d)
}

// Cos returns the cosine of d (radians).
func Cos(d float64) float64 {
	return math.Cos(d)
}

// Tan returns the tangent of d (radians).
func Tan(d float64) float64 {
	return math.Tan(d)
}

// Atan returns the arctangent of d in radians.
func Atan(d float64) float64 {
	return math.Atan(d)
}

// Exp returns e**d.
func Exp(d float64) float64 {
	return math.Exp(d)
}

// Ln returns the natural logarithm of d.
func Ln(d float64) float64 {
	return math.Log(d)
}

// Pi returns the circle constant.
func Pi() float64 {
	return math.Pi
}
