// Package cast implements the Llama runtime's numeric and character
// conversions.
//
// The checked conversions report values with no representation in the target
// type instead of silently mangling them. The Wrap variants reproduce the
// raw C casts bit-for-bit for the ABI surface in runtime/libllama, where
// generated code expects native conversion behavior.
package cast

import (
	"math"

	"fortio.org/safecast"
)

// FloatOfInt converts n to a float. Every int32 is exactly representable
// as a float64, so this conversion is total.
func FloatOfInt(n int32) float64 {
	return float64(n)
}

// IntOfFloat truncates d toward zero. Values outside the int32 range,
// NaN included, are an error.
func IntOfFloat(d float64) (int32, error) {
	return safecast.Truncate[int32](d)
}

// Round rounds d to the nearest integer, ties away from zero. Values
// outside the int32 range, NaN included, are an error.
func Round(d float64) (int32, error) {
	return safecast.Round[int32](d)
}

// IntOfChar returns the codepoint of c.
func IntOfChar(c byte) int32 {
	return int32(c)
}

// CharOfInt converts a codepoint back to a character. Values outside
// 0..255 are an error.
func CharOfInt(n int32) (byte, error) {
	return safecast.Conv[byte](n)
}

// IntOfFloatWrap truncates d toward zero with native conversion semantics:
// out-of-range values produce an unspecified int32 instead of an error.
func IntOfFloatWrap(d float64) int32 {
	return int32(math.Trunc(d))
}

// RoundWrap rounds d half away from zero with native conversion semantics.
func RoundWrap(d float64) int32 {
	return int32(math.Round(d))
}

// CharOfIntWrap truncates n to its low byte.
func CharOfIntWrap(n int32) byte {
	return byte(n)
}
