package lmath_test

import (
	"math"
	"testing"

	"llama/runtime/lmath"
)

func TestAbs(t *testing.T) {
	for _, n := range []int32{0, 1, 42, -1, -42, math.MaxInt32} {
		want := n
		if n < 0 {
			want = -n
		}
		if got := lmath.Abs(n); got != want {
			t.Fatalf("Abs(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestFabs(t *testing.T) {
	if lmath.Fabs(-42.1) != 42.1 || lmath.Fabs(42.1) != 42.1 {
		t.Fatal("Fabs should drop the sign")
	}
	if lmath.Fabs(-0.0) != lmath.Fabs(0.0) {
		t.Fatal("Fabs(-0.0) must equal Fabs(0.0)")
	}
	// Idempotence.
	for _, d := range []float64{-3.5, 0, 7.25, math.Inf(-1)} {
		if lmath.Fabs(lmath.Fabs(d)) != lmath.Fabs(d) {
			t.Fatalf("Fabs not idempotent at %v", d)
		}
	}
}

func TestSqrtExactPoints(t *testing.T) {
	if lmath.Sqrt(0) != 0 {
		t.Fatal("Sqrt(0) must be exactly 0")
	}
	if lmath.Sqrt(1) != 1 {
		t.Fatal("Sqrt(1) must be exactly 1")
	}
	if lmath.Sqrt(16) != 4 {
		t.Fatal("Sqrt(16) must be exactly 4")
	}
}

func TestSqrtOfSquare(t *testing.T) {
	for _, d := range []float64{0.5, 1.75, 3, 1234.5} {
		got := lmath.Sqrt(d * d)
		if math.Abs(got-d) > 1e-9*d {
			t.Fatalf("Sqrt(%v²) = %v, want ~%v", d, got, d)
		}
	}
}

func TestDomainErrorsAreSilent(t *testing.T) {
	if !math.IsNaN(lmath.Sqrt(-1)) {
		t.Fatal("Sqrt(-1) should be NaN, not an error")
	}
	if !math.IsInf(lmath.Ln(0), -1) {
		t.Fatal("Ln(0) should be -Inf")
	}
	if !math.IsNaN(lmath.Ln(-1)) {
		t.Fatal("Ln(-1) should be NaN")
	}
}

func TestTrigIdentities(t *testing.T) {
	x := lmath.Pi() / 4
	if math.Abs(lmath.Sin(x)-lmath.Cos(x)) > 1e-12 {
		t.Fatal("sin(pi/4) should equal cos(pi/4)")
	}
	if math.Abs(lmath.Tan(x)-1) > 1e-12 {
		t.Fatal("tan(pi/4) should be 1")
	}
	if math.Abs(lmath.Atan(1)-x) > 1e-12 {
		t.Fatal("atan(1) should be pi/4")
	}
}

func TestExpLnRoundTrip(t *testing.T) {
	for _, d := range []float64{0.1, 1, 2.5, 10} {
		if math.Abs(lmath.Ln(lmath.Exp(d))-d) > 1e-9 {
			t.Fatalf("ln(exp(%v)) should be ~%v", d, d)
		}
	}
}
