package cast_test

import (
	"math"
	"testing"

	"llama/runtime/cast"
)

func TestIntFloatRoundTrip(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 42, -12345, math.MaxInt32, math.MinInt32} {
		got, err := cast.IntOfFloat(cast.FloatOfInt(n))
		if err != nil {
			t.Fatalf("round trip of %d: %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip of %d yielded %d", n, got)
		}
	}
}

func TestIntOfFloatTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int32
	}{
		{2.9, 2},
		{-2.9, -2},
		{0.5, 0},
		{-0.5, 0},
		{3.0, 3},
	}
	for _, tc := range cases {
		got, err := cast.IntOfFloat(tc.in)
		if err != nil {
			t.Fatalf("IntOfFloat(%v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("IntOfFloat(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIntOfFloatOutOfRange(t *testing.T) {
	for _, d := range []float64{1e10, -1e10, math.Inf(1), math.NaN()} {
		if _, err := cast.IntOfFloat(d); err == nil {
			t.Fatalf("IntOfFloat(%v) should fail", d)
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int32
	}{
		{2.5, 3},
		{-2.5, -3},
		{2.4, 2},
		{-2.4, -2},
		{0, 0},
	}
	for _, tc := range cases {
		got, err := cast.Round(tc.in)
		if err != nil {
			t.Fatalf("Round(%v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Round(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCharRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		back, err := cast.CharOfInt(cast.IntOfChar(c))
		if err != nil {
			t.Fatalf("round trip of %d: %v", i, err)
		}
		if back != c {
			t.Fatalf("round trip of %d yielded %d", c, back)
		}
	}
}

func TestCharOfIntOutOfRange(t *testing.T) {
	for _, n := range []int32{-1, 256, 1000} {
		if _, err := cast.CharOfInt(n); err == nil {
			t.Fatalf("CharOfInt(%d) should fail", n)
		}
	}
}

func TestWrapVariants(t *testing.T) {
	if cast.IntOfFloatWrap(-7.9) != -7 {
		t.Fatal("IntOfFloatWrap should truncate toward zero")
	}
	if cast.RoundWrap(1.5) != 2 || cast.RoundWrap(-1.5) != -2 {
		t.Fatal("RoundWrap should round ties away from zero")
	}
	if cast.CharOfIntWrap(0x1FF) != 0xFF {
		t.Fatal("CharOfIntWrap should keep the low byte")
	}
}
