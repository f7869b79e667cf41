package refs_test

import (
	"math"
	"testing"

	"llama/runtime/refs"
)

func TestIncrDecr(t *testing.T) {
	var n int32
	refs.Incr(&n)
	if n != 1 {
		t.Fatalf("expected 1 after Incr, got %d", n)
	}
	refs.Decr(&n)
	refs.Decr(&n)
	if n != -1 {
		t.Fatalf("expected -1, got %d", n)
	}
}

func TestDecrIncrIdentity(t *testing.T) {
	for _, start := range []int32{0, -7, 1000, math.MaxInt32, math.MinInt32} {
		n := start
		refs.Incr(&n)
		refs.Decr(&n)
		if n != start {
			t.Fatalf("Incr then Decr changed %d to %d", start, n)
		}
		refs.Decr(&n)
		refs.Incr(&n)
		if n != start {
			t.Fatalf("Decr then Incr changed %d to %d", start, n)
		}
	}
}

func TestWrapAround(t *testing.T) {
	n := int32(math.MaxInt32)
	refs.Incr(&n)
	if n != math.MinInt32 {
		t.Fatalf("expected wrap to MinInt32, got %d", n)
	}
	refs.Decr(&n)
	if n != math.MaxInt32 {
		t.Fatalf("expected wrap back to MaxInt32, got %d", n)
	}
}
