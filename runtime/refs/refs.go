// Package refs implements the Llama runtime's reference-mutation helpers.
//
// Both operations mutate a caller-owned integer cell in place. There is no
// overflow detection: int32 arithmetic wraps, matching the native behavior
// Llama programs compile against. The cell is never allocated or retained
// by the runtime.
package refs

// Incr increments the cell by one.
func Incr(n *int32) {
	*n++
}

// Decr decrements the cell by one.
func Decr(n *int32) {
	*n--
}
