// Package libllama is the flat runtime catalogue Llama-generated code calls,
// keeping the C library's names, signatures and error policy. Every I/O
// failure is fatal: the failing llama_* function is named on stderr and the
// process terminates with a failure status. Math operations are never
// checked; domain errors flow through silently.
//
// The fatal path runs through an injectable trap so embedders and tests can
// intercept it. Everything else delegates to the runtime/console, lmath,
// refs, cast and strbuf packages.
package libllama

import (
	"fmt"
	"os"

	"llama/runtime/cast"
	"llama/runtime/console"
	"llama/runtime/lmath"
	"llama/runtime/refs"
	"llama/runtime/strbuf"
)

// Llama primitive types as generated code sees them.
type (
	Int   = int32
	Char  = byte
	Float = float64
)

// Trap handles a fatal runtime failure. A trap is expected not to return;
// if it does, the failing operation yields a zero value.
type Trap func(op string, err error)

func defaultTrap(op string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	os.Exit(1)
}

var (
	con       = console.Std()
	trap Trap = defaultTrap
)

// Bind replaces the console and trap used by the catalogue and returns a
// function restoring the previous binding. Passing nil keeps the current
// value. Hosts embedding the runtime bind their own streams; tests bind a
// recording trap.
func Bind(c *console.Console, t Trap) (restore func()) {
	prevCon, prevTrap := con, trap
	if c != nil {
		con = c
	}
	if t != nil {
		trap = t
	}
	return func() {
		con, trap = prevCon, prevTrap
	}
}

func check(op string, err error) {
	if err != nil {
		trap(op, err)
	}
}

// PrintInt writes n in decimal.
func PrintInt(n Int) {
	check("llama_print_int", con.PrintInt(n))
}

// PrintBool writes "true" or "false".
func PrintBool(b bool) {
	check("llama_print_bool", con.PrintBool(b))
}

// PrintChar writes ch as a single byte.
func PrintChar(ch Char) {
	check("llama_print_char", con.PrintChar(ch))
}

// PrintFloat writes d in fixed six-decimal notation.
func PrintFloat(d Float) {
	check("llama_print_float", con.PrintFloat(d))
}

// PrintString writes the content of cell verbatim.
func PrintString(cell []byte) {
	check("llama_print_string", con.PrintString(strbuf.String(cell)))
}

// ReadInt parses a decimal integer from the console.
func ReadInt() Int {
	n, err := con.ReadInt()
	check("llama_read_int", err)
	return n
}

// ReadBool reads an integer and truncates it to a boolean.
func ReadBool() bool {
	b, err := con.ReadBool()
	check("llama_read_bool", err)
	return b
}

// ReadChar reads a single byte.
func ReadChar() Char {
	ch, err := con.ReadChar()
	check("llama_read_char", err)
	return ch
}

// ReadFloat parses a floating-point literal from the console.
func ReadFloat() Float {
	d, err := con.ReadFloat()
	check("llama_read_float", err)
	return d
}

// ReadString reads one input line into the caller's cell, NUL-terminated
// within its capacity.
func ReadString(cell []byte) {
	_, err := con.ReadString(cell)
	check("llama_read_string", err)
}

// Abs returns |n|.
func Abs(n Int) Int { return lmath.Abs(n) }

// Fabs returns |d|.
func Fabs(d Float) Float { return lmath.Fabs(d) }

// Sqrt returns the square root of d.
func Sqrt(d Float) Float { return lmath.Sqrt(d) }

// Sin returns sin(d).
func Sin(d Float) Float { return lmath.Sin(d) }

// Cos returns cos(d).
func Cos(d Float) Float { return lmath.Cos(d) }

// Tan returns tan(d).
func Tan(d Float) Float { return lmath.Tan(d) }

// Atan returns atan(d).
func Atan(d Float) Float { return lmath.Atan(d) }

// Exp returns e**d.
func Exp(d Float) Float { return lmath.Exp(d) }

// Ln returns the natural logarithm of d.
func Ln(d Float) Float { return lmath.Ln(d) }

// Pi returns the circle constant.
func Pi() Float { return lmath.Pi() }

// Incr increments the cell behind n.
func Incr(n *Int) { refs.Incr(n) }

// Decr decrements the cell behind n.
func Decr(n *Int) { refs.Decr(n) }

// FloatOfInt converts n to a float.
func FloatOfInt(n Int) Float { return cast.FloatOfInt(n) }

// IntOfFloat truncates d toward zero with native conversion semantics.
func IntOfFloat(d Float) Int { return cast.IntOfFloatWrap(d) }

// Round rounds d half away from zero with native conversion semantics.
func Round(d Float) Int { return cast.RoundWrap(d) }

// IntOfChar returns the codepoint of c.
func IntOfChar(c Char) Int { return cast.IntOfChar(c) }

// CharOfInt truncates n to its low byte.
func CharOfInt(n Int) Char { return cast.CharOfIntWrap(n) }

// Strlen returns the content length of cell.
func Strlen(cell []byte) Int {
	return Int(strbuf.Len(cell))
}

// Strcmp compares two cells, returning a negative, zero or positive result.
func Strcmp(a, b []byte) Int {
	return Int(strbuf.Compare(a, b))
}

// Strcpy replaces dst's content with src's content. Capacity-checked: a
// destination too small is fatal rather than a silent overrun.
func Strcpy(dst, src []byte) {
	check("llama_strcpy", strbuf.Copy(dst, src))
}

// Strcat appends src's content to dst's content. Capacity-checked like
// Strcpy.
func Strcat(dst, src []byte) {
	check("llama_strcat", strbuf.Concat(dst, src))
}
