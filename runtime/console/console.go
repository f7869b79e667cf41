// Package console implements the Llama runtime's console I/O operations.
//
// A Console serializes Llama primitives to one output stream and parses them
// from one input stream using the fixed textual formats the code generator
// relies on: integers in decimal, booleans as the words "true" and "false",
// floats in fixed six-decimal notation, characters as single bytes, strings
// verbatim. All operations block until the underlying stream completes and
// report failures as *OpError values; the process-terminating policy of the
// C runtime lives in runtime/libllama, not here.
//
// A Console is stateless across calls except for consuming input bytes. It
// performs no locking: Llama programs are single-threaded and the streams
// are assumed to have a single reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// OpError reports a failed console operation.
type OpError struct {
	Op  string // operation name, e.g. "read_int"
	Err error  // underlying stream or parse error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Console is a pair of console streams for one Llama program.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Std returns a Console bound to the process stdin and stdout.
func Std() *Console {
	return New(os.Stdin, os.Stdout)
}

func (c *Console) fail(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

// PrintInt writes n in decimal.
func (c *Console) PrintInt(n int32) error {
	if _, err := fmt.Fprintf(c.out, "%d", n); err != nil {
		return c.fail("print_int", err)
	}
	return nil
}

// PrintBool writes the literal word "true" or "false".
func (c *Console) PrintBool(b bool) error {
	word := "false"
	if b {
		word = "true"
	}
	if _, err := io.WriteString(c.out, word); err != nil {
		return c.fail("print_bool", err)
	}
	return nil
}

// PrintChar writes ch as a single byte.
func (c *Console) PrintChar(ch byte) error {
	if _, err := c.out.Write([]byte{ch}); err != nil {
		return c.fail("print_char", err)
	}
	return nil
}

// PrintFloat writes d in fixed six-decimal notation.
func (c *Console) PrintFloat(d float64) error {
	if _, err := fmt.Fprintf(c.out, "%f", d); err != nil {
		return c.fail("print_float", err)
	}
	return nil
}

// PrintString writes s verbatim.
func (c *Console) PrintString(s string) error {
	if _, err := io.WriteString(c.out, s); err != nil {
		return c.fail("print_string", err)
	}
	return nil
}

// ReadInt skips leading whitespace and parses a signed decimal integer,
// leaving the first non-integer byte unread.
func (c *Console) ReadInt() (int32, error) {
	var n int32
	if _, err := fmt.Fscan(c.in, &n); err != nil {
		return 0, c.fail("read_int", err)
	}
	return n, nil
}

// ReadBool reads an integer and truncates it to a boolean: zero is false,
// anything else is true.
func (c *Console) ReadBool() (bool, error) {
	var n int32
	if _, err := fmt.Fscan(c.in, &n); err != nil {
		return false, c.fail("read_bool", err)
	}
	return n != 0, nil
}

// ReadChar reads exactly one byte. End of input is an error: a Llama
// program asking for a character must receive one.
func (c *Console) ReadChar() (byte, error) {
	b, err := c.in.ReadByte()
	if err != nil {
		return 0, c.fail("read_char", err)
	}
	return b, nil
}

// ReadFloat skips leading whitespace and parses a floating-point literal,
// leaving the first non-numeric byte unread.
func (c *Console) ReadFloat() (float64, error) {
	var d float64
	if _, err := fmt.Fscan(c.in, &d); err != nil {
		return 0, c.fail("read_float", err)
	}
	return d, nil
}

// ReadString fills buf with one input line: at most len(buf)-1 content
// bytes, stopping at a newline (consumed, not stored) or at end of input.
// The content is always NUL-terminated within buf. Returns the content
// length in bytes.
//
// A zero-capacity buffer reads nothing.
func (c *Console) ReadString(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(buf)-1 {
		b, err := c.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			buf[n] = 0
			return n, c.fail("read_string", err)
		}
		if b == '\n' {
			break
		}
		buf[n] = b
		n++
	}
	buf[n] = 0
	buf[len(buf)-1] = 0
	return n, nil
}
