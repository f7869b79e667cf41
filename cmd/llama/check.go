package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"llama/runtime/cast"
	"llama/runtime/console"
	"llama/runtime/libllama"
	"llama/runtime/lmath"
	"llama/runtime/refs"
	"llama/runtime/strbuf"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the runtime conformance suite",
	Long: `Exercise every group of the runtime catalogue against its contract:
formats, parsing, bounded reads, cast round trips, string cells and the
fatal I/O policy. Exits non-zero if any check fails.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

type conformanceCheck struct {
	name string
	fn   func() error
}

func runCheck(cmd *cobra.Command, args []string) error {
	configureColor(cmd, os.Stdout)
	quiet := quietFlag(cmd)

	pass := color.New(color.FgGreen).Sprint("PASS")
	fail := color.New(color.FgRed).Sprint("FAIL")

	failures := 0
	for _, c := range conformanceChecks {
		if err := c.fn(); err != nil {
			failures++
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", fail, c.name, err)
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pass, c.name)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d conformance checks failed", failures, len(conformanceChecks))
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "all %d checks passed\n", len(conformanceChecks))
	}
	return nil
}

var conformanceChecks = []conformanceCheck{
	{"abs identity", checkAbs},
	{"fabs idempotent", checkFabs},
	{"sqrt exact points", checkSqrt},
	{"math domain errors silent", checkMathSilent},
	{"incr/decr identity", checkRefs},
	{"int/float cast round trip", checkIntFloatCasts},
	{"char/int cast round trip", checkCharCasts},
	{"print formats", checkPrintFormats},
	{"read parsing", checkReadParsing},
	{"bounded string read", checkBoundedRead},
	{"string cells", checkStringCells},
	{"fatal policy names the function", checkFatalPolicy},
}

func checkAbs() error {
	for _, v := range []int32{0, 1, -1, 42, -42, math.MaxInt32} {
		want := v
		if v < 0 {
			want = -v
		}
		if lmath.Abs(v) != want {
			return fmt.Errorf("abs(%d) != %d", v, want)
		}
	}
	return nil
}

func checkFabs() error {
	if lmath.Fabs(-0.0) != lmath.Fabs(0.0) {
		return errors.New("fabs(-0.0) differs from fabs(0.0)")
	}
	for _, d := range []float64{-3.5, 0, 7.25} {
		if lmath.Fabs(lmath.Fabs(d)) != lmath.Fabs(d) {
			return fmt.Errorf("fabs not idempotent at %v", d)
		}
	}
	return nil
}

func checkSqrt() error {
	for d, want := range map[float64]float64{0: 0, 1: 1, 16: 4} {
		if lmath.Sqrt(d) != want {
			return fmt.Errorf("sqrt(%v) != %v", d, want)
		}
	}
	for _, d := range []float64{0.5, 2, 123.25} {
		if diff := math.Abs(lmath.Sqrt(d*d) - d); diff > 1e-9 {
			return fmt.Errorf("sqrt(%v²) off by %v", d, diff)
		}
	}
	return nil
}

func checkMathSilent() error {
	if !math.IsNaN(lmath.Sqrt(-1)) {
		return errors.New("sqrt(-1) should be NaN")
	}
	if !math.IsInf(lmath.Ln(0), -1) {
		return errors.New("ln(0) should be -Inf")
	}
	return nil
}

func checkRefs() error {
	n := int32(7)
	refs.Incr(&n)
	refs.Decr(&n)
	if n != 7 {
		return fmt.Errorf("incr then decr moved the cell to %d", n)
	}
	return nil
}

func checkIntFloatCasts() error {
	for _, n := range []int32{0, -1, 42, math.MinInt32, math.MaxInt32} {
		back, err := cast.IntOfFloat(cast.FloatOfInt(n))
		if err != nil {
			return fmt.Errorf("round trip of %d: %w", n, err)
		}
		if back != n {
			return fmt.Errorf("round trip of %d yielded %d", n, back)
		}
	}
	if got, err := cast.IntOfFloat(-2.9); err != nil || got != -2 {
		return fmt.Errorf("truncation toward zero broken: got %d, %v", got, err)
	}
	if got, err := cast.Round(2.5); err != nil || got != 3 {
		return fmt.Errorf("round ties away from zero broken: got %d, %v", got, err)
	}
	return nil
}

func checkCharCasts() error {
	for i := 0; i < 256; i++ {
		back, err := cast.CharOfInt(cast.IntOfChar(byte(i)))
		if err != nil || back != byte(i) {
			return fmt.Errorf("round trip of %d yielded %d, %v", i, back, err)
		}
	}
	return nil
}

func checkPrintFormats() error {
	var out bytes.Buffer
	c := console.New(strings.NewReader(""), &out)
	for _, step := range []func() error{
		func() error { return c.PrintInt(-5) },
		func() error { return c.PrintChar('|') },
		func() error { return c.PrintBool(false) },
		func() error { return c.PrintChar('|') },
		func() error { return c.PrintFloat(1.25) },
	} {
		if err := step(); err != nil {
			return err
		}
	}
	if got := out.String(); got != "-5|false|1.250000" {
		return fmt.Errorf("unexpected rendering %q", got)
	}
	return nil
}

func checkReadParsing() error {
	c := console.New(strings.NewReader(" -8 1 2.5x"), new(bytes.Buffer))
	if n, err := c.ReadInt(); err != nil || n != -8 {
		return fmt.Errorf("read_int: got %d, %v", n, err)
	}
	if b, err := c.ReadBool(); err != nil || !b {
		return fmt.Errorf("read_bool: got %v, %v", b, err)
	}
	if d, err := c.ReadFloat(); err != nil || d != 2.5 {
		return fmt.Errorf("read_float: got %v, %v", d, err)
	}
	if ch, err := c.ReadChar(); err != nil || ch != 'x' {
		return fmt.Errorf("read_char: got %q, %v", ch, err)
	}
	return nil
}

func checkBoundedRead() error {
	c := console.New(strings.NewReader("hello\n"), new(bytes.Buffer))
	buf := make([]byte, 5)
	n, err := c.ReadString(buf)
	if err != nil {
		return err
	}
	if n != 4 || strbuf.String(buf) != "hell" {
		return fmt.Errorf("capacity 5 read of \"hello\" yielded %q", strbuf.String(buf))
	}
	return nil
}

func checkStringCells() error {
	dst := make([]byte, 8)
	src := make([]byte, 8)
	if err := strbuf.Set(src, "ab"); err != nil {
		return err
	}
	if err := strbuf.Copy(dst, src); err != nil {
		return err
	}
	if err := strbuf.Set(src, "cd"); err != nil {
		return err
	}
	if err := strbuf.Concat(dst, src); err != nil {
		return err
	}
	if strbuf.String(dst) != "abcd" || strbuf.Len(dst) != 4 {
		return fmt.Errorf("concat yielded %q", strbuf.String(dst))
	}
	if strbuf.Len([]byte{0}) != 0 {
		return errors.New("empty cell should have length 0")
	}
	if strbuf.Compare(dst, dst) != 0 {
		return errors.New("equal cells should compare as zero")
	}
	if err := strbuf.Copy(make([]byte, 2), dst); !errors.Is(err, strbuf.ErrNoSpace) {
		return errors.New("overflowing copy should report ErrNoSpace")
	}
	return nil
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("console gone")
}

func checkFatalPolicy() error {
	var trapped []string
	restore := libllama.Bind(
		console.New(strings.NewReader(""), brokenWriter{}),
		func(op string, err error) {
			trapped = append(trapped, op)
		},
	)
	defer restore()

	libllama.PrintInt(1)
	libllama.ReadInt()
	if len(trapped) != 2 || trapped[0] != "llama_print_int" || trapped[1] != "llama_read_int" {
		return fmt.Errorf("trap sequence %v", trapped)
	}
	return nil
}
