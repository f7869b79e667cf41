// Package script interprets .lls harness scripts: line-oriented command
// files the compiler developers use to exercise the runtime catalogue
// against a console. One operation per line; value-producing operations
// echo their result through the corresponding console print operation,
// followed by a newline, so a script's observable behavior is exactly a
// sequence of runtime calls.
//
// Harness state is deliberately tiny, mirroring what the runtime itself
// touches: one int32 reference cell for incr/decr and one fixed-capacity
// string cell for the string group.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"llama/runtime/cast"
	"llama/runtime/console"
	"llama/runtime/lmath"
	"llama/runtime/refs"
	"llama/runtime/strbuf"
)

// DefaultStrCap is the string cell capacity before any strinit.
const DefaultStrCap = 256

// Harness executes script operations against a console.
type Harness struct {
	con  *console.Console
	cell int32
	str  []byte
}

// New creates a Harness over the given console.
func New(con *console.Console) *Harness {
	return &Harness{con: con, str: make([]byte, DefaultStrCap)}
}

// Run executes a whole script, one operation per line. Blank lines and
// lines starting with '#' are skipped. The first failing line aborts the
// run with an error naming it.
func (h *Harness) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := h.Exec(text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	return nil
}

// Exec executes a single operation.
func (h *Harness) Exec(text string) error {
	op, arg := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		op, arg = text[:i], strings.TrimSpace(text[i+1:])
	}
	handler, ok := ops[op]
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}
	return handler(h, arg)
}

var ops = map[string]func(*Harness, string) error{
	"print_int":    opPrintInt,
	"print_bool":   opPrintBool,
	"print_char":   opPrintChar,
	"print_float":  opPrintFloat,
	"print_string": opPrintString,

	"read_int":    opReadInt,
	"read_bool":   opReadBool,
	"read_char":   opReadChar,
	"read_float":  opReadFloat,
	"read_string": opReadString,

	"abs":  opAbs,
	"fabs": floatOp(lmath.Fabs),
	"sqrt": floatOp(lmath.Sqrt),
	"sin":  floatOp(lmath.Sin),
	"cos":  floatOp(lmath.Cos),
	"tan":  floatOp(lmath.Tan),
	"atan": floatOp(lmath.Atan),
	"exp":  floatOp(lmath.Exp),
	"ln":   floatOp(lmath.Ln),
	"pi":   opPi,

	"incr":    opIncr,
	"decr":    opDecr,
	"cell":    opCell,
	"setcell": opSetCell,

	"float_of_int": opFloatOfInt,
	"int_of_float": opIntOfFloat,
	"round":        opRound,
	"int_of_char":  opIntOfChar,
	"char_of_int":  opCharOfInt,

	"strinit": opStrInit,
	"strset":  opStrSet,
	"strlen":  opStrLen,
	"strcmp":  opStrCmp,
	"strcpy":  opStrCpy,
	"strcat":  opStrCat,
	"str":     opStr,
}

func parseInt(arg string) (int32, error) {
	n, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q", arg)
	}
	return int32(n), nil
}

func parseFloat(arg string) (float64, error) {
	d, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("bad float %q", arg)
	}
	return d, nil
}

func parseBool(arg string) (bool, error) {
	switch arg {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("bad boolean %q", arg)
}

func parseChar(arg string) (byte, error) {
	switch arg {
	case `\n`:
		return '\n', nil
	case `\t`:
		return '\t', nil
	case `\s`:
		return ' ', nil
	case `\\`:
		return '\\', nil
	}
	if len(arg) != 1 {
		return 0, fmt.Errorf("bad character %q", arg)
	}
	return arg[0], nil
}

// unescape expands the same escapes parseChar knows inside free text.
var unescape = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\s`, " ", `\\`, `\`)

func (h *Harness) echoInt(n int32) error {
	if err := h.con.PrintInt(n); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}

func (h *Harness) echoFloat(d float64) error {
	if err := h.con.PrintFloat(d); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}

func (h *Harness) echoBool(b bool) error {
	if err := h.con.PrintBool(b); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}

func opPrintInt(h *Harness, arg string) error {
	n, err := parseInt(arg)
	if err != nil {
		return err
	}
	return h.con.PrintInt(n)
}

func opPrintBool(h *Harness, arg string) error {
	b, err := parseBool(arg)
	if err != nil {
		return err
	}
	return h.con.PrintBool(b)
}

func opPrintChar(h *Harness, arg string) error {
	c, err := parseChar(arg)
	if err != nil {
		return err
	}
	return h.con.PrintChar(c)
}

func opPrintFloat(h *Harness, arg string) error {
	d, err := parseFloat(arg)
	if err != nil {
		return err
	}
	return h.con.PrintFloat(d)
}

func opPrintString(h *Harness, arg string) error {
	return h.con.PrintString(unescape.Replace(arg))
}

func opReadInt(h *Harness, arg string) error {
	n, err := h.con.ReadInt()
	if err != nil {
		return err
	}
	return h.echoInt(n)
}

func opReadBool(h *Harness, arg string) error {
	b, err := h.con.ReadBool()
	if err != nil {
		return err
	}
	return h.echoBool(b)
}

func opReadChar(h *Harness, arg string) error {
	c, err := h.con.ReadChar()
	if err != nil {
		return err
	}
	if err := h.con.PrintChar(c); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}

func opReadFloat(h *Harness, arg string) error {
	d, err := h.con.ReadFloat()
	if err != nil {
		return err
	}
	return h.echoFloat(d)
}

func opReadString(h *Harness, arg string) error {
	capacity := len(h.str)
	if arg != "" {
		n, err := parseInt(arg)
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("capacity must be positive, got %d", n)
		}
		capacity = int(n)
	}
	buf := make([]byte, capacity)
	if _, err := h.con.ReadString(buf); err != nil {
		return err
	}
	if err := h.con.PrintString(strbuf.String(buf)); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}

func opAbs(h *Harness, arg string) error {
	n, err := parseInt(arg)
	if err != nil {
		return err
	}
	return h.echoInt(lmath.Abs(n))
}

func floatOp(fn func(float64) float64) func(*Harness, string) error {
	return func(h *Harness, arg string) error {
		d, err := parseFloat(arg)
		if err != nil {
			return err
		}
		return h.echoFloat(fn(d))
	}
}

func opPi(h *Harness, arg string) error {
	return h.echoFloat(lmath.Pi())
}

func opIncr(h *Harness, arg string) error {
	refs.Incr(&h.cell)
	return nil
}

func opDecr(h *Harness, arg string) error {
	refs.Decr(&h.cell)
	return nil
}

func opCell(h *Harness, arg string) error {
	return h.echoInt(h.cell)
}

func opSetCell(h *Harness, arg string) error {
	n, err := parseInt(arg)
	if err != nil {
		return err
	}
	h.cell = n
	return nil
}

func opFloatOfInt(h *Harness, arg string) error {
	n, err := parseInt(arg)
	if err != nil {
		return err
	}
	return h.echoFloat(cast.FloatOfInt(n))
}

func opIntOfFloat(h *Harness, arg string) error {
	d, err := parseFloat(arg)
	if err != nil {
		return err
	}
	n, err := cast.IntOfFloat(d)
	if err != nil {
		return err
	}
	return h.echoInt(n)
}

func opRound(h *Harness, arg string) error {
	d, err := parseFloat(arg)
	if err != nil {
		return err
	}
	n, err := cast.Round(d)
	if err != nil {
		return err
	}
	return h.echoInt(n)
}

func opIntOfChar(h *Harness, arg string) error {
	c, err := parseChar(arg)
	if err != nil {
		return err
	}
	return h.echoInt(cast.IntOfChar(c))
}

func opCharOfInt(h *Harness, arg string) error {
	n, err := parseInt(arg)
	if err != nil {
		return err
	}
	c, err := cast.CharOfInt(n)
	if err != nil {
		return err
	}
	if err := h.con.PrintChar(c); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}

func opStrInit(h *Harness, arg string) error {
	n, err := parseInt(arg)
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("capacity must be positive, got %d", n)
	}
	h.str = make([]byte, n)
	return nil
}

// other builds a throwaway source cell from free text.
func other(arg string) ([]byte, error) {
	text := unescape.Replace(arg)
	cell := make([]byte, len(text)+1)
	if err := strbuf.Set(cell, text); err != nil {
		return nil, err
	}
	return cell, nil
}

func opStrSet(h *Harness, arg string) error {
	return strbuf.Set(h.str, unescape.Replace(arg))
}

func opStrLen(h *Harness, arg string) error {
	return h.echoInt(int32(strbuf.Len(h.str)))
}

func opStrCmp(h *Harness, arg string) error {
	src, err := other(arg)
	if err != nil {
		return err
	}
	return h.echoInt(int32(strbuf.Compare(h.str, src)))
}

func opStrCpy(h *Harness, arg string) error {
	src, err := other(arg)
	if err != nil {
		return err
	}
	return strbuf.Copy(h.str, src)
}

func opStrCat(h *Harness, arg string) error {
	src, err := other(arg)
	if err != nil {
		return err
	}
	return strbuf.Concat(h.str, src)
}

func opStr(h *Harness, arg string) error {
	if err := h.con.PrintString(strbuf.String(h.str)); err != nil {
		return err
	}
	return h.con.PrintChar('\n')
}
