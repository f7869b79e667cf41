package libllama_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"llama/runtime/console"
	"llama/runtime/libllama"
	"llama/runtime/strbuf"
)

// trapRecorder is a non-terminating trap for tests.
type trapRecorder struct {
	ops []string
}

func (r *trapRecorder) trap(op string, err error) {
	if err == nil {
		panic("trap called without error")
	}
	r.ops = append(r.ops, op)
}

func bind(t *testing.T, input string, out *bytes.Buffer) *trapRecorder {
	t.Helper()
	rec := &trapRecorder{}
	restore := libllama.Bind(console.New(strings.NewReader(input), out), rec.trap)
	t.Cleanup(restore)
	return rec
}

func TestPrintCatalogueFormats(t *testing.T) {
	var out bytes.Buffer
	rec := bind(t, "", &out)

	libllama.PrintInt(7)
	libllama.PrintChar(':')
	libllama.PrintBool(true)
	libllama.PrintChar(':')
	libllama.PrintFloat(1.5)
	libllama.PrintChar(':')
	cell := make([]byte, 8)
	if err := strbuf.Set(cell, "end"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	libllama.PrintString(cell)

	if len(rec.ops) != 0 {
		t.Fatalf("unexpected traps: %v", rec.ops)
	}
	want := "7:true:1.500000:end"
	if got := out.String(); got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestReadEcho(t *testing.T) {
	var out bytes.Buffer
	rec := bind(t, "5 1 3.5 y", &out)

	libllama.PrintInt(libllama.ReadInt())
	libllama.PrintBool(libllama.ReadBool())
	libllama.PrintFloat(libllama.ReadFloat())
	ch := libllama.ReadChar()
	if ch != ' ' {
		t.Fatalf("expected the separating space, got %q", ch)
	}
	libllama.PrintChar(libllama.ReadChar())

	if len(rec.ops) != 0 {
		t.Fatalf("unexpected traps: %v", rec.ops)
	}
	if got := out.String(); got != "5true3.500000y" {
		t.Fatalf("unexpected echo output %q", got)
	}
}

func TestReadStringBounded(t *testing.T) {
	var out bytes.Buffer
	rec := bind(t, "hello\n", &out)

	cell := make([]byte, 5)
	libllama.ReadString(cell)
	if len(rec.ops) != 0 {
		t.Fatalf("unexpected traps: %v", rec.ops)
	}
	if got := strbuf.String(cell); got != "hell" {
		t.Fatalf("bounded read yielded %q, want \"hell\"", got)
	}
}

func TestReadFailureTrapsWithFunctionName(t *testing.T) {
	var out bytes.Buffer
	rec := bind(t, "", &out)

	n := libllama.ReadInt()
	if n != 0 {
		t.Fatalf("trapped read should yield zero, got %d", n)
	}
	if len(rec.ops) != 1 || rec.ops[0] != "llama_read_int" {
		t.Fatalf("expected a llama_read_int trap, got %v", rec.ops)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestPrintFailureTrapsWithFunctionName(t *testing.T) {
	rec := &trapRecorder{}
	restore := libllama.Bind(console.New(strings.NewReader(""), failingWriter{}), rec.trap)
	t.Cleanup(restore)

	libllama.PrintFloat(1.0)
	if len(rec.ops) != 1 || rec.ops[0] != "llama_print_float" {
		t.Fatalf("expected a llama_print_float trap, got %v", rec.ops)
	}
}

func TestStringGroup(t *testing.T) {
	var out bytes.Buffer
	rec := bind(t, "", &out)

	dst := make([]byte, 8)
	src := make([]byte, 8)
	if err := strbuf.Set(src, "ab"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	libllama.Strcpy(dst, src)
	if err := strbuf.Set(src, "cd"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	libllama.Strcat(dst, src)

	if len(rec.ops) != 0 {
		t.Fatalf("unexpected traps: %v", rec.ops)
	}
	if libllama.Strlen(dst) != 4 || strbuf.String(dst) != "abcd" {
		t.Fatalf("expected \"abcd\", got %q", strbuf.String(dst))
	}
	if libllama.Strcmp(dst, dst) != 0 {
		t.Fatal("equal cells must compare as zero")
	}
}

func TestStrcpyOverflowTraps(t *testing.T) {
	var out bytes.Buffer
	rec := bind(t, "", &out)

	dst := make([]byte, 2)
	src := make([]byte, 8)
	if err := strbuf.Set(src, "long"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	libllama.Strcpy(dst, src)
	if len(rec.ops) != 1 || rec.ops[0] != "llama_strcpy" {
		t.Fatalf("expected a llama_strcpy trap, got %v", rec.ops)
	}
}

func TestCatalogCoversHeader(t *testing.T) {
	entries := libllama.Catalog()
	if len(entries) != 31 {
		t.Fatalf("expected 31 catalogue entries, got %d", len(entries))
	}
	seen := make(map[string]bool, len(entries))
	groups := make(map[libllama.Group]int)
	for _, e := range entries {
		if seen[e.Name] {
			t.Fatalf("duplicate entry %s", e.Name)
		}
		seen[e.Name] = true
		if !strings.Contains(e.Signature, e.Name) {
			t.Fatalf("signature %q does not mention %s", e.Signature, e.Name)
		}
		groups[e.Group]++
	}
	if groups[libllama.GroupIO] != 10 || groups[libllama.GroupMath] != 10 ||
		groups[libllama.GroupRefs] != 2 || groups[libllama.GroupCasts] != 5 ||
		groups[libllama.GroupStrings] != 4 {
		t.Fatalf("unexpected group sizes: %v", groups)
	}
}
