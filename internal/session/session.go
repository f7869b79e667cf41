// Package session records and replays console sessions for the runtime
// harness. A Recorder taps a console's streams and writes a deterministic
// msgpack event log; a Replayer serves the recorded input back and verifies
// that the live output is byte-identical to the recorded run.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when the log format changes.
const schemaVersion uint16 = 1

// Event directions.
const (
	kindIn  = "in"
	kindOut = "out"
)

type header struct {
	Schema uint16
}

type event struct {
	Kind string
	Data []byte
}

// ErrOutputExhausted reports live output past the end of the recorded run.
var ErrOutputExhausted = errors.New("session: output past end of recording")

// MismatchError reports the first diverging output byte during replay.
type MismatchError struct {
	Offset int
	Want   byte
	Got    byte
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("session: output diverges at byte %d: recorded %q, got %q",
		e.Offset, e.Want, e.Got)
}

// Recorder writes a console session log.
type Recorder struct {
	enc *msgpack.Encoder
	err error
}

// NewRecorder starts a log on w by writing the schema header.
func NewRecorder(w io.Writer) (*Recorder, error) {
	r := &Recorder{enc: msgpack.NewEncoder(w)}
	if err := r.enc.Encode(header{Schema: schemaVersion}); err != nil {
		return nil, fmt.Errorf("session: failed to write header: %w", err)
	}
	return r, nil
}

// Err returns the first logging failure, if any. A session whose recorder
// failed mid-run is not a faithful recording.
func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) log(kind string, data []byte) {
	if r.err != nil {
		return
	}
	ev := event{Kind: kind, Data: append([]byte(nil), data...)}
	if err := r.enc.Encode(ev); err != nil {
		r.err = fmt.Errorf("session: failed to record %s event: %w", kind, err)
	}
}

// TapInput returns a reader that forwards in and records everything read.
func (r *Recorder) TapInput(in io.Reader) io.Reader {
	return &inTap{r: in, rec: r}
}

// TapOutput returns a writer that forwards out and records everything
// written.
func (r *Recorder) TapOutput(out io.Writer) io.Writer {
	return &outTap{w: out, rec: r}
}

type inTap struct {
	r   io.Reader
	rec *Recorder
}

func (t *inTap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		t.rec.log(kindIn, p[:n])
	}
	return n, err
}

type outTap struct {
	w   io.Writer
	rec *Recorder
}

func (t *outTap) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.rec.log(kindOut, p[:n])
	}
	return n, err
}

// Replayer validates a recorded session against a live run.
type Replayer struct {
	input   *bytes.Reader
	wantOut []byte
	gotOut  int
}

// Load parses a session log and prepares it for replay.
func Load(rd io.Reader) (*Replayer, error) {
	dec := msgpack.NewDecoder(rd)

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("session: missing header: %w", err)
	}
	if h.Schema != schemaVersion {
		return nil, fmt.Errorf("session: unsupported log schema %d", h.Schema)
	}

	var in, out bytes.Buffer
	for {
		var ev event
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("session: corrupt event stream: %w", err)
		}
		switch ev.Kind {
		case kindIn:
			in.Write(ev.Data)
		case kindOut:
			out.Write(ev.Data)
		default:
			return nil, fmt.Errorf("session: unknown event kind %q", ev.Kind)
		}
	}

	return &Replayer{
		input:   bytes.NewReader(in.Bytes()),
		wantOut: out.Bytes(),
	}, nil
}

// Input serves the recorded input stream.
func (p *Replayer) Input() io.Reader {
	return p.input
}

// Output returns a writer that checks live output against the recording,
// failing on the first diverging byte.
func (p *Replayer) Output() io.Writer {
	return &verifyWriter{p: p}
}

type verifyWriter struct {
	p *Replayer
}

func (w *verifyWriter) Write(data []byte) (int, error) {
	p := w.p
	for i, b := range data {
		if p.gotOut >= len(p.wantOut) {
			return i, ErrOutputExhausted
		}
		if want := p.wantOut[p.gotOut]; b != want {
			return i, &MismatchError{Offset: p.gotOut, Want: want, Got: b}
		}
		p.gotOut++
	}
	return len(data), nil
}

// Verify reports whether the live run produced all of the recorded output.
func (p *Replayer) Verify() error {
	if p.gotOut != len(p.wantOut) {
		return fmt.Errorf("session: run produced %d of %d recorded output bytes",
			p.gotOut, len(p.wantOut))
	}
	return nil
}
