package progress

import (
	"bytes"
	"errors"
	"testing"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.StartFile("a.txt")
	r.Advance(4)
	r.Advance(8)
	r.EndFile()
	r.StartFile("empty")
	r.EndFile()

	want := "a.txt\n4 8 \nempty\n\n"
	if buf.String() != want {
		t.Errorf("progress output = %q, want %q", buf.String(), want)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestNilReporter(t *testing.T) {
	var r *Reporter
	r.StartFile("x")
	r.Advance(1)
	r.EndFile()
	if r.Err() != nil {
		t.Errorf("nil reporter Err() = %v", r.Err())
	}
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("broken pipe")
}

func TestReporterStopsAfterError(t *testing.T) {
	w := &failingWriter{}
	r := New(w)
	r.StartFile("a")
	r.Advance(1)
	r.EndFile()

	if w.calls != 1 {
		t.Errorf("writer called %d times, want 1", w.calls)
	}
	if r.Err() == nil {
		t.Error("Err() = nil, want write error")
	}
}
