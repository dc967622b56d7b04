// Package progress writes the per-file byte counters shown while a tree is
// hashed. The output is diagnostic and never read back.
package progress

import (
	"io"
	"strconv"
)

// Reporter prints one line per file: the file name, then on the next line
// the running byte count after every fragment, separated by spaces.
//
// A nil *Reporter discards everything. After the first write error the
// reporter goes quiet and Err returns that error.
type Reporter struct {
	w   io.Writer
	buf []byte
	err error
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, buf: make([]byte, 0, 32)}
}

// StartFile announces the file about to be read.
func (r *Reporter) StartFile(name string) {
	if r == nil {
		return
	}
	r.buf = append(r.buf[:0], name...)
	r.buf = append(r.buf, '\n')
	r.write()
}

// Advance records that total bytes of the current file have been read.
func (r *Reporter) Advance(total uint64) {
	if r == nil {
		return
	}
	r.buf = strconv.AppendUint(r.buf[:0], total, 10)
	r.buf = append(r.buf, ' ')
	r.write()
}

// EndFile terminates the current file's counter line.
func (r *Reporter) EndFile() {
	if r == nil {
		return
	}
	r.buf = append(r.buf[:0], '\n')
	r.write()
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	if r == nil {
		return nil
	}
	return r.err
}

func (r *Reporter) write() {
	if r.err != nil {
		return
	}
	_, r.err = r.w.Write(r.buf)
}
