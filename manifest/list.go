package manifest

import (
	"bufio"
	"io"
	"strings"
)

// ListWriter writes normalized file names one per line.
//
// In concat mode there is no header and every line has the form
// "file '<name>'", the input format of ffmpeg's concat demuxer. Names
// containing a single quote are rejected in that mode.
type ListWriter struct {
	w      *bufio.Writer
	concat bool
}

// NewListWriter returns a ListWriter appending to w.
func NewListWriter(w io.Writer, concat bool) *ListWriter {
	return &ListWriter{w: bufio.NewWriter(w), concat: concat}
}

// WriteHeader writes the list header. It writes nothing in concat mode.
func (l *ListWriter) WriteHeader(writer string) error {
	if l.concat {
		return nil
	}
	l.w.WriteString(ListFormatLine)
	l.w.WriteString("\n\nwriter=")
	l.w.WriteString(writer)
	_, err := l.w.WriteString("\n\n")
	return err
}

// WriteName writes one name line.
func (l *ListWriter) WriteName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !l.concat {
		l.w.WriteString(name)
		return l.w.WriteByte('\n')
	}
	if strings.IndexByte(name, '\'') >= 0 {
		return ErrNameContainsQuote
	}
	l.w.WriteString("file '")
	l.w.WriteString(name)
	_, err := l.w.WriteString("'\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (l *ListWriter) Flush() error {
	return l.w.Flush()
}
