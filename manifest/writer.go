package manifest

import (
	"bufio"
	"io"
	"strconv"
)

// Writer appends manifest lines to an underlying writer. Output is
// buffered; call Flush when done. Errors are sticky: once a write fails,
// every later call returns the same error.
type Writer struct {
	w   *bufio.Writer
	num []byte
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   bufio.NewWriter(w),
		num: make([]byte, 0, 20),
	}
}

// WriteHeader writes the format line and header fields.
func (w *Writer) WriteHeader(h Header) error {
	w.w.WriteString(FormatLine)
	w.w.WriteString("\n\n")
	w.field("writer", h.Writer)
	w.field("alg", h.Alg)
	w.field("custom", h.Custom)
	w.field("sum_alg", h.SumAlg)
	w.field("sum_custom", h.SumCustom)
	w.w.WriteString("frag=")
	w.uint(h.Frag)
	return w.w.WriteByte('\n')
}

// BeginFile writes the separator, name and size lines of a file block.
func (w *Writer) BeginFile(name string, size uint64) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	w.w.WriteString("\nname(")
	w.uint(uint64(len(name)))
	w.w.WriteString(")=")
	w.w.WriteString(name)
	w.w.WriteString("\nsize=")
	w.uint(size)
	return w.w.WriteByte('\n')
}

// WriteFragment writes one fragment line.
func (w *Writer) WriteFragment(hexDigest []byte, index uint64) error {
	w.w.Write(hexDigest)
	w.w.WriteByte(' ')
	w.uint(index)
	return w.w.WriteByte('\n')
}

// WriteSum writes the line closing a file block.
func (w *Writer) WriteSum(hexDigest []byte) error {
	w.w.Write(hexDigest)
	_, err := w.w.WriteString(" SUM\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) field(key, value string) {
	w.w.WriteString(key)
	w.w.WriteByte('=')
	w.w.WriteString(value)
	w.w.WriteByte('\n')
}

func (w *Writer) uint(n uint64) {
	w.num = strconv.AppendUint(w.num[:0], n, 10)
	w.w.Write(w.num)
}
