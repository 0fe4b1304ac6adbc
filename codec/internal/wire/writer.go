package wire

import (
	"encoding/binary"
	"io"

	"github.com/wippyai/amqp-codec/errors"
)

// Writer wraps an io.Writer with a running byte count.
type Writer struct {
	w   io.Writer
	n   int64
	buf [8]byte
}

// NewWriter creates a new Writer wrapping w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int64 {
	return w.n
}

// WriteBytes writes data as is.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.Write(data)
	w.n += int64(n)
	if err != nil {
		return errors.IO(errors.PhaseEncode, err)
	}
	if n != len(data) {
		return errors.IO(errors.PhaseEncode, io.ErrShortWrite)
	}
	return nil
}

// WriteString writes s as is.
func (w *Writer) WriteString(s string) error {
	if sw, ok := w.w.(io.StringWriter); ok && len(s) > 0 {
		n, err := sw.WriteString(s)
		w.n += int64(n)
		if err != nil {
			return errors.IO(errors.PhaseEncode, err)
		}
		if n != len(s) {
			return errors.IO(errors.PhaseEncode, io.ErrShortWrite)
		}
		return nil
	}
	return w.WriteBytes([]byte(s))
}

// WriteU8 writes one byte.
func (w *Writer) WriteU8(v uint8) error {
	w.buf[0] = v
	return w.WriteBytes(w.buf[:1])
}

// WriteU16 writes a big-endian uint16.
func (w *Writer) WriteU16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	return w.WriteBytes(w.buf[:2])
}

// WriteU32 writes a big-endian uint32.
func (w *Writer) WriteU32(v uint32) error {
	binary.BigEndian.PutUint32(w.buf[:4], v)
	return w.WriteBytes(w.buf[:4])
}

// WriteU64 writes a big-endian uint64.
func (w *Writer) WriteU64(v uint64) error {
	binary.BigEndian.PutUint64(w.buf[:8], v)
	return w.WriteBytes(w.buf[:8])
}
