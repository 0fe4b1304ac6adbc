package wire

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"io"

	"github.com/wippyai/amqp-codec/errors"
)

// Reader wraps an io.Reader with position tracking.
type Reader struct {
	r   io.Reader
	pos int64
	buf [8]byte
}

// NewReader creates a new Reader wrapping r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int64 {
	return r.pos
}

// preallocLimit caps the up-front allocation of ReadBytes. Longer reads grow
// their buffer only as bytes arrive, so a declared length cannot allocate
// more than the stream delivers.
const preallocLimit = 64 << 10

// ReadBytes reads exactly n bytes into a new slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n <= preallocLimit {
		buf := make([]byte, n)
		if err := r.fill(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var buf bytes.Buffer
	got, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += got
	if err != nil {
		return nil, readError(err, n)
	}
	return buf.Bytes(), nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.fill(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.fill(r.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r.buf[:2]), nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.fill(r.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(r.buf[:4]), nil
}

// ReadU64 reads a big-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.fill(r.buf[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(r.buf[:8]), nil
}

// fill reads len(p) bytes. The position advances by the bytes actually read,
// so a failed read still accounts for a partially consumed value.
func (r *Reader) fill(p []byte) error {
	n, err := io.ReadFull(r.r, p)
	r.pos += int64(n)
	if err == nil {
		return nil
	}
	return readError(err, len(p))
}

func readError(err error, want int) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.EndOfStream(errors.PhaseDecode, want, err)
	}
	return errors.IO(errors.PhaseDecode, err)
}
