package wire

import (
	"bytes"
	stderrors "errors"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/amqp-codec/errors"
)

func TestReaderFixedWidth(t *testing.T) {
	data := []byte{
		0x01,
		0x01, 0x02,
		0x01, 0x02, 0x03, 0x04,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	r := NewReader(bytes.NewReader(data))

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), u8)
	require.Equal(t, int64(1), r.Position())

	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), u16)
	require.Equal(t, int64(3), r.Position())

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), u32)
	require.Equal(t, int64(7), r.Position())

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)
	require.Equal(t, int64(15), r.Position())
}

func TestReaderZeroLength(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	got, err := r.ReadBytes(0)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, int64(0), r.Position())
}

func TestReaderEndOfStream(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := NewReader(bytes.NewReader(nil))
		_, err := r.ReadU8()
		require.True(t, errors.HasKind(err, errors.KindEndOfStream))
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("short", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte{0x00, 0x01}))
		_, err := r.ReadU32()
		require.True(t, errors.HasKind(err, errors.KindEndOfStream))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		require.Equal(t, int64(2), r.Position())
	})

	t.Run("bytes", func(t *testing.T) {
		r := NewReader(bytes.NewReader([]byte("abc")))
		_, err := r.ReadBytes(10)
		require.True(t, errors.HasKind(err, errors.KindEndOfStream))
	})
}

func TestReaderBytesAllocationFollowsInput(t *testing.T) {
	tests := []struct {
		name      string
		available int
		want      int
	}{
		{"empty stream", 0, 1<<30 - 1},
		{"truncated", 100, 1 << 29},
		{"just over prealloc", 1, preallocLimit + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(make([]byte, tt.available)))

			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, err := r.ReadBytes(tt.want)
			runtime.ReadMemStats(&after)

			require.True(t, errors.HasKind(err, errors.KindEndOfStream), "got %v", err)
			require.ErrorIs(t, err, io.EOF)
			require.Equal(t, int64(tt.available), r.Position())
			require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
		})
	}
}

func TestReaderBytesLarge(t *testing.T) {
	for _, n := range []int{preallocLimit, preallocLimit + 1, 200 << 10} {
		data := bytes.Repeat([]byte{0xa5, 0x5a}, n)
		r := NewReader(bytes.NewReader(data))

		got, err := r.ReadBytes(n)
		require.NoError(t, err)
		require.Equal(t, data[:n], got)
		require.Equal(t, int64(n), r.Position())
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderIOError(t *testing.T) {
	cause := stderrors.New("connection reset")
	r := NewReader(failingReader{cause})

	_, err := r.ReadU16()
	require.True(t, errors.HasKind(err, errors.KindIO))
	require.False(t, errors.HasKind(err, errors.KindEndOfStream))
	require.ErrorIs(t, err, cause)
}

func TestWriterFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteU8(0x01))
	require.NoError(t, w.WriteU16(0x0102))
	require.NoError(t, w.WriteU32(0x01020304))
	require.NoError(t, w.WriteU64(0x0102030405060708))
	require.NoError(t, w.WriteString("ab"))
	require.NoError(t, w.WriteBytes([]byte{0xff}))
	require.NoError(t, w.WriteBytes(nil))

	require.Equal(t, []byte{
		0x01,
		0x01, 0x02,
		0x01, 0x02, 0x03, 0x04,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		'a', 'b',
		0xff,
	}, buf.Bytes())
	require.Equal(t, int64(18), w.Len())
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestWriterShortWrite(t *testing.T) {
	w := NewWriter(shortWriter{})

	err := w.WriteU32(7)
	require.True(t, errors.HasKind(err, errors.KindIO))
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, int64(2), w.Len())
}
