package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitPacking(t *testing.T) {
	tests := []struct {
		name string
		bits []bool
		want []byte
	}{
		{"none", nil, []byte{}},
		{"one set", []bool{true}, []byte{0x01}},
		{"one clear", []bool{false}, []byte{0x00}},
		{"lsb first", []bool{true, false, true}, []byte{0x05}},
		{"seven", []bool{false, false, false, false, false, false, true}, []byte{0x40}},
		{"eight", []bool{true, true, true, true, true, true, true, true}, []byte{0xff}},
		{"nine", []bool{true, true, true, true, true, true, true, true, true}, []byte{0xff, 0x01}},
		{"high bit of second octet", append(make([]bool, 15), true), []byte{0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := New(&buf)
			for _, b := range tt.bits {
				c.EncodeBit(b)
			}
			require.Equal(t, int64(0), c.BytesWritten())
			require.NoError(t, c.Flush())
			require.Equal(t, tt.want, append([]byte{}, buf.Bytes()...))
			require.Equal(t, BitsEmpty, c.OutgoingBits())

			d := New(bytes.NewBuffer(tt.want))
			for i, want := range tt.bits {
				got, err := d.DecodeBit()
				require.NoError(t, err)
				require.Equal(t, want, got, "bit %d", i)
			}
		})
	}
}

func TestBitCountOccupiesCeilOctets(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16, 17, 64} {
		var buf bytes.Buffer
		c := New(&buf)
		for i := 0; i < n; i++ {
			c.EncodeBit(i%3 == 0)
		}
		require.NoError(t, c.Flush())
		require.Equal(t, (n+7)/8, buf.Len(), "n=%d", n)

		d := New(&buf)
		for i := 0; i < n; i++ {
			got, err := d.DecodeBit()
			require.NoError(t, err)
			require.Equal(t, i%3 == 0, got, "n=%d bit %d", n, i)
		}
	}
}

func TestBitsFlushedByOtherWrites(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.EncodeBit(true)
	require.NoError(t, c.EncodeOctet(7))
	c.EncodeBit(true)
	c.EncodeBit(true)
	require.NoError(t, c.EncodeShortStr("q"))
	c.EncodeBit(false)
	c.EncodeBit(true)
	require.NoError(t, c.Flush())

	require.Equal(t, []byte{0x01, 0x07, 0x03, 0x01, 'q', 0x02}, buf.Bytes())
}

func TestBitsDiscardedByOtherReads(t *testing.T) {
	c := New(bytes.NewBuffer([]byte{0xff, 0x07, 0x03, 0x01, 'q', 0x02}))

	b, err := c.DecodeBit()
	require.NoError(t, err)
	require.True(t, b)
	require.Equal(t, BitsPartial, c.IncomingBits())

	o, err := c.DecodeOctet()
	require.NoError(t, err)
	require.Equal(t, uint8(7), o)
	require.Equal(t, BitsEmpty, c.IncomingBits())

	b, err = c.DecodeBit()
	require.NoError(t, err)
	require.True(t, b)
	b, err = c.DecodeBit()
	require.NoError(t, err)
	require.True(t, b)

	s, err := c.DecodeShortStr()
	require.NoError(t, err)
	require.Equal(t, "q", s)

	b, err = c.DecodeBit()
	require.NoError(t, err)
	require.False(t, b)
	b, err = c.DecodeBit()
	require.NoError(t, err)
	require.True(t, b)
	require.Equal(t, int64(6), c.BytesRead())
}

func TestVoidEndsBitRun(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.EncodeBit(true)
	require.NoError(t, c.EncodeVoid())
	c.EncodeBit(true)
	require.NoError(t, c.Flush())
	require.Equal(t, []byte{0x01, 0x01}, buf.Bytes())
}

func TestOutgoingBitsState(t *testing.T) {
	var b OutgoingBits
	require.Equal(t, BitsEmpty, b.State())

	b.Push(true)
	require.Equal(t, BitsPartial, b.State())
	require.Equal(t, 1, b.Len())

	for i := 0; i < 7; i++ {
		b.Push(false)
	}
	require.Equal(t, BitsFull, b.State())

	b.Push(true)
	require.Equal(t, BitsPartial, b.State())

	require.Equal(t, []byte{0x01, 0x01}, b.Take())
	require.Equal(t, BitsEmpty, b.State())
	require.Equal(t, 0, b.Len())
}

func TestIncomingBitsState(t *testing.T) {
	var b IncomingBits
	require.Equal(t, BitsEmpty, b.State())
	_, ok := b.Pop()
	require.False(t, ok)

	b.Load(0x81)
	require.Equal(t, BitsFull, b.State())
	require.Equal(t, 8, b.Len())

	v, ok := b.Pop()
	require.True(t, ok)
	require.True(t, v)
	require.Equal(t, BitsPartial, b.State())

	for i := 0; i < 6; i++ {
		v, ok = b.Pop()
		require.True(t, ok)
		require.False(t, v)
	}
	v, ok = b.Pop()
	require.True(t, ok)
	require.True(t, v)
	require.Equal(t, BitsEmpty, b.State())

	b.Load(0xff)
	b.Reset()
	require.Equal(t, BitsEmpty, b.State())
}

func TestBitStateString(t *testing.T) {
	require.Equal(t, "empty", BitsEmpty.String())
	require.Equal(t, "partial", BitsPartial.String())
	require.Equal(t, "full", BitsFull.String())
	require.Equal(t, "unknown", BitState(9).String())
}
