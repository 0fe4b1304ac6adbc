package codec

import (
	"bytes"
	"math"

	"go.uber.org/zap"

	amqpcodec "github.com/wippyai/amqp-codec"
	"github.com/wippyai/amqp-codec/codec/internal/wire"
	"github.com/wippyai/amqp-codec/errors"
)

type Stream = amqpcodec.Stream
type Flusher = amqpcodec.Flusher

// Codec encodes and decodes AMQP wire values against one stream.
//
// Bit fields are buffered: pending outgoing bits are packed and written before
// any other write and on Flush. Any non-bit read discards the unread bits of
// the last octet loaded by DecodeBit, mirroring the padding on encode.
//
// A Codec is not safe for concurrent use. After any error its bit and byte
// state is undefined and it should be discarded.
type Codec struct {
	stream Stream
	r      *wire.Reader
	w      *wire.Writer
	log    *zap.Logger
	opts   options
	out    OutgoingBits
	in     IncomingBits
}

// New binds a Codec to s.
func New(s Stream, opts ...Option) *Codec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Codec{
		stream: s,
		r:      wire.NewReader(s),
		w:      wire.NewWriter(s),
		log:    o.log,
		opts:   o,
	}
}

// scratch returns a codec with the same options writing into buf, used to
// assemble size-prefixed container bodies.
func (c *Codec) scratch(buf *bytes.Buffer) *Codec {
	return &Codec{
		stream: buf,
		r:      wire.NewReader(buf),
		w:      wire.NewWriter(buf),
		log:    c.log,
		opts:   c.opts,
	}
}

// BytesRead returns the number of bytes consumed from the stream.
func (c *Codec) BytesRead() int64 {
	return c.r.Position()
}

// BytesWritten returns the number of bytes written to the stream. Buffered
// bits are not counted until they are flushed.
func (c *Codec) BytesWritten() int64 {
	return c.w.Len()
}

// OutgoingBits reports the state of the pending bit buffer.
func (c *Codec) OutgoingBits() BitState {
	return c.out.State()
}

// IncomingBits reports the state of the unread bit buffer.
func (c *Codec) IncomingBits() BitState {
	return c.in.State()
}

// Flush writes pending bits and flushes the stream if it buffers writes.
func (c *Codec) Flush() error {
	if err := c.flushBits(); err != nil {
		return retag(err, errors.PhaseFlush)
	}
	if f, ok := c.stream.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.IO(errors.PhaseFlush, err)
		}
	}
	return nil
}

func (c *Codec) flushBits() error {
	if c.out.Len() == 0 {
		return nil
	}
	return c.w.WriteBytes(c.out.Take())
}

// Encode writes v as the field type kind. Integer kinds accept any Go integer
// that fits the wire width; values out of range fail instead of truncating.
func (c *Codec) Encode(kind Kind, v any) error {
	switch kind {
	case KindBit:
		b, ok := v.(bool)
		if !ok {
			return invalidArgument(v, kind)
		}
		c.EncodeBit(b)
		return nil
	case KindBoolean:
		b, ok := v.(bool)
		if !ok {
			return invalidArgument(v, kind)
		}
		return c.EncodeBoolean(b)
	case KindShortShortInt:
		n, err := coerceSigned(v, kind, 8)
		if err != nil {
			return err
		}
		return c.EncodeShortShortInt(int8(n))
	case KindShortShortUint:
		n, err := coerceUnsigned(v, kind, 8)
		if err != nil {
			return err
		}
		return c.EncodeShortShortUint(uint8(n))
	case KindShortInt:
		n, err := coerceSigned(v, kind, 16)
		if err != nil {
			return err
		}
		return c.EncodeShortInt(int16(n))
	case KindShortUint:
		n, err := coerceUnsigned(v, kind, 16)
		if err != nil {
			return err
		}
		return c.EncodeShortUint(uint16(n))
	case KindLongInt:
		n, err := coerceSigned(v, kind, 32)
		if err != nil {
			return err
		}
		return c.EncodeLongInt(int32(n))
	case KindLongUint:
		n, err := coerceUnsigned(v, kind, 32)
		if err != nil {
			return err
		}
		return c.EncodeLongUint(uint32(n))
	case KindLongLongInt:
		n, err := coerceSigned(v, kind, 64)
		if err != nil {
			return err
		}
		return c.EncodeLongLongInt(n)
	case KindLongLongUint:
		n, err := coerceUnsigned(v, kind, 64)
		if err != nil {
			return err
		}
		return c.EncodeLongLongUint(n)
	case KindFloat:
		switch f := v.(type) {
		case float32:
			return c.EncodeFloat(f)
		case float64:
			// only doubles that survive the narrowing unchanged
			if float64(float32(f)) == f || math.IsNaN(f) {
				return c.EncodeFloat(float32(f))
			}
		}
		return invalidArgument(v, kind)
	case KindDouble:
		switch f := v.(type) {
		case float64:
			return c.EncodeDouble(f)
		case float32:
			return c.EncodeDouble(float64(f))
		}
		return invalidArgument(v, kind)
	case KindDecimal:
		d, ok := asDecimal(v)
		if !ok {
			return invalidArgument(v, kind)
		}
		return c.EncodeDecimal(d)
	case KindShortString:
		switch s := v.(type) {
		case string:
			return c.EncodeShortString(s)
		case ShortString:
			return c.EncodeShortString(string(s))
		case []byte:
			return c.EncodeShortString(string(s))
		}
		return invalidArgument(v, kind)
	case KindLongString:
		switch s := v.(type) {
		case string:
			return c.EncodeLongString(s)
		case ShortString:
			return c.EncodeLongString(string(s))
		case []byte:
			return c.EncodeLongBytes(s)
		case Table:
			return c.EncodeFieldTable(s)
		case map[string]any:
			return c.EncodeFieldTable(tableFromMap(s))
		}
		return invalidArgument(v, kind)
	case KindFieldArray:
		a, ok := asArray(v)
		if !ok {
			return invalidArgument(v, kind)
		}
		return c.EncodeFieldArray(a)
	case KindTimestamp:
		ts, err := asTimestamp(v)
		if err != nil {
			return err
		}
		return c.EncodeTimestamp(ts)
	case KindFieldTable:
		t, ok := asTable(v)
		if !ok {
			return invalidArgument(v, kind)
		}
		return c.EncodeFieldTable(t)
	case KindVoid:
		if v != nil {
			return invalidArgument(v, kind)
		}
		return c.EncodeVoid()
	}
	return errors.Unsupported(errors.PhaseEncode, "field type "+kind.String())
}

// Decode reads one value of the field type kind. Results use the Go types of
// DecodeFieldValue; bits decode to bool.
func (c *Codec) Decode(kind Kind) (any, error) {
	if kind == KindBit {
		return c.DecodeBit()
	}
	if !kind.Valid() {
		return nil, errors.Unsupported(errors.PhaseDecode, "field type "+kind.String())
	}
	return c.decodeKind(kind)
}

// retag moves an *errors.Error to another phase.
func retag(err error, phase errors.Phase) error {
	if e, ok := err.(*errors.Error); ok {
		e.Phase = phase
	}
	return err
}
