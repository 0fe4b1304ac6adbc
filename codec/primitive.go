package codec

import (
	"math"
)

// Writes below flush pending bits first. Reads drop unread incoming bits.

func (c *Codec) writeU8(v uint8) error {
	if err := c.flushBits(); err != nil {
		return err
	}
	return c.w.WriteU8(v)
}

func (c *Codec) writeU16(v uint16) error {
	if err := c.flushBits(); err != nil {
		return err
	}
	return c.w.WriteU16(v)
}

func (c *Codec) writeU32(v uint32) error {
	if err := c.flushBits(); err != nil {
		return err
	}
	return c.w.WriteU32(v)
}

func (c *Codec) writeU64(v uint64) error {
	if err := c.flushBits(); err != nil {
		return err
	}
	return c.w.WriteU64(v)
}

func (c *Codec) writeBytes(p []byte) error {
	if err := c.flushBits(); err != nil {
		return err
	}
	return c.w.WriteBytes(p)
}

func (c *Codec) writeString(s string) error {
	if err := c.flushBits(); err != nil {
		return err
	}
	return c.w.WriteString(s)
}

func (c *Codec) readU8() (uint8, error) {
	c.in.Reset()
	return c.r.ReadU8()
}

func (c *Codec) readU16() (uint16, error) {
	c.in.Reset()
	return c.r.ReadU16()
}

func (c *Codec) readU32() (uint32, error) {
	c.in.Reset()
	return c.r.ReadU32()
}

func (c *Codec) readU64() (uint64, error) {
	c.in.Reset()
	return c.r.ReadU64()
}

func (c *Codec) readBytes(n int) ([]byte, error) {
	c.in.Reset()
	return c.r.ReadBytes(n)
}

// EncodeBit queues one bit field. Nothing is written until the next non-bit
// write or Flush.
func (c *Codec) EncodeBit(v bool) {
	c.out.Push(v)
}

// DecodeBit returns the next bit field, loading a new octet when the previous
// one is used up.
func (c *Codec) DecodeBit() (bool, error) {
	if v, ok := c.in.Pop(); ok {
		return v, nil
	}
	octet, err := c.r.ReadU8()
	if err != nil {
		return false, err
	}
	c.in.Load(octet)
	v, _ := c.in.Pop()
	return v, nil
}

func (c *Codec) EncodeBoolean(v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return c.writeU8(b)
}

// DecodeBoolean treats any non-zero octet as true.
func (c *Codec) DecodeBoolean() (bool, error) {
	b, err := c.readU8()
	return b != 0, err
}

func (c *Codec) EncodeShortShortInt(v int8) error {
	return c.writeU8(uint8(v))
}

func (c *Codec) DecodeShortShortInt() (int8, error) {
	v, err := c.readU8()
	return int8(v), err
}

func (c *Codec) EncodeShortShortUint(v uint8) error {
	return c.writeU8(v)
}

func (c *Codec) DecodeShortShortUint() (uint8, error) {
	return c.readU8()
}

func (c *Codec) EncodeShortInt(v int16) error {
	return c.writeU16(uint16(v))
}

func (c *Codec) DecodeShortInt() (int16, error) {
	v, err := c.readU16()
	return int16(v), err
}

func (c *Codec) EncodeShortUint(v uint16) error {
	return c.writeU16(v)
}

func (c *Codec) DecodeShortUint() (uint16, error) {
	return c.readU16()
}

func (c *Codec) EncodeLongInt(v int32) error {
	return c.writeU32(uint32(v))
}

func (c *Codec) DecodeLongInt() (int32, error) {
	v, err := c.readU32()
	return int32(v), err
}

func (c *Codec) EncodeLongUint(v uint32) error {
	return c.writeU32(v)
}

func (c *Codec) DecodeLongUint() (uint32, error) {
	return c.readU32()
}

func (c *Codec) EncodeLongLongInt(v int64) error {
	return c.writeU64(uint64(v))
}

func (c *Codec) DecodeLongLongInt() (int64, error) {
	v, err := c.readU64()
	return int64(v), err
}

func (c *Codec) EncodeLongLongUint(v uint64) error {
	return c.writeU64(v)
}

func (c *Codec) DecodeLongLongUint() (uint64, error) {
	return c.readU64()
}

// EncodeFloat writes the IEEE 754 bits unchanged, NaN payloads included.
func (c *Codec) EncodeFloat(v float32) error {
	return c.writeU32(math.Float32bits(v))
}

func (c *Codec) DecodeFloat() (float32, error) {
	v, err := c.readU32()
	return math.Float32frombits(v), err
}

func (c *Codec) EncodeDouble(v float64) error {
	return c.writeU64(math.Float64bits(v))
}

func (c *Codec) DecodeDouble() (float64, error) {
	v, err := c.readU64()
	return math.Float64frombits(v), err
}

func (c *Codec) EncodeTimestamp(v Timestamp) error {
	return c.writeU64(uint64(v))
}

func (c *Codec) DecodeTimestamp() (Timestamp, error) {
	v, err := c.readU64()
	return Timestamp(v), err
}

// EncodeVoid writes nothing but still ends a run of bit fields.
func (c *Codec) EncodeVoid() error {
	return c.flushBits()
}

func (c *Codec) DecodeVoid() error {
	c.in.Reset()
	return nil
}

// AMQP method field domain aliases.

func (c *Codec) EncodeOctet(v uint8) error       { return c.EncodeShortShortUint(v) }
func (c *Codec) DecodeOctet() (uint8, error)     { return c.DecodeShortShortUint() }
func (c *Codec) EncodeShort(v uint16) error      { return c.EncodeShortUint(v) }
func (c *Codec) DecodeShort() (uint16, error)    { return c.DecodeShortUint() }
func (c *Codec) EncodeLong(v uint32) error       { return c.EncodeLongUint(v) }
func (c *Codec) DecodeLong() (uint32, error)     { return c.DecodeLongUint() }
func (c *Codec) EncodeLongLong(v uint64) error   { return c.EncodeLongLongUint(v) }
func (c *Codec) DecodeLongLong() (uint64, error) { return c.DecodeLongLongUint() }
func (c *Codec) EncodeShortStr(s string) error   { return c.EncodeShortString(s) }
func (c *Codec) DecodeShortStr() (string, error) { return c.DecodeShortString() }
func (c *Codec) EncodeLongStr(s string) error    { return c.EncodeLongString(s) }
func (c *Codec) DecodeLongStr() (string, error)  { return c.DecodeLongString() }
func (c *Codec) EncodeTable(t Table) error       { return c.EncodeFieldTable(t) }
func (c *Codec) DecodeTable() (Table, error)     { return c.DecodeFieldTable() }
