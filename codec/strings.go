package codec

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/amqp-codec/errors"
)

// MaxShortStringSize is the longest value a short string length octet can carry.
const MaxShortStringSize = math.MaxUint8

// EncodeShortString writes a 1-byte length and the bytes of s. Strings longer
// than 255 bytes are rejected and nothing is written.
func (c *Codec) EncodeShortString(s string) error {
	if len(s) > MaxShortStringSize {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			GoType("string").
			WireType(KindShortString.String()).
			Value(len(s)).
			Detail("length %d exceeds %d", len(s), MaxShortStringSize).
			Build()
	}
	if err := c.writeU8(uint8(len(s))); err != nil {
		return err
	}
	return c.writeString(s)
}

func (c *Codec) DecodeShortString() (string, error) {
	n, err := c.readU8()
	if err != nil {
		return "", err
	}
	b, err := c.readBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeLongString writes a 4-byte unsigned length and the bytes of s.
func (c *Codec) EncodeLongString(s string) error {
	if err := checkLongLength(len(s), "string"); err != nil {
		return err
	}
	if err := c.writeU32(uint32(len(s))); err != nil {
		return err
	}
	return c.writeString(s)
}

// EncodeLongBytes is EncodeLongString for binary payloads.
func (c *Codec) EncodeLongBytes(p []byte) error {
	if err := checkLongLength(len(p), "[]byte"); err != nil {
		return err
	}
	if err := c.writeU32(uint32(len(p))); err != nil {
		return err
	}
	return c.writeBytes(p)
}

func (c *Codec) DecodeLongString() (string, error) {
	b, err := c.DecodeLongBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeLongBytes reads a long string without converting it. Declared lengths
// above the configured maximum fail before anything is allocated.
func (c *Codec) DecodeLongBytes() ([]byte, error) {
	n, err := c.readU32()
	if err != nil {
		return nil, err
	}
	if n > c.opts.maxLongString {
		c.log.Debug("long string exceeds limit",
			zap.Uint32("declared", n),
			zap.Uint32("limit", c.opts.maxLongString),
			zap.Int64("offset", c.r.Position()))
		return nil, errors.New(errors.PhaseDecode, errors.KindOverflow).
			WireType(KindLongString.String()).
			Value(n).
			Detail("declared length %d exceeds limit %d", n, c.opts.maxLongString).
			Build()
	}
	return c.readBytes(int(n))
}

func checkLongLength(n int, goType string) error {
	if uint64(n) > math.MaxUint32 {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			GoType(goType).
			WireType(KindLongString.String()).
			Value(n).
			Detail("length %d exceeds %d", n, uint64(math.MaxUint32)).
			Build()
	}
	return nil
}
