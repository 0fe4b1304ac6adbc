package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wippyai/amqp-codec/codec/internal/coerce"
	"github.com/wippyai/amqp-codec/codec/internal/types"
	"github.com/wippyai/amqp-codec/errors"
)

// EncodeFieldValue writes the type tag for v followed by its payload.
//
// Go types map to tags as follows: bool 't', int8 'b', uint8 'B', int16 'U',
// uint16 'u', int32 and int 'I', uint32 'i', int64 'L', uint64 'l',
// float32 'f', float64 'd', decimal.Decimal 'D', ShortString 's',
// string and []byte 'S', Array and []any 'A', Timestamp and time.Time 'T',
// Table and map[string]any 'F', nil 'V'. An int outside the int32 range is
// an overflow error rather than a silent widening.
func (c *Codec) EncodeFieldValue(v any) error {
	switch v := v.(type) {
	case nil:
		return c.writeU8(KindVoid.Tag())
	case bool:
		return c.tagged(KindBoolean, func() error { return c.EncodeBoolean(v) })
	case int8:
		return c.tagged(KindShortShortInt, func() error { return c.EncodeShortShortInt(v) })
	case uint8:
		return c.tagged(KindShortShortUint, func() error { return c.EncodeShortShortUint(v) })
	case int16:
		return c.tagged(KindShortInt, func() error { return c.EncodeShortInt(v) })
	case uint16:
		return c.tagged(KindShortUint, func() error { return c.EncodeShortUint(v) })
	case int32:
		return c.tagged(KindLongInt, func() error { return c.EncodeLongInt(v) })
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return errors.Overflow(errors.PhaseEncode, nil, v, KindLongInt.String())
		}
		return c.tagged(KindLongInt, func() error { return c.EncodeLongInt(int32(v)) })
	case uint32:
		return c.tagged(KindLongUint, func() error { return c.EncodeLongUint(v) })
	case int64:
		return c.tagged(KindLongLongInt, func() error { return c.EncodeLongLongInt(v) })
	case uint64:
		return c.tagged(KindLongLongUint, func() error { return c.EncodeLongLongUint(v) })
	case float32:
		return c.tagged(KindFloat, func() error { return c.EncodeFloat(v) })
	case float64:
		return c.tagged(KindDouble, func() error { return c.EncodeDouble(v) })
	case decimal.Decimal:
		// validate before the tag goes out
		if _, _, err := decimalParts(v); err != nil {
			return err
		}
		return c.tagged(KindDecimal, func() error { return c.EncodeDecimal(v) })
	case ShortString:
		if len(v) > MaxShortStringSize {
			return c.EncodeShortString(string(v))
		}
		return c.tagged(KindShortString, func() error { return c.EncodeShortString(string(v)) })
	case string:
		return c.tagged(KindLongString, func() error { return c.EncodeLongString(v) })
	case []byte:
		return c.tagged(KindLongString, func() error { return c.EncodeLongBytes(v) })
	case Array:
		return c.tagged(KindFieldArray, func() error { return c.EncodeFieldArray(v) })
	case []any:
		return c.tagged(KindFieldArray, func() error { return c.EncodeFieldArray(Array(v)) })
	case Timestamp:
		return c.tagged(KindTimestamp, func() error { return c.EncodeTimestamp(v) })
	case time.Time:
		ts, err := asTimestamp(v)
		if err != nil {
			return err
		}
		return c.tagged(KindTimestamp, func() error { return c.EncodeTimestamp(ts) })
	case Table:
		return c.tagged(KindFieldTable, func() error { return c.EncodeFieldTable(v) })
	case map[string]any:
		return c.tagged(KindFieldTable, func() error { return c.EncodeFieldTable(tableFromMap(v)) })
	}
	return errors.New(errors.PhaseEncode, errors.KindUnsupported).
		GoType(fmt.Sprintf("%T", v)).
		Detail("no field value type for Go type").
		Build()
}

func (c *Codec) tagged(kind Kind, payload func() error) error {
	if err := c.writeU8(kind.Tag()); err != nil {
		return err
	}
	return payload()
}

// DecodeFieldValue reads a type tag and the payload it announces. Unknown tags
// fail with an unknown_tag error whose Value is the tag byte.
func (c *Codec) DecodeFieldValue() (any, error) {
	tag, err := c.readU8()
	if err != nil {
		return nil, err
	}
	kind, ok := types.KindForTag(tag)
	if !ok {
		c.log.Debug("unknown field value tag",
			zap.Uint8("tag", tag),
			zap.Int64("offset", c.r.Position()-1))
		return nil, errors.UnknownTag(nil, tag)
	}
	return c.decodeKind(kind)
}

func (c *Codec) decodeKind(kind Kind) (any, error) {
	switch kind {
	case KindBoolean:
		return c.DecodeBoolean()
	case KindShortShortInt:
		return c.DecodeShortShortInt()
	case KindShortShortUint:
		return c.DecodeShortShortUint()
	case KindShortInt:
		return c.DecodeShortInt()
	case KindShortUint:
		return c.DecodeShortUint()
	case KindLongInt:
		return c.DecodeLongInt()
	case KindLongUint:
		return c.DecodeLongUint()
	case KindLongLongInt:
		return c.DecodeLongLongInt()
	case KindLongLongUint:
		return c.DecodeLongLongUint()
	case KindFloat:
		return c.DecodeFloat()
	case KindDouble:
		return c.DecodeDouble()
	case KindDecimal:
		return c.DecodeDecimal()
	case KindShortString:
		s, err := c.DecodeShortString()
		return ShortString(s), err
	case KindLongString:
		return c.DecodeLongString()
	case KindFieldArray:
		return c.DecodeFieldArray()
	case KindTimestamp:
		return c.DecodeTimestamp()
	case KindFieldTable:
		return c.DecodeFieldTable()
	case KindVoid:
		return nil, c.DecodeVoid()
	}
	return nil, errors.Unsupported(errors.PhaseDecode, "field type "+kind.String())
}

func invalidArgument(v any, kind Kind) error {
	return errors.InvalidArgument(errors.PhaseEncode, nil, fmt.Sprintf("%T", v), kind.String())
}

func coerceSigned(v any, kind Kind, bits uint) (int64, error) {
	n, status := coerce.Signed(v, bits)
	switch status {
	case coerce.WrongType:
		return 0, invalidArgument(v, kind)
	case coerce.OutOfRange:
		return 0, errors.Overflow(errors.PhaseEncode, nil, v, kind.String())
	}
	return n, nil
}

func coerceUnsigned(v any, kind Kind, bits uint) (uint64, error) {
	n, status := coerce.Unsigned(v, bits)
	switch status {
	case coerce.WrongType:
		return 0, invalidArgument(v, kind)
	case coerce.OutOfRange:
		return 0, errors.Overflow(errors.PhaseEncode, nil, v, kind.String())
	}
	return n, nil
}

func asTimestamp(v any) (Timestamp, error) {
	switch t := v.(type) {
	case Timestamp:
		return t, nil
	case time.Time:
		if t.Unix() < 0 {
			return 0, errors.Overflow(errors.PhaseEncode, nil, t, KindTimestamp.String())
		}
		return Timestamp(t.Unix()), nil
	}
	n, err := coerceUnsigned(v, KindTimestamp, 64)
	return Timestamp(n), err
}
