package codec

import (
	"bytes"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/amqp-codec/errors"
)

// EncodeFieldArray writes a 4-byte signed body size followed by each element
// as a tagged field value.
func (c *Codec) EncodeFieldArray(a Array) error {
	var body bytes.Buffer
	sc := c.scratch(&body)
	for i, v := range a {
		if err := sc.EncodeFieldValue(v); err != nil {
			return errors.Prefix(err, indexSegment(i))
		}
	}
	if body.Len() > math.MaxInt32 {
		return errors.Overflow(errors.PhaseEncode, nil, body.Len(), KindFieldArray.String())
	}
	if err := c.writeU32(uint32(body.Len())); err != nil {
		return err
	}
	return c.writeBytes(body.Bytes())
}

// DecodeFieldArray reads a 4-byte signed size and then field values until the
// consumed byte count reaches it. The count must then equal the size exactly;
// anything else, including a negative size, is a framing error.
func (c *Codec) DecodeFieldArray() (Array, error) {
	raw, err := c.readU32()
	if err != nil {
		return nil, err
	}
	declared := int64(int32(raw))
	start := c.r.Position()

	a := Array{}
	for c.r.Position()-start < declared {
		v, err := c.DecodeFieldValue()
		if err != nil {
			return nil, errors.Prefix(err, indexSegment(len(a)))
		}
		a = append(a, v)
	}

	if consumed := c.r.Position() - start; consumed != declared {
		c.log.Debug("field array size mismatch",
			zap.Int64("declared", declared),
			zap.Int64("consumed", consumed))
		return nil, errors.FramingMismatch(nil, KindFieldArray.String(), declared, consumed)
	}
	return a, nil
}

func asArray(v any) (Array, bool) {
	switch a := v.(type) {
	case Array:
		return a, true
	case []any:
		return Array(a), true
	case nil:
		return nil, true
	}
	return nil, false
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
