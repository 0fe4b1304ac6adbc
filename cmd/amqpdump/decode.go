package main

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/wippyai/amqp-codec/codec"
	"github.com/wippyai/amqp-codec/errors"
)

// target is one decodable unit: a field type, a tagged field value, or a
// fixed-size group of bits.
type target struct {
	name   string
	kind   codec.Kind
	tagged bool
	bits   int
}

var targetAliases = map[string]codec.Kind{
	"table":    codec.KindFieldTable,
	"array":    codec.KindFieldArray,
	"shortstr": codec.KindShortStr,
	"longstr":  codec.KindLongStr,
	"decimal":  codec.KindDecimal,
	"octet":    codec.KindOctet,
	"short":    codec.KindShort,
	"long":     codec.KindLong,
	"longlong": codec.KindLongLong,
}

// parseTarget accepts an alias, "value" for tagged field values, "bits:N" for
// groups of N bits, or a field type name such as "long-uint".
func parseTarget(s string) (target, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "value" {
		return target{name: s, tagged: true}, nil
	}
	if k, ok := targetAliases[s]; ok {
		return target{name: s, kind: k}, nil
	}
	if rest, ok := strings.CutPrefix(s, "bits:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			return target{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Value(s).
				Detail("bit count must be a positive integer, got %q", rest).
				Build()
		}
		return target{name: s, kind: codec.KindBit, bits: n}, nil
	}
	for k := codec.KindBoolean; k <= codec.KindVoid; k++ {
		if k.String() != s {
			continue
		}
		if size, fixed := k.FixedSize(); fixed && size == 0 {
			return target{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Value(s).
				Detail("type %q consumes no input", s).
				Build()
		}
		return target{name: s, kind: k}, nil
	}
	return target{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Value(s).
		Detail("unknown type %q", s).
		Build()
}

// decode reads one unit. A bit group always ends on an octet boundary.
func (t target) decode(c *codec.Codec) (any, error) {
	switch {
	case t.tagged:
		return c.DecodeFieldValue()
	case t.bits > 0:
		bits := make([]bool, t.bits)
		for i := range bits {
			b, err := c.DecodeBit()
			if err != nil {
				return nil, errors.Prefix(err, "["+strconv.Itoa(i)+"]")
			}
			bits[i] = b
		}
		return bits, c.DecodeVoid()
	}
	return c.Decode(t.kind)
}

// decodeAll decodes t repeatedly until data is used up. It returns the values
// decoded so far and the number of bytes consumed, also on error.
func decodeAll(data []byte, t target, opts ...codec.Option) ([]any, int64, error) {
	c := codec.New(bytes.NewBuffer(data), opts...)
	var values []any
	for c.BytesRead() < int64(len(data)) {
		start := c.BytesRead()
		v, err := t.decode(c)
		if err != nil {
			return values, start, err
		}
		if c.BytesRead() == start {
			return values, start, errors.InvalidInput(errors.PhaseDecode, t.name+" consumed no input")
		}
		values = append(values, v)
	}
	return values, c.BytesRead(), nil
}

// parseHex decodes hex text. Whitespace, colons and a leading 0x are ignored.
func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "hex input")
	}
	return data, nil
}
