package codec

import (
	"bytes"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/amqp-codec/errors"
)

// EncodeFieldTable writes t as a 4-byte unsigned body size followed by
// (short string key, tagged field value) pairs in entry order. The body is
// assembled in memory first so the size is exact.
func (c *Codec) EncodeFieldTable(t Table) error {
	var body bytes.Buffer
	sc := c.scratch(&body)
	for _, e := range t {
		if err := sc.EncodeShortString(e.Key); err != nil {
			return errors.Prefix(err, e.Key)
		}
		if err := sc.EncodeFieldValue(e.Value); err != nil {
			return errors.Prefix(err, e.Key)
		}
	}
	if uint64(body.Len()) > math.MaxUint32 {
		return errors.Overflow(errors.PhaseEncode, nil, body.Len(), KindFieldTable.String())
	}
	if err := c.writeU32(uint32(body.Len())); err != nil {
		return err
	}
	return c.writeBytes(body.Bytes())
}

// DecodeFieldTable reads a 4-byte unsigned size and then key/value pairs until
// exactly that many bytes are consumed. A pair that runs past the declared
// size is a framing error. A repeated key keeps its first position and its
// last value.
func (c *Codec) DecodeFieldTable() (Table, error) {
	size, err := c.readU32()
	if err != nil {
		return nil, err
	}
	start := c.r.Position()
	declared := int64(size)

	t := Table{}
	index := map[string]int{}
	for c.r.Position()-start < declared {
		key, err := c.DecodeShortString()
		if err != nil {
			return nil, err
		}
		v, err := c.DecodeFieldValue()
		if err != nil {
			return nil, errors.Prefix(err, key)
		}
		if i, ok := index[key]; ok {
			t[i].Value = v
			continue
		}
		index[key] = len(t)
		t = append(t, TableEntry{Key: key, Value: v})
	}

	if consumed := c.r.Position() - start; consumed != declared {
		c.log.Debug("field table size mismatch",
			zap.Int64("declared", declared),
			zap.Int64("consumed", consumed))
		return nil, errors.FramingMismatch(nil, KindFieldTable.String(), declared, consumed)
	}
	return t, nil
}

func asTable(v any) (Table, bool) {
	switch t := v.(type) {
	case Table:
		return t, true
	case map[string]any:
		return tableFromMap(t), true
	case nil:
		return nil, true
	}
	return nil, false
}

// tableFromMap orders entries by key; maps carry no order of their own.
func tableFromMap(m map[string]any) Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	t := make(Table, len(keys))
	for i, k := range keys {
		t[i] = TableEntry{Key: k, Value: m[k]}
	}
	return t
}
