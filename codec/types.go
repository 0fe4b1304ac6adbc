package codec

import (
	"time"

	"github.com/wippyai/amqp-codec/codec/internal/types"
)

type Kind = types.Kind

const (
	KindBit            = types.KindBit
	KindBoolean        = types.KindBoolean
	KindShortShortInt  = types.KindShortShortInt
	KindShortShortUint = types.KindShortShortUint
	KindShortInt       = types.KindShortInt
	KindShortUint      = types.KindShortUint
	KindLongInt        = types.KindLongInt
	KindLongUint       = types.KindLongUint
	KindLongLongInt    = types.KindLongLongInt
	KindLongLongUint   = types.KindLongLongUint
	KindFloat          = types.KindFloat
	KindDouble         = types.KindDouble
	KindDecimal        = types.KindDecimal
	KindShortString    = types.KindShortString
	KindLongString     = types.KindLongString
	KindFieldArray     = types.KindFieldArray
	KindTimestamp      = types.KindTimestamp
	KindFieldTable     = types.KindFieldTable
	KindVoid           = types.KindVoid
)

// AMQP method field domains.
const (
	KindOctet    = KindShortShortUint
	KindShort    = KindShortUint
	KindLong     = KindLongUint
	KindLongLong = KindLongLongUint
	KindShortStr = KindShortString
	KindLongStr  = KindLongString
	KindTable    = KindFieldTable
)

// KindForTag resolves a field value type tag.
func KindForTag(tag byte) (Kind, bool) {
	return types.KindForTag(tag)
}

// ShortString is a field value carried with tag 's'. Plain Go strings are
// carried as long strings.
type ShortString string

// Timestamp is a POSIX time in seconds, carried with tag 'T'.
type Timestamp uint64

// TimestampOf converts t to whole seconds. Times before the epoch clamp to 0.
func TimestampOf(t time.Time) Timestamp {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return Timestamp(s)
}

// Time returns ts as a UTC time.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// Array is a field array: an ordered sequence of field values.
type Array []any

// TableEntry is one key/value pair of a Table.
type TableEntry struct {
	Key   string
	Value any
}

// Table is a field table. Keys are unique; entry order is kept so that a
// decoded table re-encodes to the same bytes.
type Table []TableEntry

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t)
}

// Get returns the value stored under key.
func (t Table) Get(key string) (any, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key in place, or appends a new entry.
func (t *Table) Set(key string, value any) {
	for i := range *t {
		if (*t)[i].Key == key {
			(*t)[i].Value = value
			return
		}
	}
	*t = append(*t, TableEntry{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (t *Table) Delete(key string) bool {
	for i := range *t {
		if (*t)[i].Key == key {
			*t = append((*t)[:i], (*t)[i+1:]...)
			return true
		}
	}
	return false
}

// Keys returns the keys in entry order.
func (t Table) Keys() []string {
	keys := make([]string, len(t))
	for i, e := range t {
		keys[i] = e.Key
	}
	return keys
}

// Map returns the entries as a map. Nested tables are left as Table.
func (t Table) Map() map[string]any {
	m := make(map[string]any, len(t))
	for _, e := range t {
		m[e.Key] = e.Value
	}
	return m
}
