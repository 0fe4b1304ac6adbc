package types

type Kind uint8

const (
	KindBit Kind = iota
	KindBoolean
	KindShortShortInt
	KindShortShortUint
	KindShortInt
	KindShortUint
	KindLongInt
	KindLongUint
	KindLongLongInt
	KindLongLongUint
	KindFloat
	KindDouble
	KindDecimal
	KindShortString
	KindLongString
	KindFieldArray
	KindTimestamp
	KindFieldTable
	KindVoid

	kindCount
)

type kindInfo struct {
	name string
	tag  byte
	size int
}

// size is the fixed payload width in bytes, or -1 for variable width.
var kinds = [...]kindInfo{
	KindBit:            {"bit", 0, 0},
	KindBoolean:        {"boolean", 't', 1},
	KindShortShortInt:  {"short-short-int", 'b', 1},
	KindShortShortUint: {"short-short-uint", 'B', 1},
	KindShortInt:       {"short-int", 'U', 2},
	KindShortUint:      {"short-uint", 'u', 2},
	KindLongInt:        {"long-int", 'I', 4},
	KindLongUint:       {"long-uint", 'i', 4},
	KindLongLongInt:    {"long-long-int", 'L', 8},
	KindLongLongUint:   {"long-long-uint", 'l', 8},
	KindFloat:          {"float", 'f', 4},
	KindDouble:         {"double", 'd', 8},
	KindDecimal:        {"decimal-value", 'D', 5},
	KindShortString:    {"short-string", 's', -1},
	KindLongString:     {"long-string", 'S', -1},
	KindFieldArray:     {"field-array", 'A', -1},
	KindTimestamp:      {"timestamp", 'T', 8},
	KindFieldTable:     {"field-table", 'F', -1},
	KindVoid:           {"void", 'V', 0},
}

var byTag = func() (t [256]Kind) {
	for i := range t {
		t[i] = kindCount
	}
	for k := KindBoolean; k < kindCount; k++ {
		t[kinds[k].tag] = k
	}
	return t
}()

func (k Kind) String() string {
	if k.Valid() {
		return kinds[k].name
	}
	return "unknown"
}

func (k Kind) Valid() bool {
	return k < kindCount
}

// Tag returns the field value type tag. Bits have no tag and return 0.
func (k Kind) Tag() byte {
	if k.Valid() {
		return kinds[k].tag
	}
	return 0
}

// FixedSize returns the payload width and whether it is fixed.
func (k Kind) FixedSize() (int, bool) {
	if !k.Valid() || kinds[k].size < 0 {
		return 0, false
	}
	return kinds[k].size, true
}

// KindForTag resolves a type tag. The second result is false for bytes
// outside the tag table.
func KindForTag(tag byte) (Kind, bool) {
	k := byTag[tag]
	return k, k != kindCount
}
