// Package codec encodes and decodes AMQP 0-9-1 wire values.
//
// A Codec is bound to one byte stream and converts between Go values and the
// big-endian wire forms used in AMQP method frames and field tables:
//
//	┌───────────────────────────────────────────────────────┐
//	│ Go Value ←→ [Codec] ←→ Stream (io.Reader + io.Writer) │
//	└───────────────────────────────────────────────────────┘
//
// # Wire Types
//
//	Kind              Tag  Payload               Go type
//	────────────────────────────────────────────────────────────────
//	bit               -    packed, LSB first     bool
//	boolean           t    1 octet, 0 or 1       bool
//	short-short-int   b    1 octet               int8
//	short-short-uint  B    1 octet               uint8
//	short-int         U    2 octets              int16
//	short-uint        u    2 octets              uint16
//	long-int          I    4 octets              int32
//	long-uint         i    4 octets              uint32
//	long-long-int     L    8 octets              int64
//	long-long-uint    l    8 octets              uint64
//	float             f    IEEE 754 binary32     float32
//	double            d    IEEE 754 binary64     float64
//	decimal-value     D    scale u8 + int32      decimal.Decimal
//	short-string      s    u8 length + bytes     ShortString
//	long-string       S    u32 length + bytes    string
//	field-array       A    i32 size + values     Array
//	timestamp         T    u64 seconds           Timestamp
//	field-table       F    u32 size + pairs      Table
//	void              V    none                  nil
//
// # Bit Fields
//
// Consecutive bits share octets. EncodeBit only buffers; the packed octets are
// written by the next non-bit write or by Flush. DecodeBit loads an octet when
// needed and any non-bit read discards what is left of it, so N bits always
// occupy ⌈N/8⌉ octets on both sides.
//
// # Containers
//
// Field tables and arrays are size-prefixed. Encoding builds the body in
// memory to compute the size. Decoding reads elements until the declared size
// is reached and fails with a framing error unless it is met exactly.
//
// # Thread Safety
//
// A Codec is not safe for concurrent use. Use one per connection direction.
//
// # Error Handling
//
// All failures are *errors.Error values carrying a Phase and a Kind:
//
//	if errors.HasKind(err, errors.KindEndOfStream) {
//	    // wait for more input
//	}
//
// Errors inside containers carry the key and index path to the failing value,
// for example "headers.x-death[0].reason".
package codec
