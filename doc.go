// Package amqpcodec provides a Go implementation of the AMQP 0-9-1 wire type system.
//
// The library converts Go values to their AMQP 0-9-1 byte encoding and back,
// one value at a time, against an already-positioned byte stream. It is the
// leaf layer beneath frame and method encoders.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	amqpcodec/           Root package with the Stream and Flusher interfaces
//	├── codec/           Codec facade: primitives, bits, strings, decimals,
//	│                    field tables, field arrays, field values
//	├── errors/          Structured error types for debugging
//	└── cmd/amqpdump/    Command line decoder for captured AMQP payloads
//
// # Quick Start
//
// Encode a method's arguments and read them back:
//
//	var buf bytes.Buffer
//	c := codec.New(&buf)
//
//	c.EncodeShortUint(0)                 // reserved
//	c.EncodeShortString("amq.direct")    // exchange
//	c.EncodeBit(true)                    // passive
//	c.EncodeBit(false)                   // durable
//	c.EncodeFieldTable(codec.Table{
//	    {Key: "x-match", Value: "all"},
//	    {Key: "x-priority", Value: int32(10)},
//	})
//	if err := c.Flush(); err != nil {
//	    log.Fatal(err)
//	}
//
//	d := codec.New(&buf)
//	reserved, _ := d.DecodeShortUint()
//	exchange, _ := d.DecodeShortString()
//	passive, _ := d.DecodeBit()
//
// # Wire Types
//
// The full field value type table is supported in both directions:
//
//   - Integers: signed and unsigned 8/16/32/64-bit, big-endian
//   - Floats: IEEE 754 single and double precision
//   - Decimal: unsigned scale octet plus signed 32-bit mantissa
//   - Strings: short (1-byte length) and long (4-byte length)
//   - Containers: field tables and field arrays, size prefixed
//   - Timestamp (seconds) and void
//
// Consecutive bit fields are packed LSB first, eight per octet.
package amqpcodec
