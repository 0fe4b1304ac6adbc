// Package wire wraps the codec's byte stream with position tracking and
// fixed-width big-endian reads and writes.
//
// Short reads are reported as end-of-stream errors. A read of zero bytes never
// touches the stream. Reads longer than 64 KiB grow their buffer as bytes
// arrive instead of allocating the requested length up front.
//
// This package is internal to the codec.
package wire
