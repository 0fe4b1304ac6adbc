// Package types holds the closed enumeration of AMQP field types and the
// static type tag table used to dispatch field values.
//
// This package is internal to the codec.
package types
