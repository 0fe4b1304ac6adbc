// Package coerce converts dynamically typed numbers to fixed-width wire
// integers, separating values of the wrong Go type from values out of range.
//
// This package is internal to the codec.
package coerce

import "math"

// Status reports the outcome of a coercion.
type Status uint8

const (
	OK Status = iota
	WrongType
	OutOfRange
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed converts value to an integer that fits in bits (8, 16, 32 or 64)
// as two's complement.
func Signed(value any, bits uint) (int64, Status) {
	lo := int64(-1) << (bits - 1)
	hi := -(lo + 1)

	switch v := value.(type) {
	case int:
		return signedRange(v, lo, hi)
	case int8:
		return signedRange(v, lo, hi)
	case int16:
		return signedRange(v, lo, hi)
	case int32:
		return signedRange(v, lo, hi)
	case int64:
		return signedRange(v, lo, hi)
	case uint:
		return unsignedToSigned(v, hi)
	case uint8:
		return unsignedToSigned(v, hi)
	case uint16:
		return unsignedToSigned(v, hi)
	case uint32:
		return unsignedToSigned(v, hi)
	case uint64:
		return unsignedToSigned(v, hi)
	case float32:
		return floatToSigned(float64(v), lo, hi)
	case float64:
		return floatToSigned(v, lo, hi)
	}
	return 0, WrongType
}

// Unsigned converts value to a non-negative integer that fits in bits
// (8, 16, 32 or 64).
func Unsigned(value any, bits uint) (uint64, Status) {
	hi := uint64(math.MaxUint64) >> (64 - bits)

	switch v := value.(type) {
	case uint:
		return unsignedRange(v, hi)
	case uint8:
		return unsignedRange(v, hi)
	case uint16:
		return unsignedRange(v, hi)
	case uint32:
		return unsignedRange(v, hi)
	case uint64:
		return unsignedRange(v, hi)
	case int:
		return signedToUnsigned(v, hi)
	case int8:
		return signedToUnsigned(v, hi)
	case int16:
		return signedToUnsigned(v, hi)
	case int32:
		return signedToUnsigned(v, hi)
	case int64:
		return signedToUnsigned(v, hi)
	case float32:
		return floatToUnsigned(float64(v), hi)
	case float64:
		return floatToUnsigned(v, hi)
	}
	return 0, WrongType
}

func signedRange[T signed](v T, lo, hi int64) (int64, Status) {
	if int64(v) < lo || int64(v) > hi {
		return 0, OutOfRange
	}
	return int64(v), OK
}

func unsignedToSigned[T unsigned](v T, hi int64) (int64, Status) {
	if uint64(v) > uint64(hi) {
		return 0, OutOfRange
	}
	return int64(v), OK
}

func unsignedRange[T unsigned](v T, hi uint64) (uint64, Status) {
	if uint64(v) > hi {
		return 0, OutOfRange
	}
	return uint64(v), OK
}

func signedToUnsigned[T signed](v T, hi uint64) (uint64, Status) {
	if v < 0 || uint64(v) > hi {
		return 0, OutOfRange
	}
	return uint64(v), OK
}

func floatToSigned(v float64, lo, hi int64) (int64, Status) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, WrongType
	}
	// float64(hi) rounds up for 64 bits, so the upper bound is exclusive there
	if v < float64(lo) || v >= float64(hi)+1 {
		return 0, OutOfRange
	}
	return int64(v), OK
}

func floatToUnsigned(v float64, hi uint64) (uint64, Status) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, WrongType
	}
	if v < 0 || v >= float64(hi)+1 {
		return 0, OutOfRange
	}
	return uint64(v), OK
}
