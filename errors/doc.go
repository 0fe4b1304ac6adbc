// Package errors provides structured error types for the AMQP codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path inside nested tables and
// arrays, Go/AMQP type names, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		Path("headers", "x-match").
//		GoType("string").
//		WireType("shortstr").
//		Detail("length %d exceeds 255", n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.EndOfStream(errors.PhaseDecode, 4, io.ErrUnexpectedEOF)
//	err := errors.UnknownTag(path, 'x')
//	err := errors.FramingMismatch(path, "field array", 12, 10)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
