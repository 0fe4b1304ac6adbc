package codec

import "go.uber.org/zap"

// MaxLongStringSize is the default upper bound on the declared length of a
// decoded long string.
const MaxLongStringSize = 1 << 30

// Option configures a Codec.
type Option func(*options)

type options struct {
	log           *zap.Logger
	maxLongString uint32
}

func defaultOptions() options {
	return options{
		log:           Logger(),
		maxLongString: MaxLongStringSize,
	}
}

// WithLogger sets the logger used for diagnostics on corrupt input.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxLongStringSize bounds the declared length a decoder accepts for long
// strings before allocating. Zero keeps the default.
func WithMaxLongStringSize(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLongString = n
		}
	}
}
