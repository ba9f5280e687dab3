package filtex

import (
	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/listsnap"
)

type options struct {
	codec       codec.Codec
	compression listsnap.Compression
	logger      *Logger
}

// Option configures ExecutionContext construction.
type Option func(*options)

// WithCodec configures the codec used when persisting list-matcher state.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression applied to persisted
// list-matcher state.
func WithCompression(typ listsnap.Compression) Option {
	return func(o *options) {
		o.compression = typ
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
