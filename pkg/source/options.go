// Copyright © 2018 One Concern

package source

import (
	"io"

	"go.uber.org/zap"
)

// Option is a functor to open a line source with some options
type Option func(*options)

type options struct {
	stdin      io.Reader
	bufferSize int
	separator  byte
	logger     *zap.Logger
}

func defaultOptions() *options {
	return &options{
		bufferSize: DefaultBufferSize,
		separator:  '\n',
		logger:     zap.NewNop(),
	}
}

// WithStdin sets the reader used when the designator is "-". Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithBufferSize sets the size of the read buffer. Non-positive values are ignored.
func WithBufferSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.bufferSize = size
		}
	}
}

// WithZeroTerminated separates records with NUL bytes rather than newlines
func WithZeroTerminated(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.separator = 0
		} else {
			o.separator = '\n'
		}
	}
}

// WithLogger sets a logger for the source
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
