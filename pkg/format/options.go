// Copyright © 2018 One Concern

package format

import "github.com/oneconcern/linecomm/pkg/comm"

// DefaultDelimiter separates columns unless specified otherwise
const DefaultDelimiter = "\t"

// Option is a functor to build a formatter with some options
type Option func(*Formatter)

// WithVisibility selects the rendered columns. Defaults to all.
func WithVisibility(v Visibility) Option {
	return func(f *Formatter) {
		f.visibility = v
	}
}

// WithDelimiter sets the string used to offset columns. Defaults to a tab.
func WithDelimiter(d string) Option {
	return func(f *Formatter) {
		f.delimiter = d
	}
}

// WithZeroTerminated ends each output record with a NUL byte rather than a newline
func WithZeroTerminated(enabled bool) Option {
	return func(f *Formatter) {
		if enabled {
			f.terminator = 0
		} else {
			f.terminator = '\n'
		}
	}
}

// WithFormat selects the output format. Defaults to Text.
func WithFormat(format Format) Option {
	return func(f *Formatter) {
		f.format = format
	}
}

// WithColor colorizes the text of columns 2 and 3 in Text format
func WithColor(enabled bool) Option {
	return func(f *Formatter) {
		if !enabled {
			f.palette = nil
			return
		}
		f.palette = defaultPalette()
	}
}

func (f *Formatter) colorize(c comm.Column, text string) string {
	if f.palette == nil {
		return text
	}
	painter, ok := f.palette[c]
	if !ok {
		return text
	}
	return painter.Sprint(text)
}
