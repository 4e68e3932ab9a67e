// Copyright © 2018 One Concern

// Package source presents a named file or the standard input as a lazy,
// forward-only sequence of text lines.
//
// Line terminators are trimmed. Lines which are not valid UTF-8 are
// silently dropped.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/docker/go-units"
	"github.com/oneconcern/linecomm/pkg/errors"
	"github.com/oneconcern/linecomm/pkg/source/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// Stdin is the designator for the standard input
	Stdin = "-"

	// DefaultBufferSize is the default size of the read buffer
	DefaultBufferSize = 64 * units.KiB
)

var errIsDir = errors.New("is a directory")

// Reader yields the lines of a single input, one at a time.
//
// A Reader is not restartable and is not safe for concurrent use.
type Reader struct {
	name    string
	rdr     *bufio.Reader
	closer  io.Closer
	sep     byte
	lineNo  uint64
	dropped uint64
	done    bool
	err     error
	l       *zap.Logger
}

// Open a line source. The designator is either a path on fs, or Stdin.
//
// When fs is nil, the OS file system is used.
func Open(fs afero.Fs, designator string, opts ...Option) (*Reader, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}

	r := &Reader{
		name: designator,
		sep:  o.separator,
		l:    o.logger.With(zap.String("source", designator)),
	}

	if designator == Stdin {
		in := o.stdin
		if in == nil {
			in = os.Stdin
		}
		r.rdr = bufio.NewReaderSize(in, o.bufferSize)
		r.l.Debug("opened standard input")
		return r, nil
	}

	if fs == nil {
		fs = afero.NewOsFs()
	}
	file, err := fs.Open(designator)
	if err != nil {
		return nil, status.ErrOpen.Wrap(err)
	}
	fi, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, status.ErrOpen.Wrap(err)
	}
	if fi.IsDir() {
		_ = file.Close()
		return nil, status.ErrOpen.Wrap(&os.PathError{Op: "open", Path: designator, Err: errIsDir})
	}

	r.rdr = bufio.NewReaderSize(file, o.bufferSize)
	r.closer = file
	r.l.Debug("opened file", zap.Int64("size", fi.Size()))
	return r, nil
}

// OpenPair opens both inputs of a comparison.
//
// At most one of the designators may be Stdin: this is verified before any input is opened.
func OpenPair(fs afero.Fs, first, second string, opts ...Option) (*Reader, *Reader, error) {
	if first == Stdin && second == Stdin {
		return nil, nil, status.ErrBothStdin
	}
	a, err := Open(fs, first, opts...)
	if err != nil {
		return nil, nil, err
	}
	b, err := Open(fs, second, opts...)
	if err != nil {
		_ = a.Close()
		return nil, nil, err
	}
	return a, b, nil
}

// Next yields the next line, or false when the input is exhausted. Once
// exhausted, Next keeps returning false.
func (r *Reader) Next() (string, bool) {
	for !r.done {
		raw, err := r.rdr.ReadBytes(r.sep)
		if err != nil {
			r.done = true
			if err != io.EOF {
				r.err = status.ErrRead.Wrap(fmt.Errorf("%s: %w", r.name, err))
			}
			if len(raw) == 0 {
				break
			}
		}
		r.lineNo++

		line := trimTerminator(raw, r.sep)
		if !utf8.Valid(line) {
			r.dropped++
			r.l.Debug("dropped line with invalid encoding", zap.Uint64("line", r.lineNo))
			continue
		}
		return string(line), true
	}
	return "", false
}

func trimTerminator(raw []byte, sep byte) []byte {
	n := len(raw)
	if n > 0 && raw[n-1] == sep {
		n--
		if sep == '\n' && n > 0 && raw[n-1] == '\r' {
			n--
		}
	}
	return raw[:n]
}

// Err reports the read error which ended the sequence, if any
func (r *Reader) Err() error {
	return r.err
}

// Name of the input, as designated when opened
func (r *Reader) Name() string {
	return r.name
}

// Dropped counts the lines skipped because of an invalid encoding
func (r *Reader) Dropped() uint64 {
	return r.dropped
}

// Lines counts the lines read so far, including dropped ones
func (r *Reader) Lines() uint64 {
	return r.lineNo
}

// Close the underlying file. Closing the standard input is a no-op.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}
