// Copyright © 2018 One Concern

// Package engine runs a comparison: it opens both line sources, drives the
// comparator and writes the classified records through a formatter.
package engine

import (
	"errors"
	"io"
	"syscall"

	"github.com/oneconcern/linecomm/pkg/comm"
	"github.com/oneconcern/linecomm/pkg/format"
	"github.com/oneconcern/linecomm/pkg/source"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Option is a functor to run a comparison with some options
type Option func(*runner)

type runner struct {
	fs     afero.Fs
	stdin  io.Reader
	logger *zap.Logger
}

// WithFs sets the file system inputs are opened from. Defaults to the OS file system.
func WithFs(fs afero.Fs) Option {
	return func(r *runner) {
		r.fs = fs
	}
}

// WithStdin sets the reader for the "-" input. Defaults to os.Stdin.
func WithStdin(in io.Reader) Option {
	return func(r *runner) {
		r.stdin = in
	}
}

// WithLogger sets a logger for the run
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Run the comparison defined by cfg, writing to out.
//
// Configuration and open errors are returned before anything is written. A read error
// on either input ends the comparison: the output produced so far is flushed and the
// error is returned.
func Run(cfg Config, out io.Writer, opts ...Option) (totals comm.Totals, err error) {
	r := &runner{
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}

	if err = cfg.Validate(); err != nil {
		return totals, err
	}

	srcOpts := append(cfg.sourceOptions(), source.WithLogger(r.logger))
	if r.stdin != nil {
		srcOpts = append(srcOpts, source.WithStdin(r.stdin))
	}
	first, second, err := source.OpenPair(r.fs, cfg.First, cfg.Second, srcOpts...)
	if err != nil {
		return totals, err
	}
	defer func() {
		err = multierr.Append(err, multierr.Combine(first.Close(), second.Close()))
	}()

	cmp := comm.New(first, second, cfg.comparatorOptions()...)
	f := format.New(out, cfg.formatterOptions()...)

	r.logger.Debug("comparing",
		zap.String("first", first.Name()),
		zap.String("second", second.Name()),
		zap.Stringer("fold", cfg.Fold),
	)

	for rec, ok := cmp.Next(); ok; rec, ok = cmp.Next() {
		if err = f.Write(rec); err != nil {
			return cmp.Totals(), err
		}
	}
	totals = cmp.Totals()

	if cfg.Total {
		if err = f.WriteTotals(totals); err != nil {
			return totals, err
		}
	}
	if err = f.Flush(); err != nil {
		return totals, err
	}

	r.logger.Debug("comparison done",
		zap.Uint64("only-first", totals.OnlyInFirst),
		zap.Uint64("only-second", totals.OnlyInSecond),
		zap.Uint64("both", totals.InBoth),
		zap.Uint64("lines-first", first.Lines()),
		zap.Uint64("lines-second", second.Lines()),
		zap.Uint64("dropped-first", first.Dropped()),
		zap.Uint64("dropped-second", second.Dropped()),
	)

	return totals, multierr.Combine(first.Err(), second.Err())
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe,
// as happens when a downstream consumer (like `head`) exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
