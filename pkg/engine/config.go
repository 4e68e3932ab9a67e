// Copyright © 2018 One Concern

package engine

import (
	"fmt"

	"github.com/oneconcern/linecomm/pkg/comm"
	"github.com/oneconcern/linecomm/pkg/errors"
	"github.com/oneconcern/linecomm/pkg/format"
	"github.com/oneconcern/linecomm/pkg/source"
	"github.com/oneconcern/linecomm/pkg/source/status"
)

// ErrInvalidConfig indicates an inconsistent run configuration
var ErrInvalidConfig = errors.New("invalid configuration")

// Config for a single comparison run. It is set once at startup and is not
// altered by the run.
type Config struct {
	First, Second string

	Visibility format.Visibility
	Delimiter  string
	Format     format.Format
	Color      bool
	Total      bool

	Fold      comm.Fold
	Normalize bool

	ZeroTerminated bool
	BufferSize     int
}

// DefaultConfig compares first and second with all columns visible
func DefaultConfig(first, second string) Config {
	return Config{
		First:      first,
		Second:     second,
		Visibility: format.AllVisible(),
		Delimiter:  format.DefaultDelimiter,
		Format:     format.Text,
		BufferSize: source.DefaultBufferSize,
	}
}

// Validate the configuration. This performs no I/O.
func (c Config) Validate() error {
	if c.First == source.Stdin && c.Second == source.Stdin {
		return status.ErrBothStdin
	}
	if c.First == "" || c.Second == "" {
		return ErrInvalidConfig.Wrap(fmt.Errorf("two inputs are required"))
	}
	if _, err := format.ParseFormat(string(c.Format)); err != nil {
		return ErrInvalidConfig.Wrap(err)
	}
	if c.Color && c.Format != format.Text {
		return ErrInvalidConfig.Wrap(fmt.Errorf("colors are only supported with the %s format", format.Text))
	}
	if c.BufferSize < 0 {
		return ErrInvalidConfig.Wrap(fmt.Errorf("negative buffer size: %d", c.BufferSize))
	}
	return nil
}

func (c Config) sourceOptions() []source.Option {
	return []source.Option{
		source.WithBufferSize(c.BufferSize),
		source.WithZeroTerminated(c.ZeroTerminated),
	}
}

func (c Config) comparatorOptions() []comm.Option {
	return []comm.Option{
		comm.WithFold(c.Fold),
		comm.WithNormalization(c.Normalize),
	}
}

func (c Config) formatterOptions() []format.Option {
	return []format.Option{
		format.WithVisibility(c.Visibility),
		format.WithDelimiter(c.Delimiter),
		format.WithFormat(c.Format),
		format.WithColor(c.Color),
		format.WithZeroTerminated(c.ZeroTerminated),
	}
}
