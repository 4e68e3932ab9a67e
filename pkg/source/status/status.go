// Copyright © 2018 One Concern

// Package status declares error constants returned when opening
// or reading line sources.
package status

import "github.com/oneconcern/linecomm/pkg/errors"

var (
	// ErrBothStdin indicates that both inputs of a run designate the standard input
	ErrBothStdin = errors.New(`both input files cannot be STDIN ("-")`)

	// ErrOpen indicates that a named input could not be opened
	ErrOpen = errors.New("cannot open input")

	// ErrRead indicates that an input failed while it was being read
	ErrRead = errors.New("cannot read input")
)
