// Copyright © 2018 One Concern

package format

import "github.com/oneconcern/linecomm/pkg/comm"

// Visibility tells which columns are rendered, indexed by column - 1
type Visibility [3]bool

// AllVisible renders all columns
func AllVisible() Visibility {
	return Visibility{true, true, true}
}

// NewVisibility from one toggle per column
func NewVisibility(first, second, both bool) Visibility {
	return Visibility{first, second, both}
}

// Visible tells if a column is rendered
func (v Visibility) Visible(c comm.Column) bool {
	if !c.Valid() {
		return false
	}
	return v[c-1]
}

// Prefix is the number of rendered columns before column c: records of
// column c are offset by as many delimiters.
func (v Visibility) Prefix(c comm.Column) int {
	n := 0
	for _, col := range comm.Columns {
		if col >= c {
			break
		}
		if v.Visible(col) {
			n++
		}
	}
	return n
}

// None tells if all columns are suppressed
func (v Visibility) None() bool {
	return !v[0] && !v[1] && !v[2]
}
