// Copyright © 2018 One Concern

package comm

import "strconv"

const (
	// OnlyInFirst qualifies a line found only in the first input (column 1)
	OnlyInFirst Column = iota + 1
	// OnlyInSecond qualifies a line found only in the second input (column 2)
	OnlyInSecond
	// InBoth qualifies a line found in both inputs (column 3)
	InBoth
)

// Columns lists all columns, in output order
var Columns = [...]Column{OnlyInFirst, OnlyInSecond, InBoth}

// Column qualifies a line according to the inputs it belongs to.
// Its value is the fixed, 1-based index of the output column.
type Column uint8

func (c Column) String() string {
	switch c {
	case OnlyInFirst:
		return "only-first"
	case OnlyInSecond:
		return "only-second"
	case InBoth:
		return "both"
	default:
		return "column(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid tells if this is one of the three known columns
func (c Column) Valid() bool {
	return c >= OnlyInFirst && c <= InBoth
}

// Record is a single line classified by the comparator.
//
// Text is the original line, before any folding. For lines
// in both inputs, the text from the first input is retained.
type Record struct {
	Column Column
	Text   string
}

// Totals counts the records produced for each column
type Totals struct {
	OnlyInFirst  uint64
	OnlyInSecond uint64
	InBoth       uint64
}

// Get the count for a column
func (t Totals) Get(c Column) uint64 {
	switch c {
	case OnlyInFirst:
		return t.OnlyInFirst
	case OnlyInSecond:
		return t.OnlyInSecond
	case InBoth:
		return t.InBoth
	default:
		return 0
	}
}

// Sum of all columns
func (t Totals) Sum() uint64 {
	return t.OnlyInFirst + t.OnlyInSecond + t.InBoth
}

func (t *Totals) add(c Column) {
	switch c {
	case OnlyInFirst:
		t.OnlyInFirst++
	case OnlyInSecond:
		t.OnlyInSecond++
	case InBoth:
		t.InBoth++
	}
}
