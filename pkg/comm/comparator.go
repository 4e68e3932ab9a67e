// Copyright © 2018 One Concern

// Package comm classifies the lines of two sorted inputs into lines
// only in the first input, lines only in the second input and lines in both.
//
// The Comparator walks both inputs in lockstep, as a merge-join, and only
// ever holds one line of lookahead per input. Inputs are expected in
// ascending order of their comparison keys: unsorted inputs are not detected
// and yield a classification which does not represent set membership.
package comm

// LineIterator yields lines until it returns false
type LineIterator interface {
	Next() (string, bool)
}

type cursor struct {
	it   LineIterator
	line string
	key  string
	ok   bool
}

func (c *cursor) advance(key keyFunc) {
	c.line, c.ok = c.it.Next()
	if !c.ok {
		c.line, c.key = "", ""
		return
	}
	c.key = key(c.line)
}

// Comparator produces classified records from two line iterators.
// It performs no I/O of its own and is not safe for concurrent use.
type Comparator struct {
	first, second cursor

	fold      Fold
	normalize bool
	key       keyFunc

	started bool
	totals  Totals
}

// New comparator over two inputs
func New(first, second LineIterator, opts ...Option) *Comparator {
	c := &Comparator{
		first:  cursor{it: first},
		second: cursor{it: second},
	}
	for _, apply := range opts {
		apply(c)
	}
	c.key = newKeyFunc(c.fold, c.normalize)
	return c
}

// Next yields the next classified record, or false once both inputs are exhausted
func (c *Comparator) Next() (Record, bool) {
	if !c.started {
		c.started = true
		c.first.advance(c.key)
		c.second.advance(c.key)
	}

	var rec Record
	switch {
	case !c.first.ok && !c.second.ok:
		return Record{}, false

	case !c.first.ok:
		rec = Record{Column: OnlyInSecond, Text: c.second.line}
		c.second.advance(c.key)

	case !c.second.ok:
		rec = Record{Column: OnlyInFirst, Text: c.first.line}
		c.first.advance(c.key)

	case c.first.key < c.second.key:
		rec = Record{Column: OnlyInFirst, Text: c.first.line}
		c.first.advance(c.key)

	case c.first.key > c.second.key:
		rec = Record{Column: OnlyInSecond, Text: c.second.line}
		c.second.advance(c.key)

	default:
		rec = Record{Column: InBoth, Text: c.first.line}
		c.first.advance(c.key)
		c.second.advance(c.key)
	}

	c.totals.add(rec.Column)
	return rec, true
}

// Totals of the records produced so far
func (c *Comparator) Totals() Totals {
	return c.totals
}

// Fold policy used by this comparator
func (c *Comparator) Fold() Fold {
	return c.fold
}
