// Copyright © 2018 One Concern

package comm

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	// FoldNone compares lines verbatim
	FoldNone Fold = iota
	// FoldCase compares lines after Unicode case folding
	FoldCase
)

// Fold is the policy applied to lines before they are compared.
// The same policy applies to both inputs for a whole run.
type Fold uint8

func (f Fold) String() string {
	if f == FoldCase {
		return "case"
	}
	return "none"
}

// keyFunc builds the comparison key of a line
type keyFunc func(string) string

func identity(s string) string { return s }

func newKeyFunc(fold Fold, normalize bool) keyFunc {
	var steps []keyFunc
	if normalize {
		steps = append(steps, norm.NFC.String)
	}
	if fold == FoldCase {
		// a Caser holds state and must not be shared across comparators
		steps = append(steps, cases.Fold().String)
	}

	switch len(steps) {
	case 0:
		return identity
	case 1:
		return steps[0]
	default:
		return func(s string) string {
			for _, step := range steps {
				s = step(s)
			}
			return s
		}
	}
}
