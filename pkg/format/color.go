// Copyright © 2018 One Concern

package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/oneconcern/linecomm/pkg/comm"
)

const (
	// ColorAuto colorizes only when the output is a terminal
	ColorAuto ColorMode = "auto"
	// ColorAlways colorizes regardless of the output
	ColorAlways ColorMode = "always"
	// ColorNever never colorizes
	ColorNever ColorMode = "never"
)

// ColorMode tells when output is colorized
type ColorMode string

// ParseColorMode from its name
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: expected one of auto, always, never", s)
	}
}

// Enabled resolves the mode for an output with file descriptor fd
func (m ColorMode) Enabled(fd uintptr) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorAuto:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}

type palette map[comm.Column]*color.Color

func defaultPalette() palette {
	p := palette{
		comm.OnlyInSecond: color.New(color.FgYellow),
		comm.InBoth:       color.New(color.FgGreen),
	}
	for _, c := range p {
		// the caller decides, regardless of color.NoColor
		c.EnableColor()
	}
	return p
}
