// Package ui renders terminal styling for the kundli CLI.
package ui

import (
	"fmt"

	"github.com/alfredjeanlab/kundli/internal/transit"
	"github.com/alfredjeanlab/kundli/internal/yoga"
)

// ANSI256 color codes.
const (
	colorAccent      = 74  // blue
	colorMuted       = 245 // medium gray
	colorGood        = 71  // green
	colorNeutral     = 250 // light gray
	colorChallenging = 167 // red
	colorWarn        = 179 // amber
)

var noColor bool

func paint(color int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, s)
}

// RenderAccent returns s in the accent (blue) color, used for headings.
func RenderAccent(s string) string { return paint(colorAccent, s) }

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string { return paint(colorMuted, s) }

// RenderBold returns s in bold.
func RenderBold(s string) string {
	if noColor {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

// RenderQuality colors s by transit quality.
func RenderQuality(q transit.Quality, s string) string {
	switch q {
	case transit.Good:
		return paint(colorGood, s)
	case transit.Challenging:
		return paint(colorChallenging, s)
	default:
		return paint(colorNeutral, s)
	}
}

// RenderYoga colors a yoga name: doshas in amber, strong yogas in green.
func RenderYoga(r yoga.Result) string {
	switch {
	case !r.Benefic:
		return paint(colorWarn, r.Name)
	case r.Strength == yoga.StrengthStrong:
		return paint(colorGood, r.Name)
	default:
		return r.Name
	}
}

// SetColor enables or disables color output globally.
func SetColor(enabled bool) {
	noColor = !enabled
}
