package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles groups the colored renderers for human output.
type styles struct {
	heading *color.Color
	path    *color.Color
	count   *color.Color
	invalid *color.Color
	pass    *color.Color
	fail    *color.Color
}

func newStyles() *styles {
	return &styles{
		heading: color.New(color.Bold),
		path:    color.New(color.FgHiBlue),
		count:   color.New(color.Bold, color.FgHiGreen),
		invalid: color.New(color.FgYellow),
		pass:    color.New(color.FgHiGreen),
		fail:    color.New(color.Bold, color.FgHiRed),
	}
}

// configureColor applies a --color flag value (always, never, auto).
// Auto enables color only on a TTY with NO_COLOR unset.
func configureColor(mode string) *styles {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	return newStyles()
}
