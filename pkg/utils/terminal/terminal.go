package terminal

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

var ErrInvalidColorMode = goerr.New("invalid color mode")

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin and MSYS pseudo terminals on Windows.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Size returns the width and height of the terminal attached to f. When
// f is not a terminal or the size is unknown it returns 80x24.
func Size(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// ColorMode controls when ANSI styling is emitted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses auto, always or never (case insensitive)
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", goerr.Wrap(ErrInvalidColorMode, "failed to parse color mode", goerr.V("mode", s))
	}
}

// Enabled resolves the mode against whether the output is a terminal.
// NO_COLOR (https://no-color.org) disables auto mode.
func (m ColorMode) Enabled(isTTY bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY
	}
}
