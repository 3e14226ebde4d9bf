package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/domain/model"
	"github.com/m-mizutani/recent/pkg/utils/terminal"
	"github.com/urfave/cli/v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var ErrInvalidFormat = goerr.New("invalid output format")

// Listing holds options controlling what is listed and how it is shown
type Listing struct {
	NumFiles   int
	ShowHidden bool
	Format     string
	Color      string
	NoPager    bool
	Pager      string
}

// Flags returns CLI flags for listing configuration
func (c *Listing) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "num-files",
			Aliases:     []string{"n"},
			Usage:       "Number of files to display",
			Value:       model.DefaultLimit,
			Destination: &c.NumFiles,
			Sources:     cli.EnvVars("RECENT_NUM_FILES"),
		},
		&cli.BoolFlag{
			Name:        "show-hidden",
			Aliases:     []string{"s"},
			Usage:       "Show hidden files",
			Destination: &c.ShowHidden,
			Sources:     cli.EnvVars("RECENT_SHOW_HIDDEN"),
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output format (table, json)",
			Value:       FormatTable,
			Destination: &c.Format,
			Sources:     cli.EnvVars("RECENT_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "Colorize output (auto, always, never)",
			Value:       string(terminal.ColorAuto),
			Destination: &c.Color,
			Sources:     cli.EnvVars("RECENT_COLOR"),
		},
		&cli.BoolFlag{
			Name:        "no-pager",
			Usage:       "Never pipe output through a pager",
			Destination: &c.NoPager,
			Sources:     cli.EnvVars("RECENT_NO_PAGER"),
		},
	}
}

// isSetter is satisfied by *cli.Command
type isSetter interface {
	IsSet(name string) bool
}

// Merge fills every option not given on the command line or environment
// from the config file.
func (c *Listing) Merge(f *File, cmd isSetter) {
	if f.NumFiles != nil && !cmd.IsSet("num-files") {
		c.NumFiles = *f.NumFiles
	}
	if f.ShowHidden != nil && !cmd.IsSet("show-hidden") {
		c.ShowHidden = *f.ShowHidden
	}
	if f.Format != nil && !cmd.IsSet("format") {
		c.Format = *f.Format
	}
	if f.Color != nil && !cmd.IsSet("color") {
		c.Color = *f.Color
	}
	if f.NoPager != nil && !cmd.IsSet("no-pager") {
		c.NoPager = *f.NoPager
	}
	// $PAGER still wins over this, see pager.Command
	if f.Pager != nil {
		c.Pager = *f.Pager
	}
}

// OutputFormat returns the normalized output format
func (c *Listing) OutputFormat() (string, error) {
	switch f := strings.ToLower(c.Format); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", goerr.Wrap(ErrInvalidFormat, "failed to parse output format", goerr.V("format", c.Format))
	}
}

// ColorMode returns the parsed color mode
func (c *Listing) ColorMode() (terminal.ColorMode, error) {
	return terminal.ParseColorMode(c.Color)
}
