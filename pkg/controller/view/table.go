package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/domain/interfaces"
	"github.com/m-mizutani/recent/pkg/domain/model"
	"github.com/m-mizutani/recent/pkg/utils/terminal"
)

// config holds shared presenter configuration
type config struct {
	width int
	color bool
	now   func() time.Time
	loc   *time.Location
}

// Option is a functional option for presenters
type Option func(*config)

// WithWidth sets the terminal width used for column layout
func WithWidth(width int) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithColor enables ANSI styling of the header and directory names
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = enabled
	}
}

// WithClock sets the reference time for relative timestamps
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithLocation sets the time zone used for absolute timestamps
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		c.loc = loc
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		width: terminal.DefaultWidth,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Table renders a listing as an aligned three-column table
type Table struct {
	cfg    *config
	header *color.Color
	dir    *color.Color
}

var _ interfaces.Presenter = (*Table)(nil)

// NewTable creates a table presenter
func NewTable(opts ...Option) *Table {
	cfg := newConfig(opts)

	header := color.New(color.Bold)
	dir := color.New(color.FgBlue)
	if cfg.color {
		header.EnableColor()
		dir.EnableColor()
	} else {
		header.DisableColor()
		dir.DisableColor()
	}

	return &Table{
		cfg:    cfg,
		header: header,
		dir:    dir,
	}
}

// Rows returns the number of lines Render writes for the listing
func (t *Table) Rows(listing *model.Listing) int {
	return len(listing.Entries) + 1
}

// Render writes the header followed by one line per entry
func (t *Table) Render(ctx context.Context, w io.Writer, listing *model.Listing) error {
	layout := NewLayout(t.cfg.width)
	now := t.cfg.now()

	head := t.header.Sprint(t.line(layout, "Name", "Modified Time", "Relative Time"))
	if _, err := fmt.Fprintln(w, head); err != nil {
		return goerr.Wrap(err, "failed to write table header")
	}

	for _, e := range listing.Entries {
		name := padRight(Abbreviate(e.Name, layout.Name), layout.Name)
		if e.Kind == model.KindDirectory {
			name = t.dir.Sprint(name)
		}

		row := strings.Join([]string{
			name,
			padRight(FormatTimestamp(e.ModTime, t.cfg.loc), layout.Modified),
			RelativeTime(e.ModTime, now),
		}, columnGap)

		if _, err := fmt.Fprintln(w, row); err != nil {
			return goerr.Wrap(err, "failed to write table row", goerr.V("name", e.Name))
		}
	}

	return nil
}

func (t *Table) line(layout Layout, name, modified, relative string) string {
	return strings.Join([]string{
		padRight(name, layout.Name),
		padRight(modified, layout.Modified),
		relative,
	}, columnGap)
}
