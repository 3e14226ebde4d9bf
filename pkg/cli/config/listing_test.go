package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/recent/pkg/cli/config"
	"github.com/m-mizutani/recent/pkg/utils/terminal"
)

type setFlags map[string]bool

func (s setFlags) IsSet(name string) bool { return s[name] }

func ptr[T any](v T) *T { return &v }

func TestListing_Merge(t *testing.T) {
	file := &config.File{
		NumFiles:   ptr(30),
		ShowHidden: ptr(true),
		Format:     ptr("json"),
		Color:      ptr("never"),
		Pager:      ptr("more"),
		NoPager:    ptr(true),
	}

	t.Run("file fills unset flags", func(t *testing.T) {
		cfg := &config.Listing{NumFiles: 10, Format: "table", Color: "auto"}
		cfg.Merge(file, setFlags{})

		gt.Value(t, *cfg).Equal(config.Listing{
			NumFiles:   30,
			ShowHidden: true,
			Format:     "json",
			Color:      "never",
			NoPager:    true,
			Pager:      "more",
		})
	})

	t.Run("explicit flags win", func(t *testing.T) {
		cfg := &config.Listing{NumFiles: 5, Format: "table", Color: "always"}
		cfg.Merge(file, setFlags{"num-files": true, "format": true, "color": true, "show-hidden": true, "no-pager": true})

		gt.Value(t, *cfg).Equal(config.Listing{
			NumFiles: 5,
			Format:   "table",
			Color:    "always",
			Pager:    "more",
		})
	})

	t.Run("empty file changes nothing", func(t *testing.T) {
		cfg := &config.Listing{NumFiles: 10, Format: "table", Color: "auto"}
		cfg.Merge(&config.File{}, setFlags{})
		gt.Value(t, *cfg).Equal(config.Listing{NumFiles: 10, Format: "table", Color: "auto"})
	})
}

func TestListing_OutputFormat(t *testing.T) {
	for _, in := range []string{"table", "TABLE", "json"} {
		cfg := &config.Listing{Format: in}
		_, err := cfg.OutputFormat()
		gt.NoError(t, err)
	}

	cfg := &config.Listing{Format: "yaml"}
	_, err := cfg.OutputFormat()
	gt.Error(t, err).Is(config.ErrInvalidFormat)
}

func TestListing_ColorMode(t *testing.T) {
	cfg := &config.Listing{Color: "always"}
	mode, err := cfg.ColorMode()
	gt.NoError(t, err)
	gt.Value(t, mode).Equal(terminal.ColorAlways)

	cfg = &config.Listing{Color: "rainbow"}
	_, err = cfg.ColorMode()
	gt.Error(t, err).Is(terminal.ErrInvalidColorMode)
}

func TestListing_Flags(t *testing.T) {
	cfg := &config.Listing{}
	flags := cfg.Flags()

	names := make(map[string]bool)
	for _, f := range flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}

	for _, n := range []string{"num-files", "n", "show-hidden", "s", "format", "color", "no-pager"} {
		gt.Value(t, names[n]).Equal(true)
	}
}
