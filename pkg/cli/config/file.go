package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file. Unset keys stay nil so
// they never override flags or built-in defaults.
type File struct {
	NumFiles   *int    `toml:"num_files"`
	ShowHidden *bool   `toml:"show_hidden"`
	Format     *string `toml:"format"`
	Color      *string `toml:"color"`
	Pager      *string `toml:"pager"`
	NoPager    *bool   `toml:"no_pager"`
}

// ConfigFile holds the location of the configuration file
type ConfigFile struct {
	Path string
}

// Flags returns CLI flags for the configuration file
func (c *ConfigFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML config file (default: $XDG_CONFIG_HOME/recent/config.toml)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("RECENT_CONFIG"),
		},
	}
}

// Load reads the configured file. The default location may be absent;
// an explicitly given path must exist.
func (c *ConfigFile) Load() (*File, error) {
	if c.Path != "" {
		return LoadFile(c.Path, true)
	}

	path, err := DefaultConfigPath()
	if err != nil {
		return &File{}, nil
	}
	return LoadFile(path, false)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/recent/config.toml, falling
// back to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", goerr.Wrap(err, "failed to get home directory")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, types.AppName, "config.toml"), nil
}

// LoadFile decodes a TOML config file and rejects unknown keys
func LoadFile(path string, mustExist bool) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return &File{}, nil
		}
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", path))
	}
	defer fp.Close()

	var f File
	if err := toml.NewDecoder(fp).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &f, nil
}
