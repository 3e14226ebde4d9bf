package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/domain/interfaces"
)

var (
	ErrNotFound     = goerr.New("no such directory")
	ErrNotDirectory = goerr.New("not a directory")
)

type local struct {
	homeDir func() (string, error)
}

// Option is a functional option for the local filesystem
type Option func(*local)

// WithHomeDir overrides how the home directory is looked up for ~ expansion
func WithHomeDir(f func() (string, error)) Option {
	return func(l *local) {
		l.homeDir = f
	}
}

// New creates a FileSystem backed by the operating system
func New(opts ...Option) interfaces.FileSystem {
	l := &local{
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve expands a leading ~, makes the path absolute and checks it is a directory
func (l *local) Resolve(path string) (string, error) {
	expanded, err := l.expandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", goerr.Wrap(err, "failed to make path absolute", goerr.V("path", expanded))
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", goerr.Wrap(ErrNotFound, "failed to resolve directory", goerr.V("path", abs))
		}
		return "", goerr.Wrap(err, "failed to stat directory", goerr.V("path", abs))
	}
	if !info.IsDir() {
		return "", goerr.Wrap(ErrNotDirectory, "failed to resolve directory", goerr.V("path", abs))
	}

	return abs, nil
}

func (l *local) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path, nil
	}

	home, err := l.homeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get home directory", goerr.V("path", path))
	}

	return filepath.Join(home, path[1:]), nil
}

// ReadDir returns the entry names of a directory
func (l *local) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read directory", goerr.V("dir", dir))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Stat follows symlinks. A dangling symlink is reported with its own
// Lstat metadata so it can still be listed.
func (l *local) Stat(path string) (iofs.FileInfo, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}

	linfo, lerr := os.Lstat(path)
	if lerr == nil && linfo.Mode()&iofs.ModeSymlink != 0 {
		return linfo, nil
	}

	return nil, goerr.Wrap(err, "failed to stat entry", goerr.V("path", path))
}
