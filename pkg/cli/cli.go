package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/recent/pkg/cli/config"
	"github.com/m-mizutani/recent/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// streams holds the process output streams
type streams struct {
	stdout io.Writer
	stderr io.Writer
	screen *screen
}

// Option is a functional option for Run
type Option func(*streams)

// WithStdout sets where the listing is written
func WithStdout(w io.Writer) Option {
	return func(s *streams) {
		s.stdout = w
	}
}

// WithStderr sets where logs and error messages are written
func WithStderr(w io.Writer) Option {
	return func(s *streams) {
		s.stderr = w
	}
}

// WithScreen describes the terminal stdout is attached to instead of
// detecting it from stdout
func WithScreen(isTTY bool, width, height int) Option {
	return func(s *streams) {
		s.screen = &screen{isTTY: isTTY, width: width, height: height}
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	std := &streams{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(std)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		loggerCfg  = config.Logger{Output: std.stderr}
		listingCfg config.Listing
		fileCfg    config.ConfigFile
		logger     *slog.Logger
	)

	flags := append(loggerCfg.Flags(), listingCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)

	app := &cli.Command{
		Name:      types.AppName,
		Usage:     "List the most recently modified files in a directory",
		ArgsUsage: "[DIRECTORY]",
		Version:   types.Version,
		Flags:     flags,
		Writer:    std.stdout,
		ErrWriter: std.stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: actionList(std, &listingCfg, &fileCfg),
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("CLI execution failed", slog.Any("error", err))
		fmt.Fprintf(std.stderr, "Error: %s\n", err.Error())
		return err
	}

	return nil
}
