package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/cli/config"
	"github.com/m-mizutani/recent/pkg/controller/view"
	"github.com/m-mizutani/recent/pkg/domain/interfaces"
	"github.com/m-mizutani/recent/pkg/domain/model"
	localfs "github.com/m-mizutani/recent/pkg/infra/fs"
	"github.com/m-mizutani/recent/pkg/usecase"
	"github.com/m-mizutani/recent/pkg/utils/pager"
	"github.com/m-mizutani/recent/pkg/utils/terminal"
	"github.com/urfave/cli/v3"
)

var ErrTooManyArgs = goerr.New("at most one directory may be given")

// screen describes the terminal stdout is attached to, if any
type screen struct {
	isTTY  bool
	width  int
	height int
}

func detectScreen(w io.Writer) screen {
	f, ok := w.(*os.File)
	if !ok {
		return screen{width: terminal.DefaultWidth, height: terminal.DefaultHeight}
	}
	width, height := terminal.Size(f)
	return screen{isTTY: terminal.IsTerminal(f), width: width, height: height}
}

func actionList(std *streams, listingCfg *config.Listing, fileCfg *config.ConfigFile) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		logger := ctxlog.From(ctx)

		file, err := fileCfg.Load()
		if err != nil {
			return goerr.Wrap(err, "failed to load config file")
		}
		listingCfg.Merge(file, c)

		format, err := listingCfg.OutputFormat()
		if err != nil {
			return err
		}
		colorMode, err := listingCfg.ColorMode()
		if err != nil {
			return err
		}

		if c.Args().Len() > 1 {
			return goerr.Wrap(ErrTooManyArgs, "invalid arguments", goerr.V("args", c.Args().Slice()))
		}
		dir := "."
		if c.Args().Len() == 1 {
			dir = c.Args().First()
		}

		uc := usecase.NewRecent(localfs.New())
		listing, err := uc.List(ctx, &model.ListOptions{
			Dir:        dir,
			Limit:      listingCfg.NumFiles,
			ShowHidden: listingCfg.ShowHidden,
		})
		if err != nil {
			return err
		}

		scr := detectScreen(std.stdout)
		if std.screen != nil {
			scr = *std.screen
		}
		logger.Debug("Detected output",
			slog.Bool("tty", scr.isTTY),
			slog.Int("width", scr.width),
			slog.Int("height", scr.height),
			slog.String("format", format),
		)

		var presenter interfaces.Presenter
		rows := 0
		switch format {
		case config.FormatJSON:
			presenter = view.NewJSON()
		default:
			table := view.NewTable(
				view.WithWidth(scr.width),
				view.WithColor(colorMode.Enabled(scr.isTTY)),
			)
			rows = table.Rows(listing)
			presenter = table
		}

		if !pager.ShouldPage(!listingCfg.NoPager, scr.isTTY, rows, scr.height) {
			return presenter.Render(ctx, std.stdout, listing)
		}

		// Ctrl-C belongs to the pager while it runs
		p, err := pager.Start(context.WithoutCancel(ctx), pager.Command(listingCfg.Pager), std.stdout, std.stderr)
		if err != nil {
			logger.Warn("Failed to start pager, writing to stdout", slog.Any("error", err))
			return presenter.Render(ctx, std.stdout, listing)
		}

		renderErr := presenter.Render(ctx, p, listing)
		if err := p.Close(); err != nil {
			logger.Debug("Pager exited", slog.Any("error", err))
		}
		// the user quit the pager before reading everything
		if errors.Is(renderErr, syscall.EPIPE) {
			logger.Debug("Pager closed early", slog.Any("error", renderErr))
			return nil
		}
		return renderErr
	}
}
