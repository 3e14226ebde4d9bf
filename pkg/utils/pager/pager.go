package pager

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultCommand is used when $PAGER is unset or empty
const DefaultCommand = "less -R"

var ErrEmptyCommand = goerr.New("pager command is empty")

// Command returns the pager command line. $PAGER wins over the
// configured value, which wins over DefaultCommand.
func Command(configured string) string {
	if env := os.Getenv("PAGER"); env != "" {
		return env
	}
	if configured != "" {
		return configured
	}
	return DefaultCommand
}

// ShouldPage reports whether output of the given row count needs a pager
func ShouldPage(enabled, isTTY bool, rows, termHeight int) bool {
	return enabled && isTTY && rows > termHeight
}

// Pager is a running pager process fed through its stdin
type Pager struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Start launches the pager. The command line is split with shell quoting
// rules so values like `less -R` or `"my pager" --flag` work.
func Start(ctx context.Context, cmdline string, stdout, stderr io.Writer) (*Pager, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse pager command", goerr.V("command", cmdline))
	}
	if len(args) == 0 {
		return nil, goerr.Wrap(ErrEmptyCommand, "failed to start pager", goerr.V("command", cmdline))
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open pager stdin", goerr.V("command", cmdline))
	}

	if err := cmd.Start(); err != nil {
		return nil, goerr.Wrap(err, "failed to start pager", goerr.V("command", cmdline))
	}

	return &Pager{
		cmd:   cmd,
		stdin: stdin,
	}, nil
}

// Write sends output to the pager
func (p *Pager) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close ends the input and waits for the user to quit the pager
func (p *Pager) Close() error {
	if err := p.stdin.Close(); err != nil {
		return goerr.Wrap(err, "failed to close pager stdin")
	}
	if err := p.cmd.Wait(); err != nil {
		return goerr.Wrap(err, "pager exited with error")
	}
	return nil
}
