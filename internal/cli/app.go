// Package cli provides the wordle command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/config"
	"github.com/robalobadob/wordle-engine/internal/results"
	"github.com/robalobadob/wordle-engine/internal/words"
)

// Version is set at build time.
var Version = "dev"

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	tty    bool // stdout is os.Stdout and may be coloured
}

// New creates the CLI with settings from cfg.
func New(cfg config.Config) *App {
	app := &App{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		tty:    true,
	}

	app.root = &cobra.Command{
		Use:   "wordle",
		Short: "Five-letter word guessing game",
		Long: `wordle plays the five-letter guessing game in the terminal or serves it
over HTTP. Finished rounds can be logged to SQLite (DB_PATH) and summarised
with the stats command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.AddCommand(
		app.newPlayCmd(),
		app.newServeCmd(),
		app.newStatsCmd(),
	)
	return app
}

// WithIO sets custom input and output streams. Colour is disabled.
func (a *App) WithIO(stdin io.Reader, stdout, stderr io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	a.tty = false
	a.root.SetIn(stdin)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// loadBank reads path when given, the configured WORDS_FILE otherwise, then
// the embedded list.
func (a *App) loadBank(path string) (*words.Bank, error) {
	if path == "" {
		path = a.cfg.WordsFile
	}
	if path != "" {
		return words.Load(path)
	}
	return words.Default()
}

// openResults opens the results log, or returns nil when path is empty.
func openResults(path string) (*results.Store, error) {
	if path == "" {
		return nil, nil
	}
	s, err := results.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results log: %w", err)
	}
	return s, nil
}
