package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/workers/internal/app"
	"github.com/flarebyte/workers/internal/config"
	"github.com/flarebyte/workers/internal/logging"
)

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/workers/cli.Version=1.2.3' -X 'github.com/flarebyte/workers/cli.Date=2026-02-09'"
var (
	Version string
	Date    string
)

// Env carries the process fundamentals the commands depend on, so the
// command tree can run in tests without touching the real environment.
type Env struct {
	Getenv func(string) string
	Now    func() time.Time
	Stderr io.Writer

	// Config is filled by the root command before any subcommand runs.
	Config config.Config
}

// DefaultEnv returns an Env bound to the running process.
func DefaultEnv() *Env {
	return &Env{
		Getenv: os.Getenv,
		Now:    time.Now,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}

// Logger returns the stderr logger for the configured level.
func (e *Env) Logger() *slog.Logger {
	return logging.New(e.Stderr, e.Config.LogLevel)
}

// CurrentYear is the calendar year tenure is measured against.
func (e *Env) CurrentYear() int {
	return e.Now().Year()
}

// Dispatcher resolves the data file from dataFlag or WORKERS_DATA and
// returns a dispatcher printing to the command's output stream.
func (e *Env) Dispatcher(cmd *cobra.Command, dataFlag string) (*app.Dispatcher, error) {
	cfg, err := e.Config.Resolve(dataFlag, e.Getenv)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, cmd.OutOrStdout(), e.Logger()), nil
}

// AddDataFlag registers the -d/--data flag shared by every roster command.
func AddDataFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "data", "d", "", "The data file name")
}
