// Package app runs one load/dispatch/save cycle over a roster file.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/flarebyte/workers/internal/config"
	"github.com/flarebyte/workers/internal/logging"
	"github.com/flarebyte/workers/internal/roster"
	"github.com/flarebyte/workers/internal/store"
	"github.com/flarebyte/workers/internal/table"
)

// Action runs a command against the loaded roster. It returns the roster to
// keep and whether that roster must be written back.
type Action func(r roster.Roster, out io.Writer) (roster.Roster, bool, error)

// Dispatcher owns the resolved configuration for a single invocation.
type Dispatcher struct {
	cfg    config.Config
	out    io.Writer
	logger *slog.Logger
}

// New returns a Dispatcher writing command output to out.
func New(cfg config.Config, out io.Writer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{cfg: cfg, out: out, logger: logger}
}

// Run loads the roster (empty when the file does not exist yet), applies
// action and saves when the action marked the roster dirty. A nil action
// only loads.
func (d *Dispatcher) Run(action Action) error {
	path := d.cfg.DataPath
	d.logger.Debug("data file resolved", "path", path)

	r := roster.Roster{}
	if store.Exists(path) {
		loaded, err := store.Load(path)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		r = loaded
		d.logger.Debug("roster loaded", "path", path, "workers", len(r))
	} else {
		d.logger.Debug("data file not found, starting empty", "path", path)
	}

	if action == nil {
		return nil
	}
	next, dirty, err := action(r, d.out)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	if err := store.Save(path, next); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	d.logger.Debug("roster saved", "path", path, "workers", len(next))
	return nil
}

// AddWorker appends w and marks the roster dirty.
func AddWorker(w roster.Worker) Action {
	return func(r roster.Roster, _ io.Writer) (roster.Roster, bool, error) {
		return roster.Add(r, w), true, nil
	}
}

// DisplayAll renders the whole roster.
func DisplayAll() Action {
	return func(r roster.Roster, out io.Writer) (roster.Roster, bool, error) {
		return r, false, table.Render(out, r)
	}
}

// SelectByTenure renders the workers with at least period years of tenure
// as of currentYear.
func SelectByTenure(period, currentYear int) Action {
	return func(r roster.Roster, out io.Writer) (roster.Roster, bool, error) {
		return r, false, table.Render(out, roster.SelectByTenure(r, period, currentYear))
	}
}
