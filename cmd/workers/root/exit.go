package root

import (
	"errors"
	"io/fs"
	"os"

	"github.com/flarebyte/workers/internal/config"
	"github.com/flarebyte/workers/internal/store"
)

const (
	exitCodeConfig = 1
	exitCodeData   = 2
)

type exitError struct {
	code int
	msg  string
	err  error
}

func (e exitError) Error() string { return e.msg }
func (e exitError) ExitCode() int { return e.code }
func (e exitError) Unwrap() error { return e.err }

// classify attaches an exit code to errors raised after argument parsing.
// Anything else keeps the default code used by main.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var (
		parseErr *store.ParseError
		pathErr  *fs.PathError
		linkErr  *os.LinkError
	)
	switch {
	case errors.Is(err, config.ErrDataPathMissing):
		return exitError{code: exitCodeConfig, msg: err.Error(), err: err}
	case errors.As(err, &parseErr), errors.As(err, &pathErr), errors.As(err, &linkErr):
		return exitError{code: exitCodeData, msg: err.Error(), err: err}
	default:
		return err
	}
}
