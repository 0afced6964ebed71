package main

import (
	"os"
	"strings"

	"github.com/flarebyte/workers/cmd/workers/root"
	"github.com/flarebyte/workers/internal/config"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if dir := config.ExecutableDir(); dir != "" {
		_ = config.LoadDotEnv(dir)
	}
	if err := root.Execute(os.Args[1:]); err != nil {
		// Print a short, single-line error to stderr on failures.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
