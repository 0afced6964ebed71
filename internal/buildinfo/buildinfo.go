package buildinfo

import (
	"strings"

	"github.com/flarebyte/workers/cli"
)

// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags and fall back to cli.Version/cli.Date.

// DefaultVersion is reported when no build-time version was injected.
const DefaultVersion = "0.1.0"

var (
	// Version is the semantic version or custom string. Empty means
	// cli.Version, then DefaultVersion.
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build date (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// Resolved returns the effective version string.
func Resolved() string {
	if Version != "" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	return DefaultVersion
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := Resolved()

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
