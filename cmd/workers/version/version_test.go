package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/flarebyte/workers/internal/buildinfo"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := buildinfo.Version, buildinfo.Commit, buildinfo.Date
	t.Cleanup(func() {
		buildinfo.Version, buildinfo.Commit, buildinfo.Date = oldVersion, oldCommit, oldDate
	})
	buildinfo.Version, buildinfo.Commit, buildinfo.Date = version, commit, date
}

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	cmd := NewCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return stdout.String(), stderr.String()
}

func TestVersionDefaultOutputStable(t *testing.T) {
	withBuildInfo(t, "", "", "")
	got, _ := run(t)
	if got != "workers 0.1.0\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestVersionSummaryIncludesCommitAndDate(t *testing.T) {
	withBuildInfo(t, "1.2.3", "0123456789abcdef", "2026-02-09")
	got, _ := run(t)
	if got != "workers 1.2.3 (commit=0123456, date=2026-02-09)\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	short, _ := run(t, "--short")
	if short != "1.2.3\n" {
		t.Fatalf("unexpected short output: %q", short)
	}
}

func TestVersionJSON(t *testing.T) {
	withBuildInfo(t, "1.2.3", "abc", "")
	stdout, stderr := run(t, "--json")
	var out map[string]any
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout)
	}
	if out["version"] != "1.2.3" || out["commit"] != "abc" {
		t.Fatalf("unexpected payload: %v", out)
	}
	if stderr == "" {
		t.Fatalf("expected human-readable line on stderr")
	}
}
