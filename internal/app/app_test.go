package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flarebyte/workers/internal/config"
	"github.com/flarebyte/workers/internal/roster"
	"github.com/flarebyte/workers/internal/store"
	"github.com/flarebyte/workers/internal/table"
)

func newDispatcher(t *testing.T, path string) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataPath = path
	var out bytes.Buffer
	return New(cfg, &out, nil), &out
}

func TestRun_DisplayMissingFilePrintsEmptyNotice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	d, out := newDispatcher(t, path)
	if err := d.Run(DisplayAll()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != table.EmptyNotice+"\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if store.Exists(path) {
		t.Fatalf("read-only command created the data file")
	}
}

func TestRun_AddSavesAndDisplayShowsRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	d, out := newDispatcher(t, path)
	if err := d.Run(AddWorker(roster.NewWorker("Ivanov", "Ivan", "", 2015))); err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("add produced output: %q", out.String())
	}
	if err := d.Run(DisplayAll()); err != nil {
		t.Fatalf("display: %v", err)
	}
	if !strings.Contains(out.String(), "|    1 | Ivanov ") || !strings.Contains(out.String(), "| Ivan ") {
		t.Fatalf("row missing from table:\n%s", out.String())
	}
}

func TestRun_SelectRendersTenureSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	r := roster.Roster{
		roster.NewWorker("Old", "a", "", 2000),
		roster.NewWorker("Mid", "b", "", 2010),
		roster.NewWorker("New", "c", "", 2020),
	}
	if err := store.Save(path, r); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before, _ := os.ReadFile(path)

	d, out := newDispatcher(t, path)
	if err := d.Run(SelectByTenure(10, 2024)); err != nil {
		t.Fatalf("select: %v", err)
	}
	got := out.String()
	iOld, iMid := strings.Index(got, "| Old "), strings.Index(got, "| Mid ")
	if iOld < 0 || iMid < 0 || iOld > iMid {
		t.Fatalf("expected Old then Mid:\n%s", got)
	}
	if strings.Contains(got, "| New ") {
		t.Fatalf("recent hire selected:\n%s", got)
	}
	after, _ := os.ReadFile(path)
	if !bytes.Equal(before, after) {
		t.Fatalf("select rewrote the data file")
	}
}

func TestRun_NilActionOnlyLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	d, out := newDispatcher(t, path)
	if err := d.Run(nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() != 0 || store.Exists(path) {
		t.Fatalf("nil action had side effects")
	}
}

func TestRun_ParseErrorIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d, out := newDispatcher(t, path)
	err := d.Run(AddWorker(roster.NewWorker("a", "b", "", 2000)))
	var perr *store.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *store.ParseError, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
	b, _ := os.ReadFile(path)
	if string(b) != "not json" {
		t.Fatalf("corrupt file was overwritten: %q", string(b))
	}
}

func TestRun_ActionErrorSkipsSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	boom := errors.New("boom")
	d, _ := newDispatcher(t, path)
	err := d.Run(func(r roster.Roster, _ io.Writer) (roster.Roster, bool, error) {
		return roster.Add(r, roster.Worker{}), true, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if store.Exists(path) {
		t.Fatalf("roster saved despite action error")
	}
}
