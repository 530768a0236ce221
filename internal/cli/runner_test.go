package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/backend"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/ui"
)

type harness struct {
	t   *testing.T
	opt Options
	out bytes.Buffer
	err bytes.Buffer
}

func newHarness(t *testing.T, backendName string) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Backend = backendName
	cfg.DataDir = t.TempDir()
	cfg.Theme = "mono"
	h := &harness{t: t, opt: Options{Config: cfg}}
	ui.Out, ui.Err = &h.out, &h.err
	t.Cleanup(func() {
		ui.Out, ui.Err = os.Stdout, os.Stderr
		ui.SetTheme("classic")
	})
	return h
}

func (h *harness) run(args ...string) int {
	h.t.Helper()
	h.out.Reset()
	h.err.Reset()
	return Run(args, h.opt)
}

func (h *harness) stored() []model.Todo {
	h.t.Helper()
	kv, closer, err := backend.Open(h.opt.Config.Backend, h.opt.Config.DataDir)
	if err != nil {
		h.t.Fatalf("open store: %v", err)
	}
	defer closer.Close()
	raw, err := kv.Get("todos")
	if err != nil {
		h.t.Fatalf("get todos: %v", err)
	}
	todos, err := model.Decode(raw)
	if err != nil {
		h.t.Fatalf("decode: %v", err)
	}
	return todos
}

func TestAddListToggleRemove(t *testing.T) {
	for _, name := range []string{backend.JSON, backend.Bolt, backend.SQLite} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, name)

			if code := h.run("add", "Buy", " milk "); code != 0 {
				t.Fatalf("add exit %d: %s", code, h.err.String())
			}
			if !strings.Contains(h.out.String(), "added #1") {
				t.Fatalf("unexpected add output %q", h.out.String())
			}
			if code := h.run("add", "Walk", "dog"); code != 0 {
				t.Fatalf("second add exit %d", code)
			}

			if code := h.run("done", "2"); code != 0 {
				t.Fatalf("done exit %d: %s", code, h.err.String())
			}
			if code := h.run("rm", "1"); code != 0 {
				t.Fatalf("rm exit %d: %s", code, h.err.String())
			}

			got := h.stored()
			if len(got) != 1 || got[0].ID != 2 || !got[0].Completed || got[0].Title != "Walk dog" {
				t.Fatalf("unexpected stored state %+v", got)
			}

			if code := h.run("ls"); code != 0 {
				t.Fatalf("ls exit %d", code)
			}
			out := h.out.String()
			if !strings.Contains(out, "[x] Walk dog") || strings.Contains(out, "Buy milk") {
				t.Fatalf("unexpected ls output:\n%s", out)
			}
		})
	}
}

func TestAddBlankIsUsageError(t *testing.T) {
	h := newHarness(t, backend.JSON)
	if code := h.run("add", "   "); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(h.err.String(), "empty title") {
		t.Fatalf("unexpected stderr %q", h.err.String())
	}
}

func TestUnknownIDIsUsageError(t *testing.T) {
	h := newHarness(t, backend.JSON)
	h.run("add", "x")
	if code := h.run("done", "9"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if code := h.run("rm", "abc"); code != 2 {
		t.Fatalf("expected exit 2 for bad number, got %d", code)
	}
	if code := h.run("rm"); code != 2 {
		t.Fatalf("expected exit 2 for missing arg, got %d", code)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	h := newHarness(t, backend.JSON)
	if code := h.run("frobnicate"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if code := h.run("help"); code != 0 || !strings.Contains(h.out.String(), "Subcommands:") {
		t.Fatalf("help exit %d output %q", code, h.out.String())
	}
}

func TestHelpListsEveryRootFlag(t *testing.T) {
	h := newHarness(t, backend.JSON)
	if code := h.run("help"); code != 0 {
		t.Fatalf("help exit %d", code)
	}
	for _, f := range []string{"-config", "-backend", "-data", "-group", "-theme"} {
		if !strings.Contains(h.out.String(), f) {
			t.Errorf("help output misses %s", f)
		}
	}
}

func TestEmptyListShowsPlaceholder(t *testing.T) {
	h := newHarness(t, backend.JSON)
	if code := h.run("ls"); code != 0 {
		t.Fatalf("ls exit %d", code)
	}
	if !strings.Contains(h.out.String(), "Todos not found") {
		t.Fatalf("expected placeholder, got:\n%s", h.out.String())
	}
}

func TestGroupedList(t *testing.T) {
	h := newHarness(t, backend.JSON)
	h.opt.Group = true
	h.run("add", "a")
	h.run("add", "b")
	h.run("done", "1")
	h.run("ls")
	out := h.out.String()
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	if pending < 0 || done < 0 || pending > done {
		t.Fatalf("expected Pending then Done sections:\n%s", out)
	}
	if strings.Index(out, "[x] a") < done {
		t.Fatalf("completed item should be under Done:\n%s", out)
	}
}

func TestHTMLRendersItems(t *testing.T) {
	h := newHarness(t, backend.JSON)
	h.run("add", "Buy milk")
	if code := h.run("html"); code != 0 {
		t.Fatalf("html exit %d", code)
	}
	out := h.out.String()
	for _, want := range []string{`data-id="1"`, "todo-list-item-text", "Buy milk", "todo-list-item-btn-remove"} {
		if !strings.Contains(out, want) {
			t.Fatalf("html output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "todos-not-found") {
		t.Fatal("placeholder rendered for non-empty list")
	}
}

func TestMarkdown(t *testing.T) {
	h := newHarness(t, backend.JSON)
	h.run("add", "Buy milk")
	if code := h.run("md"); code != 0 {
		t.Fatalf("md exit %d: %s", code, h.err.String())
	}
	if !strings.Contains(h.out.String(), "Buy milk") {
		t.Fatalf("markdown output misses title:\n%s", h.out.String())
	}
}

func TestChecklist(t *testing.T) {
	got := checklist([]model.Todo{
		{ID: 1, Title: "a_b", Completed: true},
		{ID: 2, Title: "c"},
	})
	want := "# Todos\n\n- [x] a\\_b _(#1, -)_\n- [ ] c _(#2, -)_\n"
	if got != want {
		t.Fatalf("unexpected checklist:\n%q\nwant\n%q", got, want)
	}
}

func TestUnknownBackendFails(t *testing.T) {
	h := newHarness(t, "redis")
	if code := h.run("ls"); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestAddRecoversFromCorruptDataFile(t *testing.T) {
	h := newHarness(t, backend.JSON)
	path := filepath.Join(h.opt.Config.DataDir, jsonstore.DataFileName)
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if code := h.run("add", "Buy", "milk"); code != 0 {
		t.Fatalf("add exit %d: %s", code, h.err.String())
	}
	got := h.stored()
	if len(got) != 1 || got[0].Title != "Buy milk" {
		t.Fatalf("add was not persisted over corrupt file: %+v", got)
	}

	if code := h.run("ls"); code != 0 {
		t.Fatalf("ls exit %d", code)
	}
	if !strings.Contains(h.out.String(), "Buy milk") {
		t.Fatalf("ls misses recovered item:\n%s", h.out.String())
	}
}
