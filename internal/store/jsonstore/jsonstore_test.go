package jsonstore

import (
	"errors"
	"os"
	"testing"

	"github.com/idilsaglam/tada/internal/store"
)

func TestGetMissingFile(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Get("todos"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetGetPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	if err := New(dir).Set("todos", `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := New(dir).Set("other", "x"); err != nil {
		t.Fatalf("set other: %v", err)
	}
	got, err := New(dir).Get("todos")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `[{"id":1}]` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestCorruptFileIsReportedByGet(t *testing.T) {
	s := New(t.TempDir())
	if err := os.WriteFile(s.Path(), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Get("todos"); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestSetOverwritesCorruptFile(t *testing.T) {
	s := New(t.TempDir())
	if err := os.WriteFile(s.Path(), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Set("todos", `[{"id":1}]`); err != nil {
		t.Fatalf("set over corrupt file: %v", err)
	}
	got, err := s.Get("todos")
	if err != nil {
		t.Fatalf("get after recovery: %v", err)
	}
	if got != `[{"id":1}]` {
		t.Fatalf("unexpected value %q", got)
	}
}
