package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(1, 2, 10); got != "█████░░░░░  50%" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := ProgressBar(0, 0, 5); got != "░░░░░   0%" {
		t.Fatalf("unexpected empty bar %q", got)
	}
}

func TestPanelPadsToWidestLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})
	want := "+------+\n| ab   |\n| abcd |\n+------+\n"
	if buf.String() != want {
		t.Fatalf("unexpected panel:\n%s", buf.String())
	}
}

func TestMonoDisablesColor(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("mono should not colorize, got %q", got)
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	SetTheme("solarized")
	if Current().Name != "classic" {
		t.Fatalf("expected classic, got %q", Current().Name)
	}
}

func TestOKAndFailWriters(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	var out, errOut bytes.Buffer
	Out, Err = &out, &errOut
	defer func() { Out, Err = os.Stdout, os.Stderr }()

	OK("added")
	Fail("boom")
	if strings.TrimSpace(out.String()) != "x added" {
		t.Fatalf("unexpected OK output %q", out.String())
	}
	if strings.TrimSpace(errOut.String()) != "! boom" {
		t.Fatalf("unexpected Fail output %q", errOut.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("unexpected truncate %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncate %q", got)
	}
}
