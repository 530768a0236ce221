package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

func doList(s *session, opt Options) int {
	items := s.app.State()

	// Header + progress
	d, p := stats(items)
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(ui.Out, lines)
	return 0
}

func doMarkdown(s *session) int {
	r, err := glamour.NewTermRenderer(
		markdownStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		ui.Fail("markdown: " + err.Error())
		return 1
	}
	out, err := r.Render(checklist(s.app.State()))
	if err != nil {
		ui.Fail("markdown: " + err.Error())
		return 1
	}
	fmt.Fprint(ui.Out, out)
	return 0
}

func markdownStyle() glamour.TermRendererOption {
	if ui.Current().Name == "mono" {
		return glamour.WithStandardStyle("notty")
	}
	return glamour.WithAutoStyle()
}

// checklist renders items as a GitHub-style task list.
func checklist(items []model.Todo) string {
	var b strings.Builder
	b.WriteString("# Todos\n\n")
	if len(items) == 0 {
		b.WriteString("_Todos not found_\n")
		return b.String()
	}
	for _, it := range items {
		box := " "
		if it.Completed {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s _(#%d, %s)_\n", box, escapeMarkdown(it.Title), it.ID, formatDate(it.Date))
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "#", `\#`,
)

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }

func formatDate(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02")
}

// -------------- rendering helpers --------------

func stats(items []model.Todo) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []model.Todo) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "Todos not found")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("%3s", fmt.Sprintf("#%d", it.ID))
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			ui.C(ui.Dim, idx), ui.C(color, box), ui.Truncate(it.Title, 80),
			ui.C(t.Muted, formatDate(it.Date))))
	}
	return out
}

func groupLines(items []model.Todo) []string {
	var pend, done []model.Todo
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
