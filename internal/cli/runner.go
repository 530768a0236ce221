package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options tune behavior from root flags and config.
type Options struct {
	Group  bool // list grouped by pending/done
	Config config.Config
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	ui.SetTheme(opt.Config.Theme)
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return withSession(opt, false, func(s *session) int { return doList(s, opt) })

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <title...>")
			return 2
		}
		return withSession(opt, false, func(s *session) int { return doAdd(s, strings.Join(a, " ")) })

	case "done", "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo " + cmd + " <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		if cmd == "done" {
			return withSession(opt, false, func(s *session) int { return doToggle(s, id) })
		}
		return withSession(opt, false, func(s *session) int { return doRemove(s, id) })

	case "ui":
		return withSession(opt, true, func(s *session) int {
			if err := tui.Run(s.app); err != nil {
				ui.Fail("tui: " + err.Error())
				return 1
			}
			return 0
		})

	case "html":
		return withSession(opt, false, doHTML)

	case "md":
		return withSession(opt, false, doMarkdown)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `todo - a tiny todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  add <title...>     Add a new item (title can be multiple words)
  ls                 List items
  done <id>          Toggle completion of item <id>
  rm <id>            Remove item <id>
  ui                 Interactive list
  html               Print the rendered page
  md                 Print the list as a markdown checklist

Flags:
  -config <path>     YAML config file (default ~/.tada/tada.yaml)
  -backend <name>    Storage backend: json, bolt, sqlite, memory
  -data <dir>        Directory holding the storage file
  -group             Group ls output by pending/done
  -theme <name>      Output theme: classic, neon, mono

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
`)
}

// -------------- subcommand impls ----------------

func doAdd(s *session, title string) int {
	before := s.app.LastID()
	s.app.Enter(title)
	if s.app.LastID() == before {
		ui.Fail("add: empty title")
		return 2
	}
	ui.OK(fmt.Sprintf("added #%d", s.app.LastID()))
	return 0
}

func doToggle(s *session, id int) int {
	return clickItem(s, id, app.ClassBtnComplete, "toggled")
}

func doRemove(s *session, id int) int {
	return clickItem(s, id, app.ClassBtnRemove, "removed")
}

func clickItem(s *session, id int, buttonClass, done string) int {
	el := s.app.ItemElement(id)
	if el == nil {
		ui.Fail(fmt.Sprintf("no item with id %d", id))
		ui.Hint("run `todo ls` to see valid ids")
		return 2
	}
	btn := el.QuerySelector("." + buttonClass)
	if btn == nil {
		ui.Fail(fmt.Sprintf("item %d has no %s button", id, buttonClass))
		return 1
	}
	btn.Click()
	ui.OK(fmt.Sprintf("%s #%d", done, id))
	return 0
}

func doHTML(s *session) int {
	if err := s.app.Document().Render(ui.Out); err != nil {
		ui.Fail("render: " + err.Error())
		return 1
	}
	fmt.Fprintln(ui.Out)
	return 0
}
