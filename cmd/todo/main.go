package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/tada/internal/cli"
	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	configPath := flag.String("config", config.DefaultPath(), "YAML config file")
	backendName := flag.String("backend", "", "storage backend: json, bolt, sqlite, memory")
	dataDir := flag.String("data", "", "directory holding the storage file")
	theme := flag.String("theme", "", "output theme: classic, neon, mono")
	flag.Parse()

	cfg, err := config.Load(*configPath, config.Default())
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
	cfg = config.FromEnv(cfg)
	if *backendName != "" {
		cfg.Backend = *backendName
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:  *groupPending,
		Config: cfg,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
