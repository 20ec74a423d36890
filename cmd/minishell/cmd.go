package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oklog/run"

	"minishell/internal/config"
	"minishell/internal/core"
	"minishell/internal/interrupt"
	"minishell/internal/launcher"
	"minishell/internal/shell"
)

func main() {
	// Launched programs pass through this binary first.
	launcher.Init()

	configFile := flag.String("config", config.DefaultPath(), "YAML configuration file")
	debug := flag.Bool("debug", false, "trace command dispatch on stderr")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(core.ExitFailure)
	}
	if *debug {
		cfg.Debug = true
	}

	coord := &interrupt.Coordinator{}
	s, err := shell.New(cfg, core.DefaultStdio(), coord)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing shell: %v\n", err)
		os.Exit(core.ExitFailure)
	}

	w := interrupt.Watch(coord, s.Interrupt)
	code := core.ExitSuccess

	var g run.Group
	g.Add(w.Run, func(error) {
		w.Stop()
	})
	g.Add(func() error {
		code = s.Run()
		return nil
	}, func(error) {
		_ = s.Close()
	})
	_ = g.Run()

	os.Exit(code)
}
