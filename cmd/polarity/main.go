package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/tsawler/polarity/internal/cfg"
)

func main() {
	var opts cfg.Options
	parser := cfg.NewParser(&opts)

	e := &env{opts: &opts, in: os.Stdin, out: os.Stdout}
	if err := addCommands(parser, e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		setupLogging(opts.LogLevel())
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if cfg.IsHelp(err) {
			return
		}
		os.Exit(1)
	}
}
