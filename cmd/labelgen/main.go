// Package main provides the CLI entrypoint for labelgen.
//
// labelgen generates label enums. It loads the Go package in a directory,
// finds every type documented with
//
//	//labelgen:generate_labels(file = "animals.toml")
//
// and writes <type>_labels.go next to it, holding one constant per mapping
// key and the LabelNum, FromLabelID, LabelStr and LabelID methods. It is
// meant to run from go generate:
//
//	//go:generate go run labelgen/cmd/labelgen
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/scott-cotton/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.MainContext(ctx, MainCommand(ctx))
}

// MainCommand returns the labelgen command. ctx bounds package loading.
func MainCommand(ctx context.Context) *cli.Command {
	cfg := &Config{}

	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Cmd, "labelgen").
		WithSynopsis("labelgen [opts] [dir]").
		WithDescription("Generate label enums from //labelgen:generate_labels directives in the Go package in dir (default: current directory).").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(ctx, cfg, cc, args)
		})
}

// Config holds the command line options.
type Config struct {
	Types   string `cli:"name=type desc='comma separated enum types to generate (default: all)'"`
	Tags    string `cli:"name=tags desc='comma separated build tags used to load the package'"`
	Prefix  bool   `cli:"name=prefix desc='prefix constant names with the enum type name'"`
	Check   bool   `cli:"name=check desc='do not write, report missing or stale generated files'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='debug logging'"`
	Color   bool   `cli:"name=color desc='force colored diagnostics'"`
	NoColor bool   `cli:"name=no-color desc='disable colored diagnostics'"`

	Cmd *cli.Command
}
