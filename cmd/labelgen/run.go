package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"

	"labelgen/internal/analyze"
	"labelgen/internal/common"
	"labelgen/internal/gen"
	"labelgen/internal/plan"
)

// errFailed reports a run whose problems were already printed.
var errFailed = errors.New("labelgen failed")

// options is the parsed command line.
type options struct {
	Dir     string
	Types   []string
	Tags    string
	Prefix  bool
	Check   bool
	Verbose bool
}

func run(ctx context.Context, cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		cfg.Cmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	if common.IsMultiple(args) {
		return fmt.Errorf("%w: expected at most one directory, got %v", cli.ErrUsage, args)
	}

	opts := options{
		Dir:     ".",
		Types:   splitTypes(cfg.Types),
		Tags:    cfg.Tags,
		Prefix:  cfg.Prefix,
		Check:   cfg.Check,
		Verbose: cfg.Verbose,
	}

	if dir, ok := common.First(args); ok {
		opts.Dir = dir
	}

	p := newPrinter(os.Stderr, useColor(cfg, os.Stderr))
	logger := newLogger(os.Stderr, cfg.Verbose)

	if err := execute(ctx, opts, cc.Out, p, logger); err != nil {
		if !errors.Is(err, errFailed) {
			p.Error(err)
		}

		return cli.ExitCodeErr(1)
	}

	return nil
}

// execute loads the package in opts.Dir, resolves its directives and writes
// or checks the generated files. Diagnostics go to p, diffs to out. Nothing is
// written when any directive fails.
func execute(ctx context.Context, opts options, out io.Writer, p *printer, logger *slog.Logger) error {
	loader := analyze.NewLoader()
	if opts.Tags != "" {
		loader.BuildFlags = []string{"-tags=" + opts.Tags}
	}

	pkg, err := loader.Load(ctx, opts.Dir)
	if err != nil {
		return err
	}

	for _, terr := range pkg.TypeErrors {
		logger.Debug("type error", "error", terr)
	}

	config := plan.DefaultConfig()
	config.Naming.Prefix = opts.Prefix
	config.Types = opts.Types
	config.Logger = logger

	resolved, err := plan.NewResolver(pkg, config).Resolve()

	if opts.Verbose {
		logger.Debug("resolved plan", "labelSets", len(resolved.LabelSets), "failures", len(resolved.Failures))
		fmt.Fprint(p.w, spew.Sdump(resolved.LabelSets))
	}

	p.Diagnostics(resolved.Diagnostics)

	if resolved.Diagnostics.HasErrors() {
		logger.Debug("resolution failed", "error", err)
		return errFailed
	}

	if common.IsEmpty(resolved.LabelSets) {
		return nil
	}

	genConfig := gen.DefaultGeneratorConfig()
	genConfig.Logger = logger

	files, err := gen.NewGenerator(genConfig).Generate(resolved)
	if err != nil {
		return err
	}

	if opts.Check {
		return check(files, out, p)
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("wrote", "file", f.Path(), "type", f.TypeName)
	}

	return nil
}

// check prints a diff for every stale file.
func check(files []gen.GeneratedFile, out io.Writer, p *printer) error {
	stale, err := gen.Check(files)
	if err != nil {
		return err
	}

	if common.IsEmpty(stale) {
		return nil
	}

	diffs := &printer{w: out, pos: p.pos, add: p.add, del: p.del, hunk: p.hunk}

	for _, s := range stale {
		if s.Missing {
			fmt.Fprintf(p.w, "%s: missing\n", s.File.Path())
		} else {
			fmt.Fprintf(p.w, "%s: out of date\n", s.File.Path())
		}

		diffs.Diff(s.Diff)
	}

	return errFailed
}

func splitTypes(s string) []string {
	var types []string

	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	return types
}
