// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"gopkg.microglot.org/formula.go/internal/compiler"
	"gopkg.microglot.org/formula.go/internal/config"
	"gopkg.microglot.org/formula.go/internal/export"
	"gopkg.microglot.org/formula.go/internal/fs"
	"gopkg.microglot.org/formula.go/internal/idl"
)

type opts struct {
	Roots    []string
	Format   string
	Output   string
	Refs     bool
	Encoding string
	MaxDepth int
	Config   string
	Verbose  bool
	Exprs    []string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("formulac", pflag.ExitOnError)
	flags.StringSliceVar(&op.Roots, "root", nil, "Root search paths for formula files. Defaults to FORMULA_PATH.")
	flags.StringVar(&op.Format, "format", string(export.FormatText), "Output format: text, tree, tokens, json, or proto.")
	flags.StringVar(&op.Output, "output", "-", "Output file or - for STDOUT.")
	flags.BoolVar(&op.Refs, "refs", false, "List the references of each formula.")
	flags.StringVar(&op.Encoding, "encoding", "", "Character encoding of input files. Defaults to UTF-8.")
	flags.IntVar(&op.MaxDepth, "max-depth", 0, "Maximum expression nesting. Defaults to FORMULA_MAX_DEPTH or 256.")
	flags.StringVar(&op.Config, "config", "", "YAML configuration file.")
	flags.BoolVar(&op.Verbose, "verbose", false, "Log progress to STDERR.")
	flags.StringArrayVarP(&op.Exprs, "expr", "e", nil, "Parse a formula given on the command line.")
	_ = flags.Parse(os.Args[1:])

	if op.Config != "" {
		if err := applyConfig(flags, op); err != nil {
			fail(err)
		}
	}

	level := slog.LevelInfo
	if op.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	format, err := export.ParseFormat(op.Format)
	if err != nil {
		fail(err)
	}

	var fsOpts []fs.FileSystemLocalOption
	if op.Encoding != "" {
		fsOpts = append(fsOpts, fs.WithOptionEncoding(op.Encoding))
	}
	var f idl.FileSystem
	if len(op.Roots) > 0 {
		f, err = compiler.NewRootsFS(op.Roots, fsOpts...)
	} else {
		f, err = compiler.NewDefaultFS(os.LookupEnv, fsOpts...)
	}
	if err != nil {
		fail(err)
	}

	copts := []compiler.Option{
		compiler.OptionWithLookupEnv(os.LookupEnv),
		compiler.OptionWithFS(f),
		compiler.OptionWithLogger(logger),
	}
	if op.MaxDepth != 0 {
		copts = append(copts, compiler.OptionWithMaxDepth(op.MaxDepth))
	}
	c, err := compiler.New(copts...)
	if err != nil {
		fail(err)
	}

	targets := flags.Args()
	if len(targets) < 1 && len(op.Exprs) < 1 {
		fmt.Fprintln(os.Stderr, "usage: formulac [flags] <formula|file>...")
		flags.PrintDefaults()
		os.Exit(2)
	}

	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files:    targets,
		Formulas: op.Exprs,
	})
	exitCode := 0
	if err != nil {
		var me compiler.MultiException
		if !errors.As(err, &me) {
			fail(err)
		}
		for _, err := range me {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		exitCode = 1
	}

	exporter, err := export.NewExporter(ctx)
	if err != nil {
		fail(err)
	}
	exporter.Refs = op.Refs

	var w io.Writer = os.Stdout
	if op.Output != "-" {
		file, err := os.Create(op.Output)
		if err != nil {
			fail(err)
		}
		defer file.Close()
		w = file
	}
	if err := exporter.Write(w, out, format); err != nil {
		fail(err)
	}
	logger.Debug("done", "sheets", len(out.Sheets), "failed", exitCode != 0)
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// applyConfig fills every option that was not set on the command line from
// the configuration file.
func applyConfig(flags *pflag.FlagSet, op *opts) error {
	c, err := config.Load(op.Config)
	if err != nil {
		return err
	}
	if !flags.Changed("root") && len(c.Roots) > 0 {
		op.Roots = c.Roots
	}
	if !flags.Changed("format") && c.Format != "" {
		op.Format = c.Format
	}
	if !flags.Changed("max-depth") && c.MaxDepth != 0 {
		op.MaxDepth = c.MaxDepth
	}
	if !flags.Changed("encoding") && c.Encoding != "" {
		op.Encoding = c.Encoding
	}
	if !flags.Changed("refs") {
		op.Refs = op.Refs || c.Refs
	}
	if !flags.Changed("verbose") {
		op.Verbose = op.Verbose || c.Verbose
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
