// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command states prints the truth table of boolean equations.
//
// Signals and equations come from a CUE machine description (-f) and from the
// command line:
//
//	states -s a:1 -s b:2 "a & b[1]" "not b"
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/states"
	"github.com/db47h/states/internal/config"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

type signalFlags []string

func (s *signalFlags) String() string     { return strings.Join(*s, ",") }
func (s *signalFlags) Set(v string) error { *s = append(*s, v); return nil }

func newLogger(w io.Writer, logFile io.Writer, level slog.Leveler) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
	if logFile != nil {
		handlers = append(handlers, slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// parseSignal parses a "name:width[:kind]" command line signal.
//
func parseSignal(m *states.Machine, spec string) error {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return errors.Errorf("invalid signal %q, expected name:width[:kind]", spec)
	}
	w, err := strconv.Atoi(parts[1])
	if err != nil {
		return errors.Wrapf(err, "signal %q", spec)
	}
	kind := states.Input
	if len(parts) == 3 {
		var ok bool
		if kind, ok = states.ParseSignalKind(parts[2]); !ok {
			return errors.Errorf("signal %q: unknown kind %q", spec, parts[2])
		}
	}
	_, err = m.AddSignal(parts[0], kind, w)
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("states", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		sigs    signalFlags
		cfgFile = fs.String("f", "", "CUE machine description")
		logPath = fs.String("log", "", "write JSON logs to `file`")
		verbose = fs.Bool("v", false, "verbose logging")
		maxW    = fs.Int("max-width", states.MaxTruthTableWidth, "maximum combined input `bits`")
	)
	fs.Var(&sigs, "s", "add a signal `name:width[:kind]` (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := new(slog.LevelVar)
	if *verbose {
		level.Set(slog.LevelDebug)
	}
	var lf io.Writer
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		lf = f
	}
	log := newLogger(stderr, lf, level)

	m := states.NewMachine()
	var eqs []*states.Equation
	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			return err
		}
		if m, eqs, err = cfg.Build(); err != nil {
			return err
		}
		log.Debug("loaded machine", "file", *cfgFile, "signals", m.Size(), "equations", len(eqs))
	}
	for _, s := range sigs {
		if err := parseSignal(m, s); err != nil {
			return err
		}
	}
	for _, text := range fs.Args() {
		eq, err := states.ParseEquation(text, m)
		if err != nil {
			return err
		}
		log.Debug("parsed equation", "text", eq.Text(), "signals", len(eq.Signals()))
		eqs = append(eqs, eq)
	}
	if len(eqs) == 0 {
		return errors.New("no equation")
	}

	defer func(w int) { states.MaxTruthTableWidth = w }(states.MaxTruthTableWidth)
	states.MaxTruthTableWidth = *maxW
	tt, err := states.NewTruthTable(eqs...)
	if err != nil {
		return err
	}
	log.Info("truth table", "inputs", len(tt.Inputs()), "width", tt.Width(), "rows", tt.RowCount())
	for i, label := range tt.Labels() {
		for r, out := range tt.OutputTable() {
			if out[i].IsNull() {
				log.Warn("null output", "equation", label, "row", r)
				break
			}
		}
	}
	_, err = fmt.Fprint(stdout, tt)
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
