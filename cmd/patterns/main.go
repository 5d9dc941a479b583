// Package main provides patterns, which runs the alert, adapter and singleton
// demonstrations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mazekit/internal/config"
	"github.com/cory-johannsen/mazekit/internal/dialog"
	"github.com/cory-johannsen/mazekit/internal/observability"
	"github.com/cory-johannsen/mazekit/internal/registry"
	"github.com/cory-johannsen/mazekit/internal/shape"
)

var heading = color.Style{color.FgCyan, color.OpBold}

// demos lists every demonstration in the order "all" runs them.
var demos = []struct {
	name string
	run  func(w io.Writer, logger *zap.Logger) error
}{
	{"dialog", runDialog},
	{"adapter", runAdapter},
	{"singleton", runSingleton},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("patterns: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("patterns", flag.ContinueOnError)
	demo := fs.String("demo", "all", "demo to run: all, dialog, adapter or singleton")
	level := fs.String("log-level", "warn", "log level: debug, info, warn or error")
	plain := fs.Bool("plain", false, "disable colored headings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := observability.NewLogger(config.LoggingConfig{Level: *level, Format: "console"})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if *plain {
		color.Disable()
	}

	ran := false
	for _, d := range demos {
		if *demo != "all" && *demo != d.name {
			continue
		}
		ran = true
		logger.Debug("running demo", zap.String("demo", d.name))
		if _, err := fmt.Fprintln(stdout, heading.Sprint("== "+d.name+" ==")); err != nil {
			return err
		}
		if err := d.run(stdout, logger); err != nil {
			return fmt.Errorf("demo %s: %w", d.name, err)
		}
	}
	if !ran {
		return fmt.Errorf("unknown demo %q", *demo)
	}
	return nil
}

func runDialog(w io.Writer, logger *zap.Logger) error {
	for _, kind := range dialog.Kinds() {
		alert, err := dialog.New(kind)
		if err != nil {
			return err
		}
		logger.Debug("alert created", zap.Stringer("kind", kind))
		if err := alert.Show(w); err != nil {
			return err
		}
	}
	return nil
}

func runAdapter(w io.Writer, _ *zap.Logger) error {
	var s shape.Shape = shape.NewTextShape(shape.NewTextView())
	_, err := fmt.Fprintf(w, "TextShape bounding box: %s\n", s.BoundingBox())
	return err
}

func runSingleton(w io.Writer, logger *zap.Logger) error {
	first, second := registry.Default(), registry.Default()
	if _, err := fmt.Fprintf(w, "one registry instance: %t\n", first == second); err != nil {
		return err
	}
	fam, ok := first.Resolve("normal")
	if !ok {
		return errors.New("default registry has no normal family")
	}
	m, _, err := fam.Assemble(registry.ShapeFactory, logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "This is Maze %s with %d rooms.\n", m.ID, m.Len())
	return err
}
