// Package main provides mazegame, which assembles the two-room reference maze
// with a chosen family and prints it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cory-johannsen/mazekit/internal/config"
	"github.com/cory-johannsen/mazekit/internal/construct"
	"github.com/cory-johannsen/mazekit/internal/maze"
	"github.com/cory-johannsen/mazekit/internal/observability"
	"github.com/cory-johannsen/mazekit/internal/registry"
	"github.com/cory-johannsen/mazekit/internal/scripting"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("mazegame: %v", err)
	}
}

// flagKeys maps command-line flags onto the config keys they override.
var flagKeys = map[string]string{
	"family":  "maze.family",
	"shape":   "maze.shape",
	"format":  "maze.format",
	"color":   "maze.color",
	"scripts": "scripting.script_dir",
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mazegame", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file (optional)")
	fs.String("family", "normal", "maze family name or alias")
	fs.String("shape", "factory", "construction shape: factory or builder")
	fs.String("format", "text", "output format: text or yaml")
	fs.String("color", "auto", "color text output: auto, always or never")
	fs.String("scripts", "", "directory of scripted family subdirectories")
	list := fs.Bool("list", false, "list the available families and exit")
	walk := fs.String("walk", "", "comma-separated directions to walk from room 1, e.g. east,west")
	spell := fs.String("spell", "", "spell the walking party carries")
	arm := fs.Bool("arm", false, "arm every bomb room before walking")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := config.NewViper()
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return err
	}

	logger, err := observability.NewWriterLogger(cfg.Logging, stderr)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg, closeScripts, err := loadRegistry(cfg.Scripting, logger)
	if err != nil {
		return err
	}
	defer closeScripts()

	if *list {
		return listFamilies(stdout, reg)
	}

	fam, ok := reg.Resolve(cfg.Maze.Family)
	if !ok {
		return fmt.Errorf("unknown family %q (known: %s)", cfg.Maze.Family, strings.Join(reg.Names(), ", "))
	}
	logger.Info("assembling maze",
		zap.String("family", fam.Name),
		zap.String("shape", cfg.Maze.Shape),
	)

	m, ok, err := assemble(stdout, fam, registry.Shape(cfg.Maze.Shape), logger)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if *walk != "" {
		if err := walkMaze(stdout, m, *walk, maze.Spell(*spell), *arm); err != nil {
			return err
		}
	}
	return printMaze(stdout, m, cfg.Maze)
}

// loadRegistry returns the default registry, extended with the scripted
// families under cfg.ScriptDir when one is configured.
func loadRegistry(cfg config.ScriptingConfig, logger *zap.Logger) (*registry.Registry, func(), error) {
	if cfg.ScriptDir == "" {
		return registry.Default(), func() {}, nil
	}
	mgr := scripting.NewManager(logger)
	reg, err := registry.LoadScriptedFamilies(registry.Default(), mgr, cfg.ScriptDir, cfg.InstructionLimit, logger)
	if err != nil {
		mgr.Close()
		return nil, nil, err
	}
	logger.Info("scripted families loaded",
		zap.String("dir", cfg.ScriptDir),
		zap.Strings("families", mgr.Families()),
	)
	return reg, mgr.Close, nil
}

func listFamilies(w io.Writer, reg *registry.Registry) error {
	for _, fam := range reg.Families() {
		line := fmt.Sprintf("%-18s %s", fam.Name, fam.Description)
		if len(fam.Aliases) > 0 {
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(fam.Aliases, ", "))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// assemble runs the family through shape. A builder that materializes
// nothing has its step counts reported instead.
func assemble(w io.Writer, fam *registry.Family, shape registry.Shape, logger *zap.Logger) (*maze.Maze, bool, error) {
	if shape != registry.ShapeBuilder {
		return fam.Assemble(shape, logger)
	}
	b := fam.NewBuilder()
	if b == nil {
		return nil, false, fmt.Errorf("family %q has no builder shape", fam.Name)
	}
	m, ok, err := construct.BuildMaze(construct.NewLoggedBuilder(b, logger))
	if err != nil {
		return nil, false, fmt.Errorf("family %q: %w", fam.Name, err)
	}
	if !ok {
		if c, isCounter := b.(interface{ Counts() (int, int) }); isCounter {
			rooms, doors := c.Counts()
			_, err = fmt.Fprintf(w, "The maze has %d rooms and %d doors.\n", rooms, doors)
			return nil, false, err
		}
		_, err = fmt.Fprintf(w, "Family %s built no maze.\n", fam.Name)
		return nil, false, err
	}
	return m, true, nil
}

// walkMaze moves a party from room 1 through each named direction, reporting
// every step. A refused door ends the step, not the walk.
func walkMaze(w io.Writer, m *maze.Maze, route string, spell maze.Spell, arm bool) error {
	if arm {
		for _, r := range m.Rooms() {
			if br, ok := r.(*maze.BombRoom); ok {
				br.Arm()
			}
		}
	}
	p := &maze.Party{Location: 1, Spell: spell}
	for _, step := range strings.Split(route, ",") {
		d, err := maze.ParseDirection(step)
		if err != nil {
			return err
		}
		room, err := m.Move(p, d)
		switch {
		case room == nil:
			return err
		case err != nil:
			fmt.Fprintf(w, "%s: blocked (%v)\n", d, err)
		default:
			fmt.Fprintf(w, "%s: room_%d %s\n", d, room.Number(), room)
		}
	}
	reached := reachable(m, 1)
	_, err := fmt.Fprintf(w, "Reachable from room_1: %v\n", reached)
	return err
}

func reachable(m *maze.Maze, from int) []int {
	set := m.Reachable(from)
	out := make([]int, 0, set.Size())
	set.Each(func(n int) { out = append(out, n) })
	sort.Ints(out)
	return out
}

func printMaze(w io.Writer, m *maze.Maze, cfg config.MazeConfig) error {
	if cfg.Format == "yaml" {
		doc, err := maze.Snapshot(m)
		if err != nil {
			return err
		}
		_, err = w.Write(doc)
		return err
	}
	if useColor(w, cfg.Color) {
		_, err := io.WriteString(w, maze.RenderColor(m))
		return err
	}
	_, err := io.WriteString(w, maze.Render(m))
	return err
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
