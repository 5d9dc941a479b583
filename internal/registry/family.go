// Package registry holds the named maze families the tools can build, and the
// process-wide default set of them.
package registry

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/mazekit/internal/construct"
	"github.com/cory-johannsen/mazekit/internal/maze"
)

// Shape selects which construction abstraction drives the assembly.
type Shape string

const (
	// ShapeFactory assembles through construct.CreateMaze.
	ShapeFactory Shape = "factory"
	// ShapeBuilder assembles through construct.BuildMaze.
	ShapeBuilder Shape = "builder"
)

// Family is a named, selectable maze family.
type Family struct {
	// Name is the canonical family name.
	Name string
	// Aliases are alternate names for this family.
	Aliases []string
	// Description is the one-line help text.
	Description string
	// Factory creates the family's factory. Nil for builder-only families.
	Factory func() construct.Factory
	// Builder creates the family's builder. Nil means a StandardBuilder over
	// Factory.
	Builder func() construct.Builder
}

// NewBuilder returns the family's builder.
//
// Postcondition: Returns nil only if the family defines neither constructor.
func (f *Family) NewBuilder() construct.Builder {
	if f.Builder != nil {
		return f.Builder()
	}
	if f.Factory != nil {
		return construct.NewStandardBuilder(f.Factory())
	}
	return nil
}

// Assemble builds the reference maze with the family through shape, logging
// each construction step at debug level.
//
// Postcondition: Returns the maze and true, (nil, false, nil) for a builder
// that materializes nothing, or an error.
func (f *Family) Assemble(shape Shape, logger *zap.Logger) (*maze.Maze, bool, error) {
	switch shape {
	case ShapeFactory:
		if f.Factory == nil {
			return nil, false, fmt.Errorf("family %q has no factory shape", f.Name)
		}
		m, err := construct.CreateMaze(construct.NewLoggedFactory(f.Factory(), logger))
		if err != nil {
			return nil, false, fmt.Errorf("family %q: %w", f.Name, err)
		}
		return m, true, nil
	case ShapeBuilder:
		b := f.NewBuilder()
		if b == nil {
			return nil, false, fmt.Errorf("family %q has no builder shape", f.Name)
		}
		m, ok, err := construct.BuildMaze(construct.NewLoggedBuilder(b, logger))
		if err != nil {
			return nil, false, fmt.Errorf("family %q: %w", f.Name, err)
		}
		return m, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown shape %q", shape)
	}
}

// BuiltinFamilies returns the families shipped with the tools.
func BuiltinFamilies() []Family {
	return []Family{
		{
			Name:        "normal",
			Aliases:     []string{"plain", "standard"},
			Description: "plain rooms, walls and doors",
			Factory:     func() construct.Factory { return construct.NormalFactory{} },
		},
		{
			Name:        "enchanted",
			Aliases:     []string{"magic"},
			Description: "enchanted rooms joined by doors that need a spell",
			Factory:     func() construct.Factory { return construct.EnchantedFactory{} },
		},
		{
			Name:        "bombed",
			Aliases:     []string{"bomb"},
			Description: "rooms that may hold a bomb, walled by bombable walls",
			Factory:     func() construct.Factory { return construct.BombedFactory{} },
		},
		{
			Name:        "prototype",
			Aliases:     []string{"proto"},
			Description: "plain elements produced by cloning prototypes",
			Factory: func() construct.Factory {
				return construct.NewPrototypeFactory(nil, nil, nil)
			},
		},
		{
			Name:        "bombed-prototype",
			Description: "bombed elements produced by cloning prototypes",
			Factory: func() construct.Factory {
				return construct.NewPrototypeFactory(maze.NewBombedWall(), nil, maze.NewBombRoom(0))
			},
		},
		{
			Name:        "counting",
			Aliases:     []string{"count"},
			Description: "counts rooms and doors without building a maze",
			Builder:     func() construct.Builder { return &construct.CountingBuilder{} },
		},
	}
}
