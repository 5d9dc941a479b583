// Package maze provides the maze element model: rooms, walls, doors, and the
// maze container that owns them.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for an unrecognized name.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction names one of the four directional slots of a room.
type Direction int

// The four slots, in their fixed enumeration order.
const (
	North Direction = iota
	South
	East
	West
)

// Directions returns every direction in enumeration order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the direction facing d.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection maps a direction name or its first letter to a Direction.
// Matching is case-insensitive.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	default:
		return 0, fmt.Errorf("direction %q: %w", name, ErrUnknownDirection)
	}
}
