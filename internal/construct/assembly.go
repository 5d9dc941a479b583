package construct

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/mazekit/internal/maze"
)

// ErrNilElement is returned when a factory yields a nil element.
var ErrNilElement = errors.New("factory returned nil element")

// CreateMaze assembles the reference maze through f: rooms 1 and 2 joined by
// one door, room 1's door on its east side and room 2's on its west side,
// walls everywhere else.
//
// Precondition: f must be non-nil.
// Postcondition: Returns a maze holding exactly rooms 1 and 2, or
// ErrNilElement if f produced a nil element.
func CreateMaze(f Factory) (*maze.Maze, error) {
	m := f.MakeMaze()
	if m == nil {
		return nil, fmt.Errorf("making maze: %w", ErrNilElement)
	}
	r1 := f.MakeRoom(1)
	r2 := f.MakeRoom(2)
	if r1 == nil || r2 == nil {
		return nil, fmt.Errorf("making rooms: %w", ErrNilElement)
	}
	door := f.MakeDoor(r1, r2)
	if door == nil {
		return nil, fmt.Errorf("making door: %w", ErrNilElement)
	}

	wall := func() (maze.Site, error) {
		w := f.MakeWall()
		if w == nil {
			return nil, fmt.Errorf("making wall: %w", ErrNilElement)
		}
		return w, nil
	}
	layout := []struct {
		room maze.RoomSite
		dir  maze.Direction
		door bool
	}{
		{r1, maze.North, false},
		{r1, maze.East, true},
		{r1, maze.South, false},
		{r1, maze.West, false},
		{r2, maze.North, false},
		{r2, maze.East, false},
		{r2, maze.South, false},
		{r2, maze.West, true},
	}
	for _, side := range layout {
		if side.door {
			side.room.SetSide(side.dir, door)
			continue
		}
		w, err := wall()
		if err != nil {
			return nil, err
		}
		side.room.SetSide(side.dir, w)
	}

	m.AddRoom(r1)
	m.AddRoom(r2)
	return m, nil
}

// BuildMaze drives b through the reference maze steps: start, rooms 1 and 2,
// then a door between them.
//
// Precondition: b must be non-nil.
// Postcondition: Returns whatever b.Result yields, or the first step error.
func BuildMaze(b Builder) (*maze.Maze, bool, error) {
	b.Start()
	for _, n := range []int{1, 2} {
		if err := b.AddRoom(n); err != nil {
			return nil, false, err
		}
	}
	if err := b.AddDoor(1, 2); err != nil {
		return nil, false, err
	}
	m, ok := b.Result()
	return m, ok, nil
}
