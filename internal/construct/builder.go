package construct

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/mazekit/internal/maze"
)

var (
	// ErrNotStarted is returned when a materializing builder receives a step
	// before Start.
	ErrNotStarted = errors.New("builder not started")
	// ErrNoCommonWall is returned when two rooms have no pair of facing sides
	// left to hold a door.
	ErrNoCommonWall = errors.New("no common wall between rooms")
)

// Builder is driven through the maze construction steps. A builder need not
// produce a maze at all.
type Builder interface {
	Start()
	AddRoom(n int) error
	AddDoor(from, to int) error
	// Result returns the built maze, or (nil, false) when there is none.
	Result() (*maze.Maze, bool)
}

// NopBuilder ignores every step and produces nothing. Builders embed it and
// override only the steps they care about.
type NopBuilder struct{}

// Start does nothing.
func (NopBuilder) Start() {}

// AddRoom does nothing.
func (NopBuilder) AddRoom(int) error { return nil }

// AddDoor does nothing.
func (NopBuilder) AddDoor(int, int) error { return nil }

// Result reports that no maze was built.
func (NopBuilder) Result() (*maze.Maze, bool) { return nil, false }

// doorPreference is the order in which CommonWall tries sides of the
// originating room.
var doorPreference = []maze.Direction{maze.East, maze.South, maze.West, maze.North}

// CommonWall picks the side of from that faces to. Rooms carry no
// coordinates, so the first side in east, south, west, north order whose
// facing side on to is also free of doors is taken.
//
// Postcondition: Returns ErrNoCommonWall when every candidate pair already
// holds a door.
func CommonWall(from, to maze.RoomSite) (maze.Direction, error) {
	for _, d := range doorPreference {
		if isPassage(from.Side(d)) || isPassage(to.Side(d.Opposite())) {
			continue
		}
		return d, nil
	}
	return 0, fmt.Errorf("rooms %d and %d: %w", from.Number(), to.Number(), ErrNoCommonWall)
}

func isPassage(s maze.Site) bool {
	_, ok := s.(maze.Passage)
	return ok
}

// StandardBuilder materializes a maze, creating its elements through a
// Factory.
type StandardBuilder struct {
	factory Factory
	current *maze.Maze
}

// NewStandardBuilder returns a builder creating elements with f. A nil f
// means DefaultFactory.
func NewStandardBuilder(f Factory) *StandardBuilder {
	if f == nil {
		f = DefaultFactory{}
	}
	return &StandardBuilder{factory: f}
}

// Start begins a new maze, discarding any maze in progress.
func (b *StandardBuilder) Start() {
	b.current = b.factory.MakeMaze()
}

// AddRoom adds room n with a wall on every side.
//
// Precondition: Start must have been called.
func (b *StandardBuilder) AddRoom(n int) error {
	if b.current == nil {
		return fmt.Errorf("adding room %d: %w", n, ErrNotStarted)
	}
	r := b.factory.MakeRoom(n)
	for _, d := range maze.Directions() {
		r.SetSide(d, b.factory.MakeWall())
	}
	b.current.AddRoom(r)
	return nil
}

// AddDoor places one door shared by rooms from and to on their common wall.
//
// Precondition: Start must have been called and both rooms added.
// Postcondition: Returns maze.ErrRoomNotFound for an unknown room number.
func (b *StandardBuilder) AddDoor(from, to int) error {
	if b.current == nil {
		return fmt.Errorf("adding door %d-%d: %w", from, to, ErrNotStarted)
	}
	r1, ok := b.current.Room(from)
	if !ok {
		return fmt.Errorf("adding door %d-%d: room %d: %w", from, to, from, maze.ErrRoomNotFound)
	}
	r2, ok := b.current.Room(to)
	if !ok {
		return fmt.Errorf("adding door %d-%d: room %d: %w", from, to, to, maze.ErrRoomNotFound)
	}
	dir, err := CommonWall(r1, r2)
	if err != nil {
		return fmt.Errorf("adding door %d-%d: %w", from, to, err)
	}
	door := b.factory.MakeDoor(r1, r2)
	r1.SetSide(dir, door)
	r2.SetSide(dir.Opposite(), door)
	return nil
}

// Result returns the maze in progress.
func (b *StandardBuilder) Result() (*maze.Maze, bool) {
	return b.current, b.current != nil
}

// CountingBuilder counts rooms and doors without building anything.
type CountingBuilder struct {
	NopBuilder
	rooms int
	doors int
}

// AddRoom counts a room.
func (b *CountingBuilder) AddRoom(int) error {
	b.rooms++
	return nil
}

// AddDoor counts a door.
func (b *CountingBuilder) AddDoor(int, int) error {
	b.doors++
	return nil
}

// Counts returns the number of rooms and doors seen.
func (b *CountingBuilder) Counts() (rooms, doors int) {
	return b.rooms, b.doors
}
