package construct

import "github.com/cory-johannsen/mazekit/internal/maze"

// WallPrototype produces walls by copying itself.
type WallPrototype interface {
	CloneWall() maze.Site
}

// DoorPrototype produces doors by copying itself onto a new pair of rooms.
type DoorPrototype interface {
	CloneDoor(r1, r2 maze.RoomSite) maze.Site
}

// RoomPrototype produces rooms by copying itself under a new number.
type RoomPrototype interface {
	CloneRoom(n int) maze.RoomSite
}

// PrototypeFactory creates every element by cloning a prototype, so a new
// family is configured with values instead of new types.
type PrototypeFactory struct {
	DefaultFactory
	wall WallPrototype
	door DoorPrototype
	room RoomPrototype
}

// NewPrototypeFactory returns a factory cloning the given prototypes. A nil
// prototype is replaced by the plain element of its kind.
//
// Postcondition: Returns a factory whose every Make call yields a fresh copy.
func NewPrototypeFactory(w WallPrototype, d DoorPrototype, r RoomPrototype) *PrototypeFactory {
	if w == nil {
		w = maze.NewWall()
	}
	if d == nil {
		d = &maze.Door{}
	}
	if r == nil {
		r = maze.NewRoom(0)
	}
	return &PrototypeFactory{wall: w, door: d, room: r}
}

// MakeWall clones the wall prototype.
func (f *PrototypeFactory) MakeWall() maze.Site { return f.wall.CloneWall() }

// MakeRoom clones the room prototype as room n.
func (f *PrototypeFactory) MakeRoom(n int) maze.RoomSite { return f.room.CloneRoom(n) }

// MakeDoor clones the door prototype between r1 and r2.
func (f *PrototypeFactory) MakeDoor(r1, r2 maze.RoomSite) maze.Site {
	return f.door.CloneDoor(r1, r2)
}
