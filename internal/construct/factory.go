// Package construct assembles mazes through interchangeable element
// families. A family is either a Factory, which creates each element kind on
// request, or a Builder, which is driven through a fixed sequence of steps.
package construct

import "github.com/cory-johannsen/mazekit/internal/maze"

// Factory creates the elements of one maze family.
type Factory interface {
	MakeMaze() *maze.Maze
	MakeWall() maze.Site
	MakeRoom(n int) maze.RoomSite
	MakeDoor(r1, r2 maze.RoomSite) maze.Site
}

// DefaultFactory builds plain mazes. Families embed it and override only the
// element kinds they change.
type DefaultFactory struct{}

// MakeMaze returns an empty maze.
func (DefaultFactory) MakeMaze() *maze.Maze { return maze.NewMaze() }

// MakeWall returns a plain wall.
func (DefaultFactory) MakeWall() maze.Site { return maze.NewWall() }

// MakeRoom returns a plain room numbered n.
func (DefaultFactory) MakeRoom(n int) maze.RoomSite { return maze.NewRoom(n) }

// MakeDoor returns a plain door joining r1 and r2.
func (DefaultFactory) MakeDoor(r1, r2 maze.RoomSite) maze.Site { return maze.NewDoor(r1, r2) }

// Funcs bundles per-element constructors into a Factory. Nil fields fall back
// to DefaultFactory.
type Funcs struct {
	Maze func() *maze.Maze
	Wall func() maze.Site
	Room func(n int) maze.RoomSite
	Door func(r1, r2 maze.RoomSite) maze.Site
}

// MakeMaze calls f.Maze or the default.
func (f Funcs) MakeMaze() *maze.Maze {
	if f.Maze == nil {
		return DefaultFactory{}.MakeMaze()
	}
	return f.Maze()
}

// MakeWall calls f.Wall or the default.
func (f Funcs) MakeWall() maze.Site {
	if f.Wall == nil {
		return DefaultFactory{}.MakeWall()
	}
	return f.Wall()
}

// MakeRoom calls f.Room or the default.
func (f Funcs) MakeRoom(n int) maze.RoomSite {
	if f.Room == nil {
		return DefaultFactory{}.MakeRoom(n)
	}
	return f.Room(n)
}

// MakeDoor calls f.Door or the default.
func (f Funcs) MakeDoor(r1, r2 maze.RoomSite) maze.Site {
	if f.Door == nil {
		return DefaultFactory{}.MakeDoor(r1, r2)
	}
	return f.Door(r1, r2)
}
