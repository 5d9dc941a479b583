package maze

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// ErrNoPassage is returned when a room side is not a door.
var ErrNoPassage = errors.New("side is not a passage")

// Maze owns a set of rooms keyed by room number.
type Maze struct {
	// ID distinguishes maze instances in logs.
	ID    string
	rooms map[int]RoomSite
}

// NewMaze returns an empty maze.
func NewMaze() *Maze {
	return &Maze{
		ID:    uuid.NewString(),
		rooms: make(map[int]RoomSite),
	}
}

// AddRoom inserts r, replacing any room already registered under its number.
// A nil room is ignored.
func (m *Maze) AddRoom(r RoomSite) {
	if r == nil {
		return
	}
	m.rooms[r.Number()] = r
}

// Room returns the room numbered n.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (m *Maze) Room(n int) (RoomSite, bool) {
	r, ok := m.rooms[n]
	return r, ok
}

// Rooms returns every room in ascending number order.
func (m *Maze) Rooms() []RoomSite {
	out := make([]RoomSite, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}

// Len returns the number of rooms.
func (m *Maze) Len() int { return len(m.rooms) }

// Neighbor resolves the room across the passage on side d of from.
//
// Postcondition: Returns ErrNoPassage if the side is not a door, or
// ErrRoomNotFound if the door leads to a room this maze does not hold.
func (m *Maze) Neighbor(from RoomSite, d Direction) (RoomSite, error) {
	p, ok := from.Side(d).(Passage)
	if !ok {
		return nil, fmt.Errorf("room %d %s: %w", from.Number(), d, ErrNoPassage)
	}
	other, err := p.OtherSide(from.Number())
	if err != nil {
		return nil, err
	}
	r, ok := m.rooms[other]
	if !ok {
		return nil, fmt.Errorf("room %d %s leads to room %d: %w", from.Number(), d, other, ErrRoomNotFound)
	}
	return r, nil
}

// Move steps p through side d of its current room. Walls and unset sides
// leave p where it is. Passing a door also enters the destination room.
//
// Precondition: p.Location must name a room of m.
// Postcondition: Returns the room p stands in afterwards, or the error that
// stopped the move.
func (m *Maze) Move(p *Party, d Direction) (RoomSite, error) {
	from, ok := m.rooms[p.Location]
	if !ok {
		return nil, fmt.Errorf("party location %d: %w", p.Location, ErrRoomNotFound)
	}
	site := from.Side(d)
	if site == nil {
		return from, nil
	}
	if err := site.Enter(p); err != nil {
		return from, err
	}
	if p.Location == from.Number() {
		return from, nil
	}
	to, ok := m.rooms[p.Location]
	if !ok {
		missing := p.Location
		p.Location = from.Number()
		return from, fmt.Errorf("room %d %s leads to room %d: %w", from.Number(), d, missing, ErrRoomNotFound)
	}
	if err := to.Enter(p); err != nil {
		return to, err
	}
	return to, nil
}

// Reachable returns the numbers of every room connected to room from through
// doors, including from itself. An unknown start yields an empty set.
func (m *Maze) Reachable(from int) mapset.Set[int] {
	visited := mapset.New[int]()
	start, ok := m.rooms[from]
	if !ok {
		return visited
	}
	queue := []RoomSite{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current.Number()) {
			continue
		}
		visited.Put(current.Number())
		for _, d := range Directions() {
			next, err := m.Neighbor(current, d)
			if err != nil {
				continue
			}
			if !visited.Has(next.Number()) {
				queue = append(queue, next)
			}
		}
	}
	return visited
}
