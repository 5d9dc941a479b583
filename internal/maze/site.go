package maze

import "errors"

var (
	// ErrRoomNotFound is returned when a room number is not registered in a maze.
	ErrRoomNotFound = errors.New("referenced room not found")
	// ErrNotAdjacent is returned when a door is asked for the far side of a
	// room it does not join.
	ErrNotAdjacent = errors.New("room is not joined by this door")
	// ErrSpellRequired is returned when a party without the required spell
	// tries to pass an enchanted door.
	ErrSpellRequired = errors.New("door requires a spell")
)

// Site is anything that can occupy a directional slot in a room.
type Site interface {
	// Enter applies the side effects of p stepping onto the site.
	Enter(p *Party) error
	String() string
}

// Spell is the capability an enchanted door demands. The zero value is no spell.
type Spell string

// Party is whoever walks through the maze.
type Party struct {
	// Location is the number of the room the party currently stands in.
	Location int
	// Spell is the spell the party carries, if any.
	Spell Spell
}

// Knows reports whether the party carries s.
func (p *Party) Knows(s Spell) bool {
	return s != "" && p.Spell == s
}

// Wall is a plain, stateless wall. Entering it has no effect.
type Wall struct{}

// NewWall returns a plain wall.
func NewWall() *Wall { return &Wall{} }

// Enter is a no-op.
func (w *Wall) Enter(*Party) error { return nil }

func (w *Wall) String() string { return "Wall" }

// BombedWall is a wall that a bomb can destroy.
type BombedWall struct {
	Destroyed bool
}

// NewBombedWall returns an intact bombed wall.
func NewBombedWall() *BombedWall { return &BombedWall{} }

// Enter is a no-op; a destroyed wall is rubble but still not a passage.
func (w *BombedWall) Enter(*Party) error { return nil }

func (w *BombedWall) String() string {
	if w.Destroyed {
		return "BombedWall (destroyed)"
	}
	return "BombedWall"
}
