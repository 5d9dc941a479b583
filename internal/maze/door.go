package maze

import "fmt"

// Passage is a site that joins two rooms.
type Passage interface {
	Site
	// Rooms returns the numbers of the two joined rooms.
	Rooms() (int, int)
	// OtherSide returns the number of the room across from room from.
	OtherSide(from int) (int, error)
}

// Door joins two rooms. It refers to them by number only; the maze that
// owns the rooms resolves the numbers.
type Door struct {
	room1 int
	room2 int
	open  bool
}

// NewDoor returns a closed door joining rooms r1 and r2.
//
// Precondition: r1 and r2 must be non-nil.
func NewDoor(r1, r2 RoomSite) *Door {
	return &Door{room1: r1.Number(), room2: r2.Number()}
}

// Rooms returns the numbers of the joined rooms.
func (d *Door) Rooms() (int, int) { return d.room1, d.room2 }

// IsOpen reports whether the door has been passed through.
func (d *Door) IsOpen() bool { return d.open }

// OtherSide returns the room across the door from room from.
//
// Postcondition: Returns ErrNotAdjacent if from is neither joined room.
func (d *Door) OtherSide(from int) (int, error) {
	switch from {
	case d.room1:
		return d.room2, nil
	case d.room2:
		return d.room1, nil
	default:
		return 0, fmt.Errorf("door %d-%d from room %d: %w", d.room1, d.room2, from, ErrNotAdjacent)
	}
}

// Enter opens the door and moves p to the far room.
//
// Precondition: p.Location must be one of the joined rooms.
func (d *Door) Enter(p *Party) error {
	other, err := d.OtherSide(p.Location)
	if err != nil {
		return err
	}
	d.open = true
	p.Location = other
	return nil
}

func (d *Door) String() string {
	if d.open {
		return fmt.Sprintf("Door %d-%d (open)", d.room1, d.room2)
	}
	return fmt.Sprintf("Door %d-%d", d.room1, d.room2)
}

// SpellDoor is a door that only opens for a party carrying its spell.
type SpellDoor struct {
	*Door
	Spell Spell
}

// NewSpellDoor returns a closed door between r1 and r2 that requires spell.
func NewSpellDoor(r1, r2 RoomSite, spell Spell) *SpellDoor {
	return &SpellDoor{Door: NewDoor(r1, r2), Spell: spell}
}

// Enter fails with ErrSpellRequired unless p knows the door's spell.
// The door stays closed and p stays put on failure.
func (d *SpellDoor) Enter(p *Party) error {
	if !p.Knows(d.Spell) {
		return fmt.Errorf("door %d-%d needs %q: %w", d.room1, d.room2, d.Spell, ErrSpellRequired)
	}
	return d.Door.Enter(p)
}

func (d *SpellDoor) String() string {
	if d.open {
		return fmt.Sprintf("DoorNeedingSpell %d-%d (open)", d.room1, d.room2)
	}
	return fmt.Sprintf("DoorNeedingSpell %d-%d", d.room1, d.room2)
}
