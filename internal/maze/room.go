package maze

import "fmt"

// RoomSite is a numbered room with four directional slots.
type RoomSite interface {
	Site
	// Number is the room's identity. It never changes after creation.
	Number() int
	// Side returns the occupant of slot d, or nil when the slot is unset.
	Side(d Direction) Site
	// SetSide replaces the occupant of slot d.
	SetSide(d Direction, s Site)
}

// SameRoom reports whether a and b are the same room. Room identity is the
// room number alone.
func SameRoom(a, b RoomSite) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Number() == b.Number()
}

// Room is the default RoomSite.
type Room struct {
	number int
	sides  [4]Site
}

// NewRoom returns room n with every slot unset.
func NewRoom(n int) *Room {
	return &Room{number: n}
}

// Number returns the room number.
func (r *Room) Number() int { return r.number }

// Side returns the occupant of slot d. Invalid directions read as unset.
func (r *Room) Side(d Direction) Site {
	if !d.Valid() {
		return nil
	}
	return r.sides[d]
}

// SetSide overwrites slot d with s. Writes to invalid directions are dropped.
func (r *Room) SetSide(d Direction, s Site) {
	if !d.Valid() {
		return
	}
	r.sides[d] = s
}

// Enter places p in the room.
func (r *Room) Enter(p *Party) error {
	p.Location = r.number
	return nil
}

func (r *Room) String() string { return "Room" }

// EnchantedRoom is a room carrying a spell.
type EnchantedRoom struct {
	*Room
	Spell Spell
}

// NewEnchantedRoom returns room n enchanted with spell.
func NewEnchantedRoom(n int, spell Spell) *EnchantedRoom {
	return &EnchantedRoom{Room: NewRoom(n), Spell: spell}
}

func (r *EnchantedRoom) String() string {
	return fmt.Sprintf("EnchantedRoom (spell %q)", r.Spell)
}

// BombRoom is a room that may hold a bomb.
type BombRoom struct {
	*Room
	Armed bool
}

// NewBombRoom returns room n with its bomb disarmed.
func NewBombRoom(n int) *BombRoom {
	return &BombRoom{Room: NewRoom(n)}
}

// Arm primes the bomb; the next party to enter sets it off.
func (r *BombRoom) Arm() { r.Armed = true }

// Enter detonates an armed bomb, destroying every BombedWall of the room,
// then places p in the room.
func (r *BombRoom) Enter(p *Party) error {
	if r.Armed {
		for _, d := range Directions() {
			if w, ok := r.Side(d).(*BombedWall); ok {
				w.Destroyed = true
			}
		}
		r.Armed = false
	}
	return r.Room.Enter(p)
}

func (r *BombRoom) String() string {
	return fmt.Sprintf("RoomWithABomb (armed %t)", r.Armed)
}
