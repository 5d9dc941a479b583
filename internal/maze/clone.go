package maze

// CloneWall returns a fresh plain wall.
func (w *Wall) CloneWall() Site { return &Wall{} }

// CloneWall returns a copy of w, destroyed state included.
func (w *BombedWall) CloneWall() Site {
	c := *w
	return &c
}

// CloneDoor returns a copy of d rebound to r1 and r2. The open state is kept.
func (d *Door) CloneDoor(r1, r2 RoomSite) Site {
	c := NewDoor(r1, r2)
	c.open = d.open
	return c
}

// CloneDoor returns a copy of d rebound to r1 and r2, requiring the same spell.
func (d *SpellDoor) CloneDoor(r1, r2 RoomSite) Site {
	c := NewSpellDoor(r1, r2, d.Spell)
	c.open = d.open
	return c
}

// CloneRoom returns an empty room numbered n.
func (r *Room) CloneRoom(n int) RoomSite { return NewRoom(n) }

// CloneRoom returns an empty room numbered n carrying r's spell.
func (r *EnchantedRoom) CloneRoom(n int) RoomSite { return NewEnchantedRoom(n, r.Spell) }

// CloneRoom returns an empty room numbered n armed like r.
func (r *BombRoom) CloneRoom(n int) RoomSite {
	c := NewBombRoom(n)
	c.Armed = r.Armed
	return c
}
