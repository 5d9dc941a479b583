package construct

import "github.com/cory-johannsen/mazekit/internal/maze"

// DefaultSpell is the spell used by EnchantedFactory when none is configured.
const DefaultSpell maze.Spell = "open sesame"

// NormalFactory builds plain mazes.
type NormalFactory struct {
	DefaultFactory
}

// EnchantedFactory builds enchanted rooms joined by doors that need the
// rooms' spell. Walls and the maze itself are the defaults.
type EnchantedFactory struct {
	DefaultFactory
	Spell maze.Spell
}

func (f EnchantedFactory) spell() maze.Spell {
	if f.Spell == "" {
		return DefaultSpell
	}
	return f.Spell
}

// MakeRoom returns an enchanted room carrying the factory's spell.
func (f EnchantedFactory) MakeRoom(n int) maze.RoomSite {
	return maze.NewEnchantedRoom(n, f.spell())
}

// MakeDoor returns a door that requires the factory's spell.
func (f EnchantedFactory) MakeDoor(r1, r2 maze.RoomSite) maze.Site {
	return maze.NewSpellDoor(r1, r2, f.spell())
}

// BombedFactory builds rooms that can hold a bomb, walled by bombable walls.
// Doors and the maze itself are the defaults.
type BombedFactory struct {
	DefaultFactory
}

// MakeWall returns an intact bombed wall.
func (BombedFactory) MakeWall() maze.Site { return maze.NewBombedWall() }

// MakeRoom returns a room with its bomb disarmed.
func (BombedFactory) MakeRoom(n int) maze.RoomSite { return maze.NewBombRoom(n) }
