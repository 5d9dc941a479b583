package construct

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mazekit/internal/maze"
)

// HookCaller dispatches a named Lua hook for a scripted family.
type HookCaller interface {
	CallHook(family, hook string, args ...lua.LValue) (lua.LValue, error)
}

// Hooks consulted by a scripted family. Each is optional; an undefined hook
// yields the plain element.
const (
	// HookRoomKind is room_kind(n) -> "plain" | "enchanted" | "bomb" | "armed_bomb".
	HookRoomKind = "room_kind"
	// HookRoomSpell is room_spell(n) -> spell carried by an enchanted room.
	HookRoomSpell = "room_spell"
	// HookWallKind is wall_kind() -> "plain" | "bombed".
	HookWallKind = "wall_kind"
	// HookDoorSpell is door_spell(r1, r2) -> spell required to pass, or nil
	// for a plain door.
	HookDoorSpell = "door_spell"
)

// NewScriptedFactory returns a factory whose element kinds are decided by the
// Lua hooks of family. Unknown kinds fall back to the plain element and are
// logged at warn level.
//
// Precondition: hooks and logger must be non-nil.
func NewScriptedFactory(hooks HookCaller, family string, logger *zap.Logger) Funcs {
	s := &scripted{hooks: hooks, family: family, logger: logger}
	return Funcs{
		Wall: s.wall,
		Room: s.room,
		Door: s.door,
	}
}

type scripted struct {
	hooks  HookCaller
	family string
	logger *zap.Logger
}

func (s *scripted) call(hook string, args ...lua.LValue) string {
	ret, err := s.hooks.CallHook(s.family, hook, args...)
	if err != nil {
		s.logger.Warn("scripted family hook failed",
			zap.String("family", s.family),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return ""
	}
	if ret == lua.LNil {
		return ""
	}
	return lua.LVAsString(ret)
}

func (s *scripted) unknown(hook, kind string) {
	s.logger.Warn("scripted family returned unknown kind",
		zap.String("family", s.family),
		zap.String("hook", hook),
		zap.String("kind", kind),
	)
}

func (s *scripted) wall() maze.Site {
	switch kind := s.call(HookWallKind); kind {
	case "", "plain":
		return maze.NewWall()
	case "bombed":
		return maze.NewBombedWall()
	default:
		s.unknown(HookWallKind, kind)
		return maze.NewWall()
	}
}

func (s *scripted) room(n int) maze.RoomSite {
	switch kind := s.call(HookRoomKind, lua.LNumber(n)); kind {
	case "", "plain":
		return maze.NewRoom(n)
	case "enchanted":
		spell := maze.Spell(s.call(HookRoomSpell, lua.LNumber(n)))
		if spell == "" {
			spell = DefaultSpell
		}
		return maze.NewEnchantedRoom(n, spell)
	case "bomb":
		return maze.NewBombRoom(n)
	case "armed_bomb":
		r := maze.NewBombRoom(n)
		r.Arm()
		return r
	default:
		s.unknown(HookRoomKind, kind)
		return maze.NewRoom(n)
	}
}

func (s *scripted) door(r1, r2 maze.RoomSite) maze.Site {
	spell := s.call(HookDoorSpell, lua.LNumber(r1.Number()), lua.LNumber(r2.Number()))
	if spell == "" {
		return maze.NewDoor(r1, r2)
	}
	return maze.NewSpellDoor(r1, r2, maze.Spell(spell))
}
