package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/mazekit/internal/construct"
	"github.com/cory-johannsen/mazekit/internal/maze"
	"github.com/cory-johannsen/mazekit/internal/scripting"
)

func newScriptedFactory(t *testing.T, src string) (construct.Factory, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	mgr := scripting.NewManager(logger)
	t.Cleanup(mgr.Close)
	require.NoError(t, mgr.LoadFamilySource("scripted", src, 0))
	return construct.NewScriptedFactory(mgr, "scripted", logger), logs
}

func TestScriptedFactory_NoHooksIsPlain(t *testing.T) {
	f, _ := newScriptedFactory(t, `-- nothing`)
	m, err := construct.CreateMaze(f)
	require.NoError(t, err)
	r1, _, door := requireTopology(t, m)
	assert.IsType(t, &maze.Room{}, r1)
	assert.IsType(t, &maze.Door{}, door)
	assert.IsType(t, &maze.Wall{}, r1.Side(maze.North))
}

func TestScriptedFactory_MixedRooms(t *testing.T) {
	f, _ := newScriptedFactory(t, `
		function room_kind(n)
			if n == 1 then return "enchanted" end
			return "armed_bomb"
		end
		function room_spell(n) return "frotz" end
		function wall_kind() return "bombed" end
		function door_spell(a, b) return "frotz" end
	`)
	m, err := construct.CreateMaze(f)
	require.NoError(t, err)
	r1, r2, door := requireTopology(t, m)

	er, ok := r1.(*maze.EnchantedRoom)
	require.True(t, ok)
	assert.Equal(t, maze.Spell("frotz"), er.Spell)

	br, ok := r2.(*maze.BombRoom)
	require.True(t, ok)
	assert.True(t, br.Armed)

	sd, ok := door.(*maze.SpellDoor)
	require.True(t, ok)
	assert.Equal(t, maze.Spell("frotz"), sd.Spell)
	assert.IsType(t, &maze.BombedWall{}, r2.Side(maze.North))

	p := &maze.Party{Location: 1, Spell: "frotz"}
	_, err = m.Move(p, maze.East)
	require.NoError(t, err)
	assert.True(t, r2.Side(maze.North).(*maze.BombedWall).Destroyed)
}

func TestScriptedFactory_EnchantedDefaultSpell(t *testing.T) {
	f, _ := newScriptedFactory(t, `function room_kind(n) return "enchanted" end`)
	r := f.MakeRoom(3)
	er, ok := r.(*maze.EnchantedRoom)
	require.True(t, ok)
	assert.Equal(t, construct.DefaultSpell, er.Spell)
}

func TestScriptedFactory_UnknownKindFallsBack(t *testing.T) {
	f, logs := newScriptedFactory(t, `
		function room_kind(n) return "haunted" end
		function wall_kind() return "glass" end
	`)
	assert.IsType(t, &maze.Room{}, f.MakeRoom(1))
	assert.IsType(t, &maze.Wall{}, f.MakeWall())
	assert.Equal(t, 2, logs.FilterMessage("scripted family returned unknown kind").Len())
}

func TestScriptedFactory_RuntimeErrorFallsBack(t *testing.T) {
	f, _ := newScriptedFactory(t, `function room_kind(n) error("boom") end`)
	assert.IsType(t, &maze.Room{}, f.MakeRoom(1))
}
