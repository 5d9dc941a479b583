package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/mazekit/internal/construct"
	"github.com/cory-johannsen/mazekit/internal/maze"
	"github.com/cory-johannsen/mazekit/internal/scripting"
)

func TestDefault_IsEagerSingleton(t *testing.T) {
	assert.NotNil(t, Default())
	assert.Same(t, Default(), Default())
	assert.Equal(t, []string{"bombed", "bombed-prototype", "counting", "enchanted", "normal", "prototype"}, Default().Names())
}

func TestResolve_CanonicalName(t *testing.T) {
	fam, ok := Default().Resolve("enchanted")
	require.True(t, ok)
	assert.Equal(t, "enchanted", fam.Name)
}

func TestResolve_Alias(t *testing.T) {
	fam, ok := Default().Resolve("magic")
	require.True(t, ok)
	assert.Equal(t, "enchanted", fam.Name)
}

func TestResolve_NotFound(t *testing.T) {
	_, ok := Default().Resolve("haunted")
	assert.False(t, ok)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	f := Family{Name: "a", Factory: func() construct.Factory { return construct.DefaultFactory{} }}
	_, err := NewRegistry([]Family{f, f})
	assert.Error(t, err)
}

func TestNewRegistry_AliasCollisions(t *testing.T) {
	mk := func(name string, aliases ...string) Family {
		return Family{Name: name, Aliases: aliases, Factory: func() construct.Factory { return construct.DefaultFactory{} }}
	}
	_, err := NewRegistry([]Family{mk("a", "x"), mk("b", "x")})
	assert.Error(t, err, "duplicate alias")

	_, err = NewRegistry([]Family{mk("a"), mk("b", "a")})
	assert.Error(t, err, "alias shadows name")

	_, err = NewRegistry([]Family{mk("a", "b"), mk("b")})
	assert.Error(t, err, "name shadows alias")
}

func TestNewRegistry_RejectsEmptyFamily(t *testing.T) {
	_, err := NewRegistry([]Family{{Name: "hollow"}})
	assert.Error(t, err)
	_, err = NewRegistry([]Family{{Factory: func() construct.Factory { return construct.DefaultFactory{} }}})
	assert.Error(t, err)
}

func TestWith_LeavesOriginalUntouched(t *testing.T) {
	extra := Family{Name: "extra", Factory: func() construct.Factory { return construct.DefaultFactory{} }}
	r, err := Default().With(extra)
	require.NoError(t, err)
	_, ok := r.Resolve("extra")
	assert.True(t, ok)
	_, ok = r.Resolve("magic")
	assert.True(t, ok, "aliases survive")
	_, ok = Default().Resolve("extra")
	assert.False(t, ok)

	_, err = Default().With(Family{Name: "normal", Factory: extra.Factory})
	assert.Error(t, err)
}

func TestAssemble_EveryFamilyBothShapes(t *testing.T) {
	logger := zap.NewNop()
	for _, fam := range Default().Families() {
		for _, shape := range []Shape{ShapeFactory, ShapeBuilder} {
			m, ok, err := fam.Assemble(shape, logger)
			if fam.Factory == nil && shape == ShapeFactory {
				assert.Error(t, err, "%s %s", fam.Name, shape)
				continue
			}
			require.NoError(t, err, "%s %s", fam.Name, shape)
			if fam.Name == "counting" {
				assert.False(t, ok)
				assert.Nil(t, m)
				continue
			}
			require.True(t, ok, "%s %s", fam.Name, shape)
			assert.Equal(t, 2, m.Len())
			r1, _ := m.Room(1)
			r2, _ := m.Room(2)
			assert.Same(t, r1.Side(maze.East), r2.Side(maze.West), "%s %s", fam.Name, shape)
		}
	}
}

func TestAssemble_UnknownShape(t *testing.T) {
	fam, _ := Default().Resolve("normal")
	_, _, err := fam.Assemble(Shape("origami"), zap.NewNop())
	assert.Error(t, err)
}

func TestAssemble_BombedPrototype(t *testing.T) {
	fam, ok := Default().Resolve("bombed-prototype")
	require.True(t, ok)
	m, _, err := fam.Assemble(ShapeFactory, zap.NewNop())
	require.NoError(t, err)
	r1, _ := m.Room(1)
	assert.IsType(t, &maze.BombRoom{}, r1)
	assert.IsType(t, &maze.BombedWall{}, r1.Side(maze.North))
}

func TestLoadScriptedFamilies(t *testing.T) {
	dir := t.TempDir()
	famDir := filepath.Join(dir, "haunted")
	require.NoError(t, os.Mkdir(famDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(famDir, "rooms.lua"), []byte(`
		function room_kind(n) return "bomb" end
	`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("not a family"), 0644))

	logger := zap.NewNop()
	mgr := scripting.NewManager(logger)
	defer mgr.Close()

	r, err := LoadScriptedFamilies(Default(), mgr, dir, 0, logger)
	require.NoError(t, err)
	fam, ok := r.Resolve("haunted")
	require.True(t, ok)

	m, ok, err := fam.Assemble(ShapeBuilder, logger)
	require.NoError(t, err)
	require.True(t, ok)
	r2, _ := m.Room(2)
	assert.IsType(t, &maze.BombRoom{}, r2)
}

func TestLoadScriptedFamilies_MissingDir(t *testing.T) {
	mgr := scripting.NewManager(zap.NewNop())
	defer mgr.Close()
	_, err := LoadScriptedFamilies(Default(), mgr, filepath.Join(t.TempDir(), "nope"), 0, zap.NewNop())
	assert.Error(t, err)
}

// Property: every registered alias resolves to a family whose canonical name
// also resolves to the same family.
func TestProperty_AliasesResolveToCanonical(t *testing.T) {
	r := Default()
	var aliases []string
	for _, fam := range r.Families() {
		aliases = append(aliases, fam.Aliases...)
	}
	rapid.Check(t, func(rt *rapid.T) {
		alias := rapid.SampledFrom(aliases).Draw(rt, "alias")
		fam, ok := r.Resolve(alias)
		if !ok {
			rt.Fatalf("alias %q does not resolve", alias)
		}
		canonical, ok := r.Resolve(fam.Name)
		if !ok || canonical != fam {
			rt.Fatalf("alias %q resolves to %q which does not resolve to itself", alias, fam.Name)
		}
	})
}
