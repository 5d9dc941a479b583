package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/mazekit/internal/construct"
	"github.com/cory-johannsen/mazekit/internal/maze"
)

func TestBuildMaze_StandardTopology(t *testing.T) {
	b := construct.NewStandardBuilder(nil)
	m, ok, err := construct.BuildMaze(b)
	require.NoError(t, err)
	require.True(t, ok)
	r1, _, door := requireTopology(t, m)
	assert.IsType(t, &maze.Room{}, r1)
	assert.IsType(t, &maze.Door{}, door)

	again, ok := b.Result()
	assert.True(t, ok)
	assert.Same(t, m, again)
}

func TestBuildMaze_StandardWithFamily(t *testing.T) {
	m, ok, err := construct.BuildMaze(construct.NewStandardBuilder(construct.BombedFactory{}))
	require.NoError(t, err)
	require.True(t, ok)
	r1, _, door := requireTopology(t, m)
	assert.IsType(t, &maze.BombRoom{}, r1)
	assert.IsType(t, &maze.BombedWall{}, r1.Side(maze.North))
	assert.IsType(t, &maze.Door{}, door)
}

func TestBuildMaze_Counting(t *testing.T) {
	b := &construct.CountingBuilder{}
	m, ok, err := construct.BuildMaze(b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)

	rooms, doors := b.Counts()
	assert.Equal(t, 2, rooms)
	assert.Equal(t, 1, doors)
}

func TestBuildMaze_Nop(t *testing.T) {
	m, ok, err := construct.BuildMaze(construct.NopBuilder{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestStandardBuilder_NotStarted(t *testing.T) {
	b := construct.NewStandardBuilder(nil)
	assert.ErrorIs(t, b.AddRoom(1), construct.ErrNotStarted)
	assert.ErrorIs(t, b.AddDoor(1, 2), construct.ErrNotStarted)
	m, ok := b.Result()
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestStandardBuilder_DoorToUnknownRoom(t *testing.T) {
	b := construct.NewStandardBuilder(nil)
	b.Start()
	require.NoError(t, b.AddRoom(1))

	err := b.AddDoor(1, 7)
	assert.ErrorIs(t, err, maze.ErrRoomNotFound)
	assert.Contains(t, err.Error(), "referenced room not found")

	assert.ErrorIs(t, b.AddDoor(7, 1), maze.ErrRoomNotFound)

	m, _ := b.Result()
	r1, _ := m.Room(1)
	for _, d := range maze.Directions() {
		assert.IsType(t, &maze.Wall{}, r1.Side(d), "failed door leaves room untouched")
	}
}

// failingBuilder rejects its second room.
type failingBuilder struct {
	construct.CountingBuilder
	doorCalled bool
}

func (f *failingBuilder) AddRoom(n int) error {
	if n == 2 {
		return maze.ErrRoomNotFound
	}
	return f.CountingBuilder.AddRoom(n)
}

func (f *failingBuilder) AddDoor(int, int) error {
	f.doorCalled = true
	return nil
}

func TestBuildMaze_StopsAtFirstError(t *testing.T) {
	b := &failingBuilder{}
	_, ok, err := construct.BuildMaze(b)
	assert.ErrorIs(t, err, maze.ErrRoomNotFound)
	assert.False(t, ok)
	assert.False(t, b.doorCalled)
}

func TestStandardBuilder_StartDiscardsProgress(t *testing.T) {
	b := construct.NewStandardBuilder(nil)
	b.Start()
	require.NoError(t, b.AddRoom(1))
	first, _ := b.Result()
	b.Start()
	second, _ := b.Result()
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Len())
}

func TestCommonWall_PreferenceOrder(t *testing.T) {
	b := construct.NewStandardBuilder(nil)
	b.Start()
	for _, n := range []int{1, 2, 3, 4, 5, 6} {
		require.NoError(t, b.AddRoom(n))
	}
	for _, to := range []int{2, 3, 4, 5} {
		require.NoError(t, b.AddDoor(1, to))
	}
	m, _ := b.Result()
	r1, _ := m.Room(1)

	want := map[maze.Direction]int{maze.East: 2, maze.South: 3, maze.West: 4, maze.North: 5}
	for d, to := range want {
		p, ok := r1.Side(d).(maze.Passage)
		require.True(t, ok, "room 1 %s", d)
		other, err := p.OtherSide(1)
		require.NoError(t, err)
		assert.Equal(t, to, other, "room 1 %s", d)

		target, _ := m.Room(to)
		assert.Same(t, r1.Side(d), target.Side(d.Opposite()))
	}

	assert.ErrorIs(t, b.AddDoor(1, 6), construct.ErrNoCommonWall)
}

func TestCommonWall_SkipsOccupiedFacingSide(t *testing.T) {
	r1, r2, r3 := maze.NewRoom(1), maze.NewRoom(2), maze.NewRoom(3)
	r2.SetSide(maze.West, maze.NewDoor(r2, r3))

	d, err := construct.CommonWall(r1, r2)
	require.NoError(t, err)
	assert.Equal(t, maze.South, d)
}

// Property: every door the standard builder places is shared by exactly the
// two rooms it joins, on opposite sides.
func TestProperty_StandardBuilderDoorsAreShared(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 8).Draw(rt, "rooms")
		b := construct.NewStandardBuilder(nil)
		b.Start()
		for i := 1; i <= n; i++ {
			if err := b.AddRoom(i); err != nil {
				rt.Fatal(err)
			}
		}
		pairs := rapid.IntRange(0, 6).Draw(rt, "doors")
		for i := 0; i < pairs; i++ {
			from := rapid.IntRange(1, n).Draw(rt, "from")
			to := rapid.IntRange(1, n).Filter(func(v int) bool { return v != from }).Draw(rt, "to")
			_ = b.AddDoor(from, to)
		}

		m, ok := b.Result()
		if !ok {
			rt.Fatal("standard builder produced no maze")
		}
		for _, r := range m.Rooms() {
			for _, d := range maze.Directions() {
				p, isDoor := r.Side(d).(maze.Passage)
				if !isDoor {
					continue
				}
				other, err := p.OtherSide(r.Number())
				if err != nil {
					rt.Fatalf("room %d %s holds a door it is not joined by", r.Number(), d)
				}
				target, found := m.Room(other)
				if !found {
					rt.Fatalf("door from %d leads to missing room %d", r.Number(), other)
				}
				if target.Side(d.Opposite()) != r.Side(d) {
					rt.Fatalf("door %d-%d not shared on facing sides", r.Number(), other)
				}
			}
		}
	})
}
