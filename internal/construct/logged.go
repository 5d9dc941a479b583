package construct

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/mazekit/internal/maze"
)

// LoggedFactory wraps a Factory and logs every element it creates at debug level.
type LoggedFactory struct {
	inner  Factory
	logger *zap.Logger
}

// NewLoggedFactory wraps f.
//
// Precondition: f and logger must be non-nil.
func NewLoggedFactory(f Factory, logger *zap.Logger) *LoggedFactory {
	return &LoggedFactory{inner: f, logger: logger}
}

// MakeMaze delegates and logs the new maze ID.
func (l *LoggedFactory) MakeMaze() *maze.Maze {
	m := l.inner.MakeMaze()
	if m != nil {
		l.logger.Debug("make maze", zap.String("maze_id", m.ID))
	}
	return m
}

// MakeWall delegates and logs the wall kind.
func (l *LoggedFactory) MakeWall() maze.Site {
	w := l.inner.MakeWall()
	l.logger.Debug("make wall", zap.String("wall", siteName(w)))
	return w
}

// MakeRoom delegates and logs the room kind.
func (l *LoggedFactory) MakeRoom(n int) maze.RoomSite {
	r := l.inner.MakeRoom(n)
	l.logger.Debug("make room", zap.Int("room", n), zap.String("kind", siteName(r)))
	return r
}

// MakeDoor delegates and logs the door kind.
func (l *LoggedFactory) MakeDoor(r1, r2 maze.RoomSite) maze.Site {
	d := l.inner.MakeDoor(r1, r2)
	l.logger.Debug("make door",
		zap.Int("from", r1.Number()),
		zap.Int("to", r2.Number()),
		zap.String("door", siteName(d)),
	)
	return d
}

// LoggedBuilder wraps a Builder and logs every step at debug level. Step
// failures are logged at warn level and returned unchanged.
type LoggedBuilder struct {
	inner  Builder
	logger *zap.Logger
}

// NewLoggedBuilder wraps b.
//
// Precondition: b and logger must be non-nil.
func NewLoggedBuilder(b Builder, logger *zap.Logger) *LoggedBuilder {
	return &LoggedBuilder{inner: b, logger: logger}
}

// Start delegates.
func (l *LoggedBuilder) Start() {
	l.logger.Debug("build start")
	l.inner.Start()
}

// AddRoom delegates.
func (l *LoggedBuilder) AddRoom(n int) error {
	if err := l.inner.AddRoom(n); err != nil {
		l.logger.Warn("build room failed", zap.Int("room", n), zap.Error(err))
		return err
	}
	l.logger.Debug("build room", zap.Int("room", n))
	return nil
}

// AddDoor delegates.
func (l *LoggedBuilder) AddDoor(from, to int) error {
	if err := l.inner.AddDoor(from, to); err != nil {
		l.logger.Warn("build door failed", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
		return err
	}
	l.logger.Debug("build door", zap.Int("from", from), zap.Int("to", to))
	return nil
}

// Result delegates and logs whether a maze was produced.
func (l *LoggedBuilder) Result() (*maze.Maze, bool) {
	m, ok := l.inner.Result()
	l.logger.Debug("build result", zap.Bool("materialized", ok))
	return m, ok
}

func siteName(s maze.Site) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}
