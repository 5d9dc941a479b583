package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

type vm struct {
	L      *lua.LState
	cancel func()
	limit  int
}

// Manager owns one sandboxed LState per scripted family and exposes hook
// dispatch.
//
// Each LState is single-threaded; the mutex serializes every hook call.
type Manager struct {
	mu     sync.Mutex
	states map[string]*vm
	logger *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil Manager with no families loaded.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		panic("scripting: NewManager requires a non-nil logger")
	}
	return &Manager{
		states: make(map[string]*vm),
		logger: logger,
	}
}

// LoadFamily creates a sandboxed VM for family, registers the maze module,
// then executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: family must be non-empty; scriptDir must be a readable directory.
// Postcondition: The family VM is registered, replacing any earlier one;
// returns error on Lua load failure.
func (m *Manager) LoadFamily(family, scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, family, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	return m.load(family, instLimit, func(L *lua.LState) error {
		for _, path := range luaFiles {
			if err := L.DoFile(path); err != nil {
				return fmt.Errorf("scripting: loading %q for %q: %w", path, family, err)
			}
		}
		return nil
	})
}

// LoadFamilySource is LoadFamily for a single in-memory script.
//
// Precondition: family must be non-empty.
// Postcondition: The family VM is registered; returns error on Lua load failure.
func (m *Manager) LoadFamilySource(family, src string, instLimit int) error {
	return m.load(family, instLimit, func(L *lua.LState) error {
		if err := L.DoString(src); err != nil {
			return fmt.Errorf("scripting: loading source for %q: %w", family, err)
		}
		return nil
	})
}

func (m *Manager) load(family string, instLimit int, run func(*lua.LState) error) error {
	if family == "" {
		return fmt.Errorf("scripting: family name must not be empty")
	}
	L, cancel := NewSandboxedState(instLimit)
	m.RegisterModules(L, family)

	if err := run(L); err != nil {
		cancel()
		L.Close()
		return err
	}

	m.mu.Lock()
	if old, ok := m.states[family]; ok {
		old.cancel()
		old.L.Close()
	}
	m.states[family] = &vm{L: L, cancel: cancel, limit: effectiveLimit(instLimit)}
	m.mu.Unlock()

	m.logger.Debug("scripting: family loaded", zap.String("family", family))
	return nil
}

// Has reports whether a VM is loaded for family.
func (m *Manager) Has(family string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.states[family]
	return ok
}

// Families returns the loaded family names in sorted order.
func (m *Manager) Families() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.states))
	for name := range m.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallHook calls the named Lua global function in family's VM with a fresh
// instruction budget. Returns (LNil, nil) if the hook is not defined or no VM
// exists. Lua runtime errors are logged at Warn level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(family, hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.states[family]
	if !ok {
		m.logger.Info("scripting: no VM for family",
			zap.String("family", family),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}

	fn := v.L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	v.cancel()
	ctx, cancel := newCountingContext(v.limit)
	v.L.SetContext(ctx)
	v.cancel = cancel

	if err := v.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("family", family),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := v.L.Get(-1)
	v.L.Pop(1)
	return ret, nil
}

// Close shuts down every VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, v := range m.states {
		v.cancel()
		v.L.Close()
		delete(m.states, name)
	}
}
