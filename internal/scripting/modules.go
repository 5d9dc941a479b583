package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the maze global table into L:
//
//	maze.family          the family name the VM was loaded for
//	maze.log.debug(msg)  and .info/.warn/.error, forwarded to the Manager's logger
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: maze global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState, family string) {
	mod := L.NewTable()
	L.SetField(mod, "family", lua.LString(family))

	logTbl := L.NewTable()
	for level, fn := range map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	} {
		fn := fn
		L.SetField(logTbl, level, L.NewFunction(func(L *lua.LState) int {
			fn(L.CheckString(1), zap.String("family", family))
			return 0
		}))
	}
	L.SetField(mod, "log", logTbl)

	L.SetGlobal("maze", mod)
}
