package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cory-johannsen/mazekit/internal/construct"
	"github.com/cory-johannsen/mazekit/internal/scripting"
)

// ScriptedFamily returns a family whose elements are chosen by the Lua hooks
// loaded into mgr under name.
//
// Precondition: mgr must already hold a VM for name.
func ScriptedFamily(name string, mgr *scripting.Manager, logger *zap.Logger) Family {
	return Family{
		Name:        name,
		Description: "scripted family " + name,
		Factory: func() construct.Factory {
			return construct.NewScriptedFactory(mgr, name, logger)
		},
	}
}

// LoadScriptedFamilies treats every subdirectory of dir as one scripted
// family named after the directory, loads it into mgr, and returns r extended
// with those families.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the extended registry, or the first load or
// collision error.
func LoadScriptedFamilies(r *Registry, mgr *scripting.Manager, dir string, instLimit int, logger *zap.Logger) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading family script dir %s: %w", dir, err)
	}
	var fams []Family
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if err := mgr.LoadFamily(name, filepath.Join(dir, name), instLimit); err != nil {
			return nil, err
		}
		fams = append(fams, ScriptedFamily(name, mgr, logger))
	}
	return r.With(fams...)
}
