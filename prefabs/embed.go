package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var prefabsFS embed.FS

// Dir is the on-disk prefab directory that shadows the embedded copies, so
// specs can be edited without rebuilding.
var Dir = "prefabs"

// Load returns a prefab by name, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript returns a script from prefabs/scripts by base name.
func LoadScript(name string) ([]byte, error) {
	return Load(path.Join("scripts", path.Base(filepath.ToSlash(name))))
}

func cleanPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
