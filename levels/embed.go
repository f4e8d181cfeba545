package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var LevelsFS embed.FS

// DefaultScript is the level script shipped with the game.
const DefaultScript = "reactor.yaml"

// ReadFile returns the named level file. A copy on disk under levels/ wins
// over the embedded one so designers can iterate without rebuilding.
func ReadFile(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// DiskPath maps a level file name to its location in the working tree.
func DiskPath(name string) string {
	return filepath.Join("levels", filepath.FromSlash(cleanLevelPath(name)))
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if strings.EqualFold(filepath.Ext(s), ".tengo") && !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	return s
}
