package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/devour/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "level01"

// LevelFS returns the embedded levels rooted at the assets directory.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevel loads an embedded level by stem name.
func LoadLevel(name string) (*leveldata.Layout, error) {
	return LoadLevelFrom(assetFS, name)
}

// LoadLevelFrom loads levels/<name>.tmx from fsys.
func LoadLevelFrom(fsys fs.FS, name string) (*leveldata.Layout, error) {
	if name == "" {
		name = DefaultLevel
	}
	layout, err := leveldata.Load(fsys, "levels/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return layout, nil
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	matches, err := fs.Glob(assetFS, "levels/*.tmx")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
