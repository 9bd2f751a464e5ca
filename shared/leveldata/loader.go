package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Defaults for objects that leave properties unset
const (
	DefaultWallHeight     = 2.0
	DefaultWallLayer      = 1
	DefaultConsumableMass = 1.0
)

// Object groups and layers read from the map
const (
	wallsGroup       = "Walls"
	consumablesGroup = "Consumables"
	spawnGroup       = "PlayerSpawn"
	wallsTileLayer   = "walls"
)

// Load parses a TMX file into a Layout. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	conv := converter{
		tileW: float64(levelMap.TileWidth),
		tileH: float64(levelMap.TileHeight),
		halfW: float64(levelMap.Width) / 2,
		halfD: float64(levelMap.Height) / 2,
	}

	layout := &Layout{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	// Solid tiles, one unit-square wall per tile
	for _, layer := range levelMap.Layers {
		if layer.Name != wallsTileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := y*levelMap.Width + x
				if idx >= len(layer.Tiles) || layer.Tiles[idx].IsNil() {
					continue
				}
				layout.Walls = append(layout.Walls, conv.rect(
					float64(x)*conv.tileW, float64(y)*conv.tileH, conv.tileW, conv.tileH,
					DefaultWallHeight, DefaultWallLayer,
				))
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case wallsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = DefaultWallHeight
				}
				layer := o.Properties.GetInt("layer")
				if layer <= 0 {
					layer = DefaultWallLayer
				}
				layout.Walls = append(layout.Walls, conv.rect(o.X, o.Y, o.Width, o.Height, height, uint32(layer)))
			}
		case consumablesGroup:
			for _, o := range og.Objects {
				mass := o.Properties.GetFloat("mass")
				if mass <= 0 {
					mass = DefaultConsumableMass
				}
				destroy := true
				if o.Properties.GetString("destroyOnConsume") != "" {
					destroy = o.Properties.GetBool("destroyOnConsume")
				}
				x, z := conv.point(o.X+o.Width/2, o.Y+o.Height/2)
				layout.Consumables = append(layout.Consumables, ConsumableSpawn{
					X:                x,
					Z:                z,
					Mass:             mass,
					Size:             o.Properties.GetFloat("size"),
					DestroyOnConsume: destroy,
				})
			}
		case spawnGroup:
			// First spawn wins
			if len(og.Objects) > 0 && !layout.HasSpawn {
				o := og.Objects[0]
				x, z := conv.point(o.X+o.Width/2, o.Y+o.Height/2)
				layout.PlayerSpawn = Spawn{X: x, Z: z}
				layout.HasSpawn = true
			}
		}
	}

	return layout, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns the
// layouts keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Layout, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		layout, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// converter maps TMX pixels to world units.
type converter struct {
	tileW, tileH float64
	halfW, halfD float64
}

func (c converter) point(px, py float64) (x, z float64) {
	return px/c.tileW - c.halfW, c.halfD - py/c.tileH
}

func (c converter) rect(px, py, pw, ph, height float64, layer uint32) WallRect {
	minX, maxZ := c.point(px, py)
	maxX, minZ := c.point(px+pw, py+ph)
	return WallRect{
		MinX:   minX,
		MinZ:   minZ,
		MaxX:   maxX,
		MaxZ:   maxZ,
		Height: height,
		Layer:  layer,
	}
}
