package leveldata

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
)

// Layer and object group names read from the TMX file.
const (
	TileLayer  = "wg-tiles"
	SolidGroup = "Solid"
	RampGroup  = "Ramp"
	SpawnGroup = "Spawn"
)

// Slope types, matching the resolv tags of ramp objects.
const (
	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

const (
	propSlope      = "slope"
	propJumpable   = "jumpable"
	propAnchorable = "anchorable"
	propSpawnIndex = "spawnIndex"

	defaultSurfaces = true
)

// ErrInvalidLevel is wrapped by every level validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (demo) or fstest.MapFS (tests).
//
// Geometry comes from two places. Tiles on the wg-tiles layer become 1x1 tile
// rectangles; the tileset tile properties "slope", "jumpable" and
// "anchorable" describe them. Rectangles in the Solid and Ramp object groups
// carry the same properties on the object. Surfaces are jumpable and
// anchorable unless the property says otherwise.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, errors.Wrapf(err, "load TMX %s", tmxPath)
	}

	data := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				rect := SolidRect{
					X:          float64(x) * tileW,
					Y:          float64(y) * tileH,
					W:          tileW,
					H:          tileH,
					Jumpable:   defaultSurfaces,
					Anchorable: defaultSurfaces,
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					applyProperties(&rect, tilesetTile.Properties)
				}
				data.SolidRects = append(data.SolidRects, rect)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidGroup, RampGroup:
			for _, o := range og.Objects {
				rect := SolidRect{
					X:          o.X,
					Y:          o.Y,
					W:          o.Width,
					H:          o.Height,
					Jumpable:   defaultSurfaces,
					Anchorable: defaultSurfaces,
				}
				applyProperties(&rect, o.Properties)
				if og.Name == RampGroup && rect.SlopeType == "" {
					rect.SlopeType = SlopeUpRight
				}
				data.SolidRects = append(data.SolidRects, rect)
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(propSpawnIndex),
				})
			}
		}
	}

	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})

	if err := data.Validate(); err != nil {
		return nil, errors.Wrapf(err, "level %s", tmxPath)
	}
	return data, nil
}

func applyProperties(rect *SolidRect, props tiled.Properties) {
	if slope := props.GetString(propSlope); slope != "" {
		rect.SlopeType = slope
	}
	for _, p := range props {
		switch p.Name {
		case propJumpable:
			rect.Jumpable = props.GetBool(propJumpable)
		case propAnchorable:
			rect.Anchorable = props.GetBool(propAnchorable)
		}
	}
}

// Validate checks the level can host a match: positive size, square ramps of
// a known slope type and a spawn point for both characters.
func (l *Level) Validate() error {
	if l.MapWidth <= 0 || l.MapHeight <= 0 {
		return errors.Wrapf(ErrInvalidLevel, "map size %dx%d", l.MapWidth, l.MapHeight)
	}
	for i, r := range l.SolidRects {
		if r.W <= 0 || r.H <= 0 {
			return errors.Wrapf(ErrInvalidLevel, "solid %d has size %gx%g", i, r.W, r.H)
		}
		switch r.SlopeType {
		case "", SlopeUpRight, SlopeUpLeft:
		default:
			return errors.Wrapf(ErrInvalidLevel, "solid %d has slope %q", i, r.SlopeType)
		}
		if r.IsRamp() && r.W != r.H {
			return errors.Wrapf(ErrInvalidLevel, "ramp %d is not square", i)
		}
	}
	for _, index := range []int{0, 1} {
		if _, ok := l.Spawn(index); !ok {
			return errors.Wrapf(ErrInvalidLevel, "missing spawn %d", index)
		}
	}
	return nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "glob %s", pattern)
	}
	if len(matches) == 0 {
		return nil, nil, errors.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
