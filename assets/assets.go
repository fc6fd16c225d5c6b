// Package assets embeds the bundled levels.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/tethered/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

type LevelLoader struct {
	levels map[string]*leveldata.Level
	names  []string
}

// NewLevelLoader loads every bundled level.
func NewLevelLoader() (*LevelLoader, error) {
	levels, names, err := leveldata.LoadAll(assetFS, levelsDir)
	if err != nil {
		return nil, err
	}
	return &LevelLoader{levels: levels, names: names}, nil
}

// Names lists the bundled levels in sorted order.
func (l *LevelLoader) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *LevelLoader) Level(name string) (*leveldata.Level, bool) {
	level, ok := l.levels[name]
	return level, ok
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	level, ok := l.levels[name]
	if !ok {
		panic(fmt.Sprintf("level %q not found in assets/levels", name))
	}
	return level
}

// LevelAt returns the level at index in Names order, clamping to the first
// level when the index is out of range.
func (l *LevelLoader) LevelAt(index int) *leveldata.Level {
	if index < 0 || index >= len(l.names) {
		index = 0
	}
	return l.levels[l.names[index]]
}
