package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tilesAndObjects = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="5">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="walls.png" width="32" height="16"/>
  <tile id="1">
   <properties>
    <property name="slope" value="45_up_left"/>
    <property name="anchorable" type="bool" value="false"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,2,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="Solid">
  <object id="1" x="8" y="4" width="20" height="6">
   <properties>
    <property name="jumpable" type="bool" value="false"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Spawn">
  <object id="2" x="40" y="10">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="3" x="20" y="10">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func level(objects string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="9">
` + objects + `
</map>
`
}

const spawns = ` <objectgroup id="3" name="Spawn">
  <object id="7" x="20" y="10">
   <properties><property name="spawnIndex" type="int" value="0"/></properties>
   <point/>
  </object>
  <object id="8" x="40" y="10">
   <properties><property name="spawnIndex" type="int" value="1"/></properties>
   <point/>
  </object>
 </objectgroup>`

func TestLoadTilesAndObjects(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/mixed.tmx": {Data: []byte(tilesAndObjects)},
	}

	data, err := Load(fsys, "levels/mixed.tmx")
	require.NoError(t, err)

	assert.Equal(t, "mixed", data.Name)
	assert.Equal(t, 64, data.MapWidth)
	assert.Equal(t, 48, data.MapHeight)

	require.Len(t, data.SolidRects, 6)
	assert.Equal(t, SolidRect{X: 48, Y: 16, W: 16, H: 16, SlopeType: SlopeUpLeft, Jumpable: true, Anchorable: false}, data.SolidRects[0])
	for i, x := range []float64{0, 16, 32, 48} {
		assert.Equal(t, SolidRect{X: x, Y: 32, W: 16, H: 16, Jumpable: true, Anchorable: true}, data.SolidRects[1+i])
	}
	assert.Equal(t, SolidRect{X: 8, Y: 4, W: 20, H: 6, Jumpable: false, Anchorable: true}, data.SolidRects[5])

	require.Len(t, data.SpawnPoints, 2)
	assert.Equal(t, SpawnPoint{X: 20, Y: 10, Index: 0}, data.SpawnPoints[0])
	assert.Equal(t, SpawnPoint{X: 40, Y: 10, Index: 1}, data.SpawnPoints[1])
}

func TestRampGroupDefaultsToUpRight(t *testing.T) {
	fsys := fstest.MapFS{
		"ramp.tmx": {Data: []byte(level(` <objectgroup id="1" name="Ramp">
  <object id="1" x="32" y="32" width="32" height="32"/>
 </objectgroup>
` + spawns))},
	}

	data, err := Load(fsys, "ramp.tmx")
	require.NoError(t, err)
	require.Len(t, data.SolidRects, 1)
	assert.True(t, data.SolidRects[0].IsRamp())
	assert.Equal(t, SlopeUpRight, data.SolidRects[0].SlopeType)
}

func TestLoadRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name    string
		objects string
	}{
		{
			name:    "missing spawns",
			objects: ` <objectgroup id="1" name="Solid"><object id="1" x="0" y="100" width="160" height="16"/></objectgroup>`,
		},
		{
			name: "non-square ramp",
			objects: ` <objectgroup id="1" name="Ramp"><object id="1" x="0" y="0" width="32" height="16"/></objectgroup>
` + spawns,
		},
		{
			name: "unknown slope",
			objects: ` <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="0" width="32" height="32">
   <properties><property name="slope" value="30_up_right"/></properties>
  </object>
 </objectgroup>
` + spawns,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.tmx": {Data: []byte(level(tt.objects))}}
			_, err := Load(fsys, "bad.tmx")
			assert.ErrorIs(t, err, ErrInvalidLevel)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidLevel)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":    {Data: []byte(level(spawns))},
		"levels/a.tmx":    {Data: []byte(level(spawns))},
		"levels/notes.md": {Data: []byte("not a level")},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
