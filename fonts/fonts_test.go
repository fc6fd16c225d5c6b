package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{HUD, Title, Debug} {
		face := name.Get()
		require.NotNil(t, face, string(name))
		assert.Greater(t, face.Metrics().Height.Ceil(), 0)
	}
	assert.Greater(t, Title.Get().Metrics().Height, HUD.Get().Metrics().Height)
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontReportsParseErrors(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse font broken: ")
}
