package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadRegistersEveryFace(t *testing.T) {
	require.NoError(t, Load())

	for _, name := range []FontName{Regular, Small, Bold, Title} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, face.Metrics().Height.Ceil(), name)
	}

	// Larger sizes measure wider.
	small := font.MeasureString(Small.Get(), "PAUSED")
	title := font.MeasureString(Title.Get(), "PAUSED")
	assert.Greater(t, title, small)
}

func TestLoadFontWithSizeRejectsBadData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	assert.Panics(t, func() { FontName("broken").Get() })
}

func TestLoadFontWithSizeReplacesFace(t *testing.T) {
	require.NoError(t, LoadFontWithSize("resized", goregular.TTF, 10))
	before := font.MeasureString(FontName("resized").Get(), "M")

	require.NoError(t, LoadFontWithSize("resized", goregular.TTF, 20))
	after := font.MeasureString(FontName("resized").Get(), "M")

	assert.Greater(t, after, before)
}
