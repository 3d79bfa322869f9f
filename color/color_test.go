package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBA8(t *testing.T) {
	c := RGBA8(255, 0, 51, 255)
	require.Equal(t, float32(1), c.R)
	require.Equal(t, float32(0), c.G)
	require.InDelta(t, 0.2, c.B, 1e-6)
	require.Equal(t, float32(1), c.A)

	require.True(t, RGB8(255, 255, 255).IsIdentity())
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := RGBA(1, 0.5, 0, 0.5).RGBA()
	require.Equal(t, uint32(0x7fff), r)
	require.Equal(t, uint32(0x3fff), g)
	require.Equal(t, uint32(0), b)
	require.Equal(t, uint32(0x7fff), a)
}

func TestColor_Lerp(t *testing.T) {
	c := Black.Lerp(White, 0.5)
	require.Equal(t, RGB(0.5, 0.5, 0.5), c)
	require.Equal(t, Black, Black.Lerp(White, 0))
}
