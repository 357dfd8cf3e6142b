package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreprocessShapeAndRange(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := Preprocess(src)

	require.Len(t, out, 1*256*256*3)
	for _, v := range out {
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
	}
}

func TestPreprocessSolidColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	out := Preprocess(src)
	// Center pixel of a solid red image stays solid red after scaling.
	base := (128*256 + 128) * 3
	require.InDelta(t, 1.0, out[base+0], 0.01)
	require.InDelta(t, 0.0, out[base+1], 0.01)
	require.InDelta(t, 0.0, out[base+2], 0.01)
}

func TestArgMax(t *testing.T) {
	require.Equal(t, -1, ArgMax(nil))
	require.Equal(t, 0, ArgMax([]float32{0.5}))
	require.Equal(t, 2, ArgMax([]float32{0.1, 0.3, 0.6}))
	// Ties resolve to the first occurrence, matching argmax semantics.
	require.Equal(t, 0, ArgMax([]float32{0.5, 0.5}))
	require.Equal(t, 1, ArgMax([]float32{-3, -1, -2}))
}
