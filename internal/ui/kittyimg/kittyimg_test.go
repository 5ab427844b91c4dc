package kittyimg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}

func TestFit(t *testing.T) {
	// A tall score page is limited by the row budget.
	b := Fit(solid(800, 1600), 40, 20).Bounds()
	assert.Equal(t, 160, b.Dx())
	assert.Equal(t, 320, b.Dy())

	small := solid(10, 10)
	assert.Equal(t, small.Bounds(), Fit(small, 40, 20).Bounds())
}

func TestCellSize(t *testing.T) {
	w, h := CellSize(solid(800, 1600), 40, 20)
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, h)
}

func TestEncode(t *testing.T) {
	out, err := Encode(solid(800, 1600), 40, 20)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x1b_Ga=T,f=100,q=2,C=1,c=20,r=20,"))
	assert.True(t, strings.HasSuffix(out, "\x1b\\"))
	assert.Contains(t, out, "m=0;")

	out, err = Encode(nil, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(4, 2)))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestPlaceholder(t *testing.T) {
	out := Placeholder("db1", 9, 3)
	assert.Equal(t, "┌───────┐\n│  db1  │\n└───────┘", out)
	assert.Equal(t, "db1", Placeholder("db1", 2, 2))
}

func TestSupported(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "TERM_PROGRAM", "GHOSTTY_RESOURCES_DIR", "KONSOLE_VERSION"} {
		t.Setenv(k, "")
	}
	t.Setenv("TERM", "xterm-256color")
	assert.False(t, Supported())

	t.Setenv("TERM", "xterm-kitty")
	assert.True(t, Supported())

	t.Setenv("TERM", "xterm")
	t.Setenv("KONSOLE_VERSION", "230801")
	assert.True(t, Supported())
}

func TestPlaceholder_WideText(t *testing.T) {
	out := Placeholder("乐谱", 10, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "│  乐谱  │", lines[1])
}
