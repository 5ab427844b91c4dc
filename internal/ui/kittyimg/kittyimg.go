// Package kittyimg draws images with the Kitty terminal graphics protocol.
package kittyimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nfnt/resize"
)

const (
	chunkSize = 4096 // max base64 bytes per escape sequence

	// Typical cell size in pixels, used to size the thumbnail.
	cellWidth  = 8
	cellHeight = 16
)

// DeleteAll removes every image placed by this program.
const DeleteAll = "\x1b_Ga=d,d=A\x1b\\"

// Supported reports whether the terminal advertises Kitty graphics.
func Supported() bool {
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return true
	case os.Getenv("TERM_PROGRAM") == "WezTerm":
		return true
	case os.Getenv("GHOSTTY_RESOURCES_DIR") != "":
		return true
	}
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// Fit scales img down to fit cols x rows cells, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func Fit(img image.Image, cols, rows int) image.Image {
	maxW := uint(max(cols, 1) * cellWidth)  //nolint:gosec // terminal sizes are small
	maxH := uint(max(rows, 1) * cellHeight) //nolint:gosec // terminal sizes are small
	return resize.Thumbnail(maxW, maxH, img, resize.Lanczos3)
}

// CellSize returns how many cells img occupies once fitted into cols x rows.
func CellSize(img image.Image, cols, rows int) (int, int) {
	b := Fit(img, cols, rows).Bounds()
	w := (b.Dx() + cellWidth - 1) / cellWidth
	h := (b.Dy() + cellHeight - 1) / cellHeight
	return max(min(w, cols), 1), max(min(h, rows), 1)
}

// Encode fits img into cols x rows cells and returns the escape sequence
// that transmits and displays it at the cursor. The cursor does not move.
func Encode(img image.Image, cols, rows int) (string, error) {
	if img == nil || cols <= 0 || rows <= 0 {
		return "", nil
	}

	fitted := Fit(img, cols, rows)
	w, h := CellSize(img, cols, rows)

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	b64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	// ESC _ G <params> ; <payload> ESC \   with m=1 while chunks follow
	var sb strings.Builder
	for i := 0; i < len(b64); i += chunkSize {
		end := min(i+chunkSize, len(b64))
		more := 0
		if end < len(b64) {
			more = 1
		}
		if i == 0 {
			fmt.Fprintf(&sb, "\x1b_Ga=T,f=100,q=2,C=1,c=%d,r=%d,m=%d;%s\x1b\\", w, h, more, b64[i:end])
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;%s\x1b\\", more, b64[i:end])
		}
	}
	return sb.String(), nil
}

// Decode reads PNG or JPEG data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Placeholder draws a framed box labelled with text, used when a score
// page cannot be displayed.
func Placeholder(text string, cols, rows int) string {
	if cols < 4 || rows < 3 {
		return text
	}

	inner := cols - 2
	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	for i := 1; i < rows-1; i++ {
		content := strings.Repeat(" ", inner)
		if i == rows/2 {
			content = centerIn(text, inner)
		}
		lines = append(lines, "│"+content+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return strings.Join(lines, "\n")
}

func centerIn(text string, width int) string {
	text = runewidth.Truncate(text, width, "")
	pad := width - runewidth.StringWidth(text)
	return strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
}
