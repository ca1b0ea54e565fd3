// Package atlas renders the placeholder sprite sheet used as a test fixture
// by the engine's rendering and animation tests.
//
// The sheet is a 128×96 RGBA image: a 4×3 grid of 32×32 squares, each filled
// with a distinct palette color, outlined in black, and labeled with its
// decimal index. Output is fully deterministic — the same bytes on every run.
package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Generate renders the sprite sheet into a fresh canvas. The background
// starts fully transparent, but the 12 cells tile the whole image, so every
// pixel ends up opaque.
func Generate() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for i := 0; i < CellCount; i++ {
		r := CellRect(i)
		fillRect(img, r, image.NewUniform(Palette[i]))
		outlineRect(img, r, image.NewUniform(outlineColor))
		drawLabel(img, strconv.Itoa(i), LabelAnchor(i))
	}
	return img
}

// fillRect paints r with src, overwriting whatever is underneath.
func fillRect(img *image.RGBA, r image.Rectangle, src image.Image) {
	draw.Draw(img, r, src, image.Point{}, draw.Src)
}

// outlineRect draws a 1px border just inside r.
func outlineRect(img *image.RGBA, r image.Rectangle, src image.Image) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), src) // top
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), src) // bottom
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), src) // left
	fillRect(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), src) // right
}

// drawLabel renders text in black with its top-left corner at anchor.
// The drawer's dot is a baseline position, so the face ascent is added.
func drawLabel(img *image.RGBA, text string, anchor image.Point) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(outlineColor),
		Face: face,
		Dot:  fixed.P(anchor.X, anchor.Y+face.Ascent),
	}
	d.DrawString(text)
}

// Encode writes img as PNG to w.
func Encode(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// WriteFile encodes img as PNG at path, creating parent directories and
// overwriting any previous fixture.
func WriteFile(path string, img *image.RGBA) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
