package atlas

import (
	"fmt"
	"image"
	"image/color"
)

// Verify checks an image against the fixture's contract: exact dimensions,
// the palette color at every cell center at full opacity, black 1px cell
// borders, all 12 fill colors distinct, and a visible label near each cell's
// label anchor. It returns one message per violation; an empty slice means
// the image is a valid fixture.
//
// Glyph shapes are deliberately not checked — the label test only requires
// some black pixel inside the label box, since exact font rasterization is
// not part of the contract.
func Verify(img image.Image) []string {
	var problems []string

	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		problems = append(problems, fmt.Sprintf(
			"dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height))
		return problems
	}

	seen := make(map[color.RGBA]int, CellCount)
	for i := 0; i < CellCount; i++ {
		r := CellRect(i)

		// Fill: sample the cell center.
		center := rgbaAt(img, r.Min.X+CellSize/2, r.Min.Y+CellSize/2)
		if center != Palette[i] {
			problems = append(problems, fmt.Sprintf(
				"cell %d: center color %v, want %v", i, center, Palette[i]))
		}
		if prev, dup := seen[center]; dup {
			problems = append(problems, fmt.Sprintf(
				"cell %d: fill color duplicates cell %d", i, prev))
		}
		seen[center] = i

		// Outline: every border pixel is black.
		if n := countNonBlackBorder(img, r); n > 0 {
			problems = append(problems, fmt.Sprintf(
				"cell %d: %d border pixels are not black", i, n))
		}

		// Label: at least one black pixel inside the label box, which sits
		// strictly inside the fill region and never touches the outline.
		if !hasBlackPixel(img, labelBox(i)) {
			problems = append(problems, fmt.Sprintf(
				"cell %d: no label pixels near anchor", i))
		}
	}

	return problems
}

// labelBox bounds the region where cell i's index label is drawn.
func labelBox(i int) image.Rectangle {
	a := LabelAnchor(i)
	// Face7x13 glyphs: two digits at most, 7px advance each, 13px tall.
	return image.Rect(a.X, a.Y, a.X+14, a.Y+13)
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func countNonBlackBorder(img image.Image, r image.Rectangle) int {
	n := 0
	for x := r.Min.X; x < r.Max.X; x++ {
		if rgbaAt(img, x, r.Min.Y) != outlineColor {
			n++
		}
		if rgbaAt(img, x, r.Max.Y-1) != outlineColor {
			n++
		}
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		if rgbaAt(img, r.Min.X, y) != outlineColor {
			n++
		}
		if rgbaAt(img, r.Max.X-1, y) != outlineColor {
			n++
		}
	}
	return n
}

func hasBlackPixel(img image.Image, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if rgbaAt(img, x, y) == outlineColor {
				return true
			}
		}
	}
	return false
}
