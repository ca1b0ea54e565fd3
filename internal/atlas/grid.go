package atlas

import "image"

// Atlas dimensions. The sheet is a fixed 4×3 grid of 32×32 cells; the engine's
// loader addresses frames by these offsets, so none of this is configurable.
const (
	CellSize  = 32
	Columns   = 4
	Rows      = 3
	CellCount = Columns * Rows

	Width  = Columns * CellSize // 128
	Height = Rows * CellSize    // 96
)

// DefaultPath is where the engine's tests expect the fixture.
const DefaultPath = "assets/test_data/simple_atlas.png"

// labelInset is the offset from a cell's origin to its index label anchor.
const labelInset = 12

// CellOrigin returns the top-left pixel of cell i, assigned in row-major order.
func CellOrigin(i int) (x, y int) {
	return (i % Columns) * CellSize, (i / Columns) * CellSize
}

// CellRect returns the full 32×32 bounds of cell i, outline included.
func CellRect(i int) image.Rectangle {
	x, y := CellOrigin(i)
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// LabelAnchor returns the top-left anchor point for cell i's index label.
func LabelAnchor(i int) image.Point {
	x, y := CellOrigin(i)
	return image.Pt(x+labelInset, y+labelInset)
}
