package atlas

import "image/color"

// Palette holds the fill color for each cell, assigned in row-major order.
// All entries are fully opaque and distinct from the black used for outlines
// and labels, so downstream pixel checks can tell the three regions apart.
var Palette = [CellCount]color.RGBA{
	{255, 0, 0, 255},     // red
	{0, 255, 0, 255},     // green
	{0, 0, 255, 255},     // blue
	{255, 255, 0, 255},   // yellow
	{255, 0, 255, 255},   // magenta
	{0, 255, 255, 255},   // cyan
	{255, 128, 0, 255},   // orange
	{128, 0, 255, 255},   // purple
	{255, 255, 255, 255}, // white
	{128, 128, 128, 255}, // gray
	{64, 64, 64, 255},    // dark gray
	{192, 192, 192, 255}, // light gray
}

// outlineColor is used for cell borders and index labels.
var outlineColor = color.RGBA{0, 0, 0, 255}
