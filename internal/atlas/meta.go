package atlas

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// templateFS embeds the default animation set shipped with the fixture.
// The animations must only name frames that BuildMetadata generates; the
// engine's loader drops any animation with an unknown frame reference.
//
//go:embed templates/animations.json
var templateFS embed.FS

// Frame describes one sprite within the sheet, in the JSON layout the
// engine's atlas loader parses. Origin defaults follow the loader: horizontal
// center, bottom edge.
type Frame struct {
	Name    string  `json:"name"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	W       int     `json:"w"`
	H       int     `json:"h"`
	OriginX float64 `json:"originX"`
	OriginY float64 `json:"originY"`
}

// Animation is a named frame sequence.
type Animation struct {
	Name          string   `json:"name"`
	Frames        []string `json:"frames"`
	FrameDuration float64  `json:"frameDuration"`
	Loop          bool     `json:"loop"`
}

// Metadata is the sidecar document written next to the PNG.
type Metadata struct {
	Frames     []Frame     `json:"frames"`
	Animations []Animation `json:"animations"`
}

// BuildMetadata assembles the sidecar: one frame per grid cell, named by its
// decimal index, plus the embedded default animations.
func BuildMetadata() (*Metadata, error) {
	md := &Metadata{Frames: make([]Frame, 0, CellCount)}
	for i := 0; i < CellCount; i++ {
		x, y := CellOrigin(i)
		md.Frames = append(md.Frames, Frame{
			Name:    strconv.Itoa(i),
			X:       x,
			Y:       y,
			W:       CellSize,
			H:       CellSize,
			OriginX: CellSize / 2,
			OriginY: CellSize,
		})
	}

	data, err := templateFS.ReadFile("templates/animations.json")
	if err != nil {
		return nil, fmt.Errorf("read animation template: %w", err)
	}
	var tmpl struct {
		Animations []Animation `json:"animations"`
	}
	if err := json.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parse animation template: %w", err)
	}
	md.Animations = tmpl.Animations
	return md, nil
}

// MetadataPath maps a PNG path to its sidecar path (simple_atlas.png →
// simple_atlas.json).
func MetadataPath(pngPath string) string {
	return strings.TrimSuffix(pngPath, filepath.Ext(pngPath)) + ".json"
}

// WriteMetadata writes the sidecar as indented JSON. Field and slice order
// is fixed, so the output is as deterministic as the PNG.
func WriteMetadata(path string, md *Metadata) error {
	b, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
