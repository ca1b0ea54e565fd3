package cmd

import (
	"fmt"

	"github.com/corey/atlasgen/internal/atlas"
	"github.com/spf13/cobra"
)

var (
	genOut  string
	genMeta bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Render the placeholder sprite atlas",
	Long:  "Draws the 128×96 sheet of 12 colored, outlined, index-labeled squares and writes it as PNG. Output is byte-for-byte identical across runs.",
	RunE:  runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genOut, "out", "o", atlas.DefaultPath, "Output PNG path")
	genCmd.Flags().BoolVar(&genMeta, "meta", false, "Also write the JSON metadata sidecar next to the PNG")
}

func runGen(cmd *cobra.Command, args []string) error {
	img := atlas.Generate()
	if err := atlas.WriteFile(genOut, img); err != nil {
		return err
	}
	fmt.Printf("⚡ wrote %s (%dx%d, %d cells)\n", genOut, atlas.Width, atlas.Height, atlas.CellCount)

	if genMeta {
		md, err := atlas.BuildMetadata()
		if err != nil {
			return err
		}
		metaPath := atlas.MetadataPath(genOut)
		if err := atlas.WriteMetadata(metaPath, md); err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
		fmt.Printf("⚡ wrote %s (%d frames, %d animations)\n", metaPath, len(md.Frames), len(md.Animations))
	}
	return nil
}
