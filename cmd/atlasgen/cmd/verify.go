package cmd

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/corey/atlasgen/internal/atlas"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check a fixture against the expected atlas layout",
	Long:  "Decodes a PNG and checks dimensions, cell fill colors, outlines, and index labels. Exits non-zero if the fixture does not match.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := atlas.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	problems := atlas.Verify(img)
	if len(problems) == 0 {
		fmt.Printf("⚡ %s ok (%dx%d, %d cells)\n", path, atlas.Width, atlas.Height, atlas.CellCount)
		return nil
	}

	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "✗ %s\n", p)
	}
	return fmt.Errorf("%s: %d problems", path, len(problems))
}
