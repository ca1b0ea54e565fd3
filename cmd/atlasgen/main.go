// atlasgen renders the placeholder sprite atlas the engine's tests load as a
// fixture. Single binary, zero config — run it from the repo root.
package main

import (
	"os"

	"github.com/corey/atlasgen/cmd/atlasgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
