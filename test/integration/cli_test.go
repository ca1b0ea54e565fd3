package integration

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// atlasgenBin is the path to the compiled binary, set by TestMain.
var atlasgenBin string

func TestMain(m *testing.M) {
	// Build binary once for all tests.
	tmp, err := os.MkdirTemp("", "atlasgen-integration-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmp)

	atlasgenBin = filepath.Join(tmp, "atlasgen")
	cmd := exec.Command("go", "build", "-o", atlasgenBin, "./cmd/atlasgen/")
	cmd.Dir = findModuleRoot()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// findModuleRoot walks up from cwd to find go.mod.
func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("go.mod not found")
		}
		dir = parent
	}
}

// runAtlasgen executes the binary in dir with args, returns stdout, stderr, exit code.
func runAtlasgen(t *testing.T, dir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	cmd := exec.Command(atlasgenBin, args...)
	cmd.Dir = dir

	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("exec error (not ExitError): %v", err)
		}
	}
	return
}

func TestGenDefaultPath(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, exit := runAtlasgen(t, dir, "gen")
	if exit != 0 {
		t.Fatalf("gen failed: exit %d, stderr: %s", exit, stderr)
	}
	if !strings.Contains(stdout, "assets/test_data/simple_atlas.png") {
		t.Errorf("confirmation message missing path, got: %q", stdout)
	}

	path := filepath.Join(dir, "assets", "test_data", "simple_atlas.png")
	img := decodePNG(t, path)
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 96 {
		t.Errorf("wrong dimensions: %v", img.Bounds())
	}

	// Cell 0 center is red, its top-left corner is black outline.
	assertPixel(t, img, 16, 16, color.RGBA{255, 0, 0, 255})
	assertPixel(t, img, 0, 0, color.RGBA{0, 0, 0, 255})
}

func TestGenDeterministic(t *testing.T) {
	dir := t.TempDir()

	if _, stderr, exit := runAtlasgen(t, dir, "gen", "-o", "first.png"); exit != 0 {
		t.Fatalf("gen failed: %s", stderr)
	}
	if _, stderr, exit := runAtlasgen(t, dir, "gen", "-o", "second.png"); exit != 0 {
		t.Fatalf("gen failed: %s", stderr)
	}

	a := readFile(t, filepath.Join(dir, "first.png"))
	b := readFile(t, filepath.Join(dir, "second.png"))
	if !bytes.Equal(a, b) {
		t.Error("two runs produced different bytes")
	}
}

func TestGenWithMetadata(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, exit := runAtlasgen(t, dir, "gen", "-o", "atlas.png", "--meta")
	if exit != 0 {
		t.Fatalf("gen --meta failed: %s", stderr)
	}
	if !strings.Contains(stdout, "atlas.json") {
		t.Errorf("no metadata confirmation, got: %q", stdout)
	}

	meta := readFile(t, filepath.Join(dir, "atlas.json"))
	for _, want := range []string{`"frames"`, `"animations"`, `"name": "11"`, `"frameDuration"`} {
		if !strings.Contains(string(meta), want) {
			t.Errorf("metadata missing %s", want)
		}
	}
}

func TestVerifyAcceptsOwnOutput(t *testing.T) {
	dir := t.TempDir()

	if _, stderr, exit := runAtlasgen(t, dir, "gen"); exit != 0 {
		t.Fatalf("gen failed: %s", stderr)
	}
	stdout, stderr, exit := runAtlasgen(t, dir, "verify")
	if exit != 0 {
		t.Fatalf("verify failed: exit %d, stderr: %s", exit, stderr)
	}
	if !strings.Contains(stdout, "ok") {
		t.Errorf("expected ok, got: %q", stdout)
	}
}

func TestVerifyRejectsForeignImage(t *testing.T) {
	dir := t.TempDir()

	// A solid 128×96 image has the right size but no grid.
	img := image.NewRGBA(image.Rect(0, 0, 128, 96))
	for y := 0; y < 96; y++ {
		for x := 0; x < 128; x++ {
			img.SetRGBA(x, y, color.RGBA{200, 200, 200, 255})
		}
	}
	path := filepath.Join(dir, "bad.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, stderr, exit := runAtlasgen(t, dir, "verify", "bad.png")
	if exit == 0 {
		t.Fatal("verify accepted a non-atlas image")
	}
	if !strings.Contains(stderr, "border") && !strings.Contains(stderr, "center") {
		t.Errorf("unexpected verify output: %q", stderr)
	}
}

func TestVerifyMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, _, exit := runAtlasgen(t, dir, "verify", "nope.png")
	if exit == 0 {
		t.Fatal("verify of missing file should fail")
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func assertPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	if got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
