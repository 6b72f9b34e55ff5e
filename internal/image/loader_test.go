package image

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/farbraum/deltae/pkg/deltae"
)

// writeTestPNG writes a uniform-colour PNG and returns its path.
func writeTestPNG(t *testing.T, name string, c color.RGBA, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t, "red.png", color.RGBA{R: 234, G: 76, B: 76, A: 255}, 8, 8)

	loader := NewFileLoader()
	img, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Errorf("loaded bounds = %v, want 8x8", got)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	loader := NewFileLoader()

	if _, err := loader.Load(""); err == nil {
		t.Error("empty path accepted, want error")
	}
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file accepted, want error")
	}
	if _, err := loader.Load(t.TempDir()); err == nil {
		t.Error("directory accepted, want error")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}
	if _, err := loader.Load(garbage); err == nil {
		t.Error("undecodable file accepted, want error")
	}
	if err := ValidateImagePath(garbage); err == nil {
		t.Error("ValidateImagePath accepted an undecodable file, want error")
	}
}

// A uniform image's mean colour is the colour itself.
func TestMeanLabUniform(t *testing.T) {
	path := writeTestPNG(t, "uniform.png", color.RGBA{R: 76, G: 187, B: 234, A: 255}, 16, 16)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := MeanLab(img)
	want := deltae.RGB{R: 76, G: 187, B: 234}.Lab()
	if math.Abs(got.L-want.L) > 1e-9 ||
		math.Abs(got.A-want.A) > 1e-9 ||
		math.Abs(got.B-want.B) > 1e-9 {
		t.Errorf("MeanLab = %+v, want %+v", got, want)
	}
}

// Sampling must hold the pixel budget on large images without moving the
// mean for a uniform colour.
func TestMeanLabLargeImageSampled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	fill := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	got := MeanLab(img)
	want := deltae.Grey(128).Lab()
	if math.Abs(got.L-want.L) > 1e-5 {
		t.Errorf("MeanLab.L = %f, want %f", got.L, want.L)
	}
	if math.Abs(got.A) > 1e-9 || math.Abs(got.B) > 1e-9 {
		t.Errorf("MeanLab chromatic components = (%g, %g), want 0", got.A, got.B)
	}
}
