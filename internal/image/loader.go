// Package image provides utilities for loading images and reducing them to a
// single representative colour.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/farbraum/deltae/pkg/deltae"
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// ValidateImagePath checks that the given path points to a decodable image
// file in a supported format.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to access image path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("unsupported or invalid image format: %w", err)
	}

	return nil
}

// maxMeanSamples bounds how many pixels the reducers inspect, so their cost
// stays flat for large images.
const maxMeanSamples = 10000

// sampleLab samples pixels on a regular grid capped at budget, converting
// each to L*a*b*.
func sampleLab(img image.Image, budget int) []deltae.Lab {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	step := 1
	for (width/step)*(height/step) > budget {
		step++
	}

	samples := make([]deltae.Lab, 0, budget)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			samples = append(samples, deltae.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}.Lab())
		}
	}

	return samples
}

// MeanLab returns the mean colour of an image in L*a*b* space.
//
// Pixels are sampled on a regular grid capped at maxMeanSamples, each
// converted to L*a*b* and averaged per component. Averaging happens in the
// perceptually uniform space so the result feeds straight into the
// difference metrics.
func MeanLab(img image.Image) deltae.Lab {
	samples := sampleLab(img, maxMeanSamples)
	if len(samples) == 0 {
		return deltae.Lab{}
	}

	var sum deltae.Lab
	for _, lab := range samples {
		sum.L += lab.L
		sum.A += lab.A
		sum.B += lab.B
	}

	n := float64(len(samples))
	return deltae.Lab{L: sum.L / n, A: sum.A / n, B: sum.B / n}
}
