package cli

import (
	"encoding/json"
	"fmt"
	stdimage "image"

	"github.com/spf13/cobra"

	"github.com/farbraum/deltae/internal/image"
	"github.com/farbraum/deltae/pkg/deltae"
)

// newImageCmd creates the image command.
func newImageCmd() *cobra.Command {
	var (
		opts     metricOptions
		format   string
		mode     string
		clusters int
	)

	cmd := &cobra.Command{
		Use:   "image <image1> <image2>",
		Short: "Compute the colour difference between two images",
		Long: `Compute a perceptual colour difference (ΔE) between two images.

Each image is reduced to a single representative colour in L*a*b* space and
the chosen metric is evaluated between the two. With --mode mean (the
default) the representative is the mean of a bounded pixel sample; with
--mode dominant it is the largest k-means cluster.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # CIEDE2000 between the average colours of two wallpapers
  deltae image day.jpg night.jpg

  # Compare dominant colours instead of means
  deltae image --mode dominant day.jpg night.jpg

  # CIE76 with JSON output
  deltae image --metric cie76 --format json a.png b.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(cmd, args, &opts, format, mode, clusters)
		},
	}

	registerMetricFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&mode, "mode", "mean", "colour reduction mode (mean, dominant)")
	cmd.Flags().IntVar(&clusters, "clusters", 5, "cluster count for --mode dominant")

	return cmd
}

// imageResult is the JSON shape of an image comparison.
type imageResult struct {
	Metric  string     `json:"metric"`
	Mode    string     `json:"mode"`
	Image1  string     `json:"image1"`
	Image2  string     `json:"image2"`
	Colour1 deltae.Lab `json:"colour1"`
	Colour2 deltae.Lab `json:"colour2"`
	DeltaE  float64    `json:"delta_e"`
}

// reduceImage collapses an image to its representative colour per the
// selected mode.
func reduceImage(img stdimage.Image, mode string, clusters int) (deltae.Lab, error) {
	switch mode {
	case "mean":
		return image.MeanLab(img), nil
	case "dominant":
		extractor, err := image.NewDominantExtractor(clusters)
		if err != nil {
			return deltae.Lab{}, err
		}
		return extractor.Extract(img)
	default:
		return deltae.Lab{}, fmt.Errorf("unsupported mode: %s (supported: mean, dominant)", mode)
	}
}

// runImage executes the image command.
func runImage(cmd *cobra.Command, args []string, opts *metricOptions, format, mode string, clusters int) error {
	logger := newLogger(cmd)

	diff, err := opts.metricFunc(cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loader := image.NewFileLoader()
	colours := make([]deltae.Lab, 2)
	for i, path := range args {
		if err := image.ValidateImagePath(path); err != nil {
			return fmt.Errorf("invalid image path: %w", err)
		}
		img, err := loader.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load image: %w", err)
		}
		colours[i], err = reduceImage(img, mode, clusters)
		if err != nil {
			return fmt.Errorf("failed to reduce image: %w", err)
		}
		bounds := img.Bounds()
		logger.Debug("image loaded", "path", path, "mode", mode,
			"size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
			"colour", fmt.Sprintf("L=%.4f a=%.4f b=%.4f", colours[i].L, colours[i].A, colours[i].B))
	}

	result := imageResult{
		Metric:  opts.Metric,
		Mode:    mode,
		Image1:  args[0],
		Image2:  args[1],
		Colour1: colours[0],
		Colour2: colours[1],
		DeltaE:  diff(colours[0], colours[1]),
	}

	switch format {
	case "text":
		cmd.Printf("%s: %s L=%.4f a=%.4f b=%.4f\n", result.Image1, mode, result.Colour1.L, result.Colour1.A, result.Colour1.B)
		cmd.Printf("%s: %s L=%.4f a=%.4f b=%.4f\n", result.Image2, mode, result.Colour2.L, result.Colour2.A, result.Colour2.B)
		cmd.Printf("ΔE (%s) = %.6f\n", result.Metric, result.DeltaE)
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		cmd.Println(string(out))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}

	return nil
}
