package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/farbraum/deltae/pkg/deltae"
)

// newDiffCmd creates the diff command. Flag state is local to the returned
// command so independent invocations never see one another's flags.
func newDiffCmd() *cobra.Command {
	var (
		opts    metricOptions
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "diff <colour1> <colour2>",
		Short: "Compute the colour difference between two colours",
		Long: `Compute a perceptual colour difference (ΔE) between two colours.

Colours are given as sRGB hex literals (#rrggbb, #rgb) or as L*a*b* triples
(lab(L,a,b) or a bare L,a,b). The metric defaults to CIEDE2000.

Note that CMC l:c is asymmetric: the first colour is treated as the
standard and the second as the sample.

Examples:
  # CIEDE2000 between two hex colours
  deltae diff '#ea4c4c' '#4cbbea'

  # CIE94 with textile weighting between two L*a*b* colours
  deltae diff --metric cie94 --application textiles 'lab(38.972,58.991,37.138)' 'lab(54.528,42.416,54.497)'

  # CMC 1:1 acceptability check
  deltae diff --metric cmc --lc 1:1 '#335577' '#335578'

  # JSON output for scripting
  deltae diff --format json '#000' '#fff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args, &opts, format, preview)
		},
	}

	registerMetricFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// diffResult is the JSON shape of a diff computation.
type diffResult struct {
	Metric  string     `json:"metric"`
	Colour1 deltae.Lab `json:"colour1"`
	Colour2 deltae.Lab `json:"colour2"`
	DeltaE  float64    `json:"delta_e"`
}

// runDiff executes the diff command.
func runDiff(cmd *cobra.Command, args []string, opts *metricOptions, format string, preview bool) error {
	logger := newLogger(cmd)

	c1, err := parseColour(args[0])
	if err != nil {
		return fmt.Errorf("invalid first colour: %w", err)
	}
	c2, err := parseColour(args[1])
	if err != nil {
		return fmt.Errorf("invalid second colour: %w", err)
	}

	diff, err := opts.metricFunc(cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	lab1 := c1.Colour.Lab()
	lab2 := c2.Colour.Lab()
	logger.Debug("converted colours",
		"colour1", fmt.Sprintf("L=%.4f a=%.4f b=%.4f", lab1.L, lab1.A, lab1.B),
		"colour2", fmt.Sprintf("L=%.4f a=%.4f b=%.4f", lab2.L, lab2.A, lab2.B))

	result := diffResult{
		Metric:  opts.Metric,
		Colour1: lab1,
		Colour2: lab2,
		DeltaE:  diff(c1.Colour, c2.Colour),
	}

	switch format {
	case "text":
		if preview && stdoutIsTerminal() {
			printSwatchLine(cmd, c1)
			printSwatchLine(cmd, c2)
		}
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

// printSwatchLine prints a preview block for a colour when an sRGB value is
// available for it; L*a*b* inputs have no preview.
func printSwatchLine(cmd *cobra.Command, c parsedColour) {
	if c.RGB == nil {
		return
	}
	cmd.Printf("%s  %s\n", colourSwatch(*c.RGB), c.Raw)
}
