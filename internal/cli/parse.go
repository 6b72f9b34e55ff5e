package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"

	"github.com/farbraum/deltae/pkg/deltae"
)

// parsedColour is a colour literal resolved to a metric input. RGB is set
// only when the literal was an sRGB value, which is what terminal previews
// need.
type parsedColour struct {
	Colour deltae.Color
	RGB    *deltae.RGB
	Raw    string
}

// parseColour parses a colour literal. Accepted forms:
//
//	#rrggbb, #rgb, rrggbb  - sRGB hex
//	lab(L,a,b)             - L*a*b* triple
//	L,a,b                  - L*a*b* triple, bare
func parseColour(s string) (parsedColour, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return parsedColour{}, fmt.Errorf("empty colour literal")
	}

	if inner, ok := labLiteral(trimmed); ok {
		lab, err := parseLabTriple(inner)
		if err != nil {
			return parsedColour{}, fmt.Errorf("invalid L*a*b* literal %q: %w", s, err)
		}
		return parsedColour{Colour: lab, Raw: trimmed}, nil
	}

	if strings.Contains(trimmed, ",") {
		lab, err := parseLabTriple(trimmed)
		if err != nil {
			return parsedColour{}, fmt.Errorf("invalid L*a*b* literal %q: %w", s, err)
		}
		return parsedColour{Colour: lab, Raw: trimmed}, nil
	}

	hex := trimmed
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return parsedColour{}, fmt.Errorf("invalid colour literal %q (expected #rrggbb or L,a,b): %w", s, err)
	}
	r, g, b := col.RGB255()
	rgb := deltae.RGB{R: r, G: g, B: b}
	return parsedColour{Colour: rgb, RGB: &rgb, Raw: trimmed}, nil
}

// labLiteral strips a lab(...) wrapper, reporting whether one was present.
func labLiteral(s string) (string, bool) {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "lab(") && strings.HasSuffix(lower, ")") {
		return s[len("lab(") : len(s)-1], true
	}
	return "", false
}

func parseLabTriple(s string) (deltae.Lab, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return deltae.Lab{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}
	var v [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return deltae.Lab{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		v[i] = f
	}
	return deltae.Lab{L: v[0], A: v[1], B: v[2]}, nil
}

// Metric names accepted by --metric.
const (
	metricCIE76     = "cie76"
	metricCIE94     = "cie94"
	metricCMC       = "cmc"
	metricCIEDE2000 = "ciede2000"
)

// metricOptions holds the per-call metric configuration shared by the diff
// and image commands.
type metricOptions struct {
	Metric      string
	Application string
	LC          string
	KL          float64
	KC          float64
	KH          float64
}

// registerMetricFlags registers the metric configuration flags on a flag set.
func registerMetricFlags(fs *pflag.FlagSet, o *metricOptions) {
	fs.StringVarP(&o.Metric, "metric", "m", metricCIEDE2000,
		"difference metric (ciede2000, cie76, cie94, cmc)")
	fs.StringVar(&o.Application, "application", "graphic-arts",
		"CIE94 application mode (graphic-arts, textiles)")
	fs.StringVar(&o.LC, "lc", "2:1", "CMC l:c ratio pair")
	fs.Float64Var(&o.KL, "kl", 1, "lightness weight override (cie94, ciede2000)")
	fs.Float64Var(&o.KC, "kc", 1, "chroma weight override (cie94, ciede2000)")
	fs.Float64Var(&o.KH, "kh", 1, "hue weight override (cie94, ciede2000)")
}

// metricFunc resolves the options into a difference function, validating all
// configuration before any metric runs. The flag set is consulted so that an
// explicit --kl 1 still counts as an override.
func (o *metricOptions) metricFunc(fs *pflag.FlagSet) (func(c1, c2 deltae.Color) float64, error) {
	switch o.Metric {
	case metricCIE76:
		return deltae.CIE76, nil

	case metricCIE94:
		params, err := deltae.ParseCIE94Application(o.Application)
		if err != nil {
			return nil, err
		}
		if fs.Changed("kl") {
			params.KL = o.KL
		}
		if fs.Changed("kc") {
			params.KC = o.KC
		}
		if fs.Changed("kh") {
			params.KH = o.KH
		}
		if err := params.Validate(); err != nil {
			return nil, err
		}
		return func(c1, c2 deltae.Color) float64 {
			return deltae.CIE94(c1, c2, params)
		}, nil

	case metricCMC:
		ratio, err := parseLCRatio(o.LC)
		if err != nil {
			return nil, err
		}
		return func(c1, c2 deltae.Color) float64 {
			return deltae.CMC(c1, c2, ratio)
		}, nil

	case metricCIEDE2000:
		k := deltae.KParams{L: o.KL, C: o.KC, H: o.KH}
		if err := k.Validate(); err != nil {
			return nil, err
		}
		return func(c1, c2 deltae.Color) float64 {
			return deltae.CIEDE2000WithParams(c1, c2, k)
		}, nil

	default:
		return nil, fmt.Errorf("unknown metric: %q (valid: %s, %s, %s, %s)",
			o.Metric, metricCIEDE2000, metricCIE76, metricCIE94, metricCMC)
	}
}

// parseLCRatio parses an "l:c" weight pair such as "2:1".
func parseLCRatio(s string) (deltae.CMCRatio, error) {
	lPart, cPart, ok := strings.Cut(s, ":")
	if !ok {
		return deltae.CMCRatio{}, fmt.Errorf("invalid l:c ratio %q (expected like 2:1)", s)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(lPart), 64)
	if err != nil {
		return deltae.CMCRatio{}, fmt.Errorf("invalid l weight in ratio %q: %w", s, err)
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(cPart), 64)
	if err != nil {
		return deltae.CMCRatio{}, fmt.Errorf("invalid c weight in ratio %q: %w", s, err)
	}
	return deltae.NewCMCRatio(l, c)
}
