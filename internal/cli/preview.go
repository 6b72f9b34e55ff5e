package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/farbraum/deltae/pkg/deltae"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// colourSwatch returns an ANSI truecolour block previewing an sRGB colour.
func colourSwatch(c deltae.RGB) string {
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset
}

// stdoutIsTerminal reports whether stdout is attached to a terminal, which
// gates swatch previews so piped output stays clean.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
