// Deltae - a perceptual colour difference calculator
//
// Deltae computes colour-difference (ΔE) metrics between colours and
// images: CIE76, CIE94, CMC l:c and CIEDE2000.
//
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/farbraum/deltae/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
