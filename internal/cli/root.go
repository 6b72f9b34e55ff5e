// Package cli provides the command-line interface for Deltae.
package cli

import (
	"fmt"
	"os"

	"github.com/farbraum/deltae/internal/version"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles a fresh root command tree. It is called by
// main.main() and by tests that drive the CLI in-process; each call returns
// an independent command with its own flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deltae",
		Short: "Perceptual colour difference calculator",
		Long: `Deltae computes perceptual colour-difference (ΔE) metrics between two
colours: CIE76, CIE94, CMC l:c and CIEDE2000.

Colours can be given as sRGB hex literals or as L*a*b* triples, or derived
from images by averaging their pixels in L*a*b* space.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newImageCmd())

	return rootCmd
}

// newLogger returns the diagnostic logger for a command invocation. With
// verbose off the logger is silent.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "deltae",
		Output: os.Stderr,
		Level:  level,
	})
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
