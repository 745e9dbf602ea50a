package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	logger  hclog.Logger = hclog.NewNullLogger()
)

var rootCmd = &cobra.Command{
	Use:   "pixelcraft",
	Short: "Turn images into fuse-bead patterns",
	Long: `pixelcraft — shrinks any image to a bead grid and picks the closest
bead colour for every cell using CIE Lab distance.

Restrict the palette to the colours you own, then get a per-colour
shopping list of how many beads the pattern needs.`,
	Version: version,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = newLogger(verbose)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pixelcraft %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// newLogger logs to stderr: debug and up with --verbose, info otherwise.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pixelcraft",
		Output: os.Stderr,
		Level:  level,
	})
}
