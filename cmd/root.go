package cmd

import (
	"fmt"
	"os"

	"github.com/pbsdocs/scanrefs/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scanrefs",
	Short: "Online-help anchor indexer for the documentation build",
	Long: `scanrefs is a build step of the documentation pipeline. It walks the parsed
document trees emitted by the renderer, collects the cross-reference anchors
attached to section nodes, and writes OnlineHelpInfo.js: a lookup table mapping
each anchor to its page location and display title, consumed by the online-help
viewer embedded in the web UI.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("scanrefs %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
