package cmd

import (
	"fmt"

	"github.com/pbsdocs/scanrefs/internal/usescan"
	"github.com/spf13/cobra"
)

var usedCmd = &cobra.Command{
	Use:   "used <www-dir>",
	Short: "List anchors referenced by the front-end sources",
	Long: `Used scans the front-end JavaScript sources for onlineHelp and get_help_tool
references and prints the anchors they point at, one per line. This is the
source of truth for the optional unused-anchor pruning of the scan command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchors, err := usescan.ScanDir(args[0])
		if err != nil {
			return err
		}
		for _, anchor := range anchors {
			fmt.Fprintln(cmd.OutOrStdout(), anchor)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usedCmd)
}
