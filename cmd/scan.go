package cmd

import (
	"github.com/pbsdocs/scanrefs/internal/doctree"
	"github.com/pbsdocs/scanrefs/internal/refindex"
	"github.com/pbsdocs/scanrefs/internal/usescan"
	"github.com/spf13/cobra"
)

var scanOutDir string
var scanOutputFile string
var scanIdent string
var scanLinkPrefix string
var scanPruneUnused bool
var scanWWWDir string

var scanCmd = &cobra.Command{
	Use:   "scan <doctree-dir>",
	Short: "Index reference labels from parsed document trees",
	Long: `Scan loads the per-document tree dumps written by the renderer (one JSON file
per document, processed in lexical filename order), records every explicitly
labelled section, and writes the accumulated anchor table as a single
OnlineHelpInfo.js assignment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		docs, err := doctree.LoadDir(args[0])
		if err != nil {
			return err
		}

		cfg := refindex.Config{
			OutDir:     scanOutDir,
			OutputFile: scanOutputFile,
			Ident:      scanIdent,
			LinkPrefix: scanLinkPrefix,
			Output:     out,
		}
		if scanPruneUnused {
			used, err := usescan.ScanDir(scanWWWDir)
			if err != nil {
				return err
			}
			cfg.Validator = refindex.NewUsageValidator(used, out)
		}

		ix, err := refindex.New(cfg)
		if err != nil {
			return err
		}

		FormatScanHeader(out, args[0], scanOutDir, len(docs))
		for _, doc := range docs {
			anchors, err := ix.ProcessDocument(doc)
			if err != nil {
				return err
			}
			FormatDocLine(out, doc.Docname, anchors)
		}

		if err := ix.Finalize(); err != nil {
			return err
		}

		FormatScanSummary(out, ix.Table().Len(), ix.OutputPath())
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutDir, "out", "o", "", "Output directory for the generated file")
	scanCmd.MarkFlagRequired("out")
	scanCmd.Flags().StringVar(&scanOutputFile, "output-file", refindex.DefaultOutputFile, "Name of the generated file")
	scanCmd.Flags().StringVar(&scanIdent, "ident", refindex.DefaultIdent, "JavaScript identifier the table is assigned to")
	scanCmd.Flags().StringVar(&scanLinkPrefix, "link-prefix", refindex.DefaultLinkPrefix, "URL prefix for generated links")
	scanCmd.Flags().BoolVar(&scanPruneUnused, "prune-unused", false, "Drop anchors the front-end sources never reference")
	scanCmd.Flags().StringVar(&scanWWWDir, "www-dir", "../www", "Front-end source directory scanned with --prune-unused")

	rootCmd.AddCommand(scanCmd)
}
