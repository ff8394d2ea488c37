// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/citeref/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render <manuscript|->",
	Short: "Append a References section for the citations used in a manuscript",
	Long: `Render validates the citation markers in a manuscript, resolves every
marker against the catalog, and writes the manuscript followed by a
References section. Each cited entry is listed once, sorted by id.

Use "-" to read the manuscript from stdin. Without --output the result is
written to stdout. Nothing is written if any step fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	addCatalogFlag(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	text, err := readManuscript(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := pipeline.Run(text, cat)
	if err != nil {
		return err
	}
	logger.Debug("rendered references",
		zap.Int("markers", len(res.Markers)),
		zap.Int("references", len(res.Order)),
	)

	output, _ := cmd.Flags().GetString("output")
	return writeOutput(output, cmd.OutOrStdout(), []byte(res.Output))
}
