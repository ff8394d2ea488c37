// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citeref/internal/citation"
	"github.com/pdiddy/citeref/internal/pipeline"
	"github.com/pdiddy/citeref/internal/references"
)

var cslCmd = &cobra.Command{
	Use:   "csl <manuscript|->",
	Short: "Export the citations used in a manuscript as CSL-YAML",
	Long: `CSL resolves the manuscript's citation markers like render does, then
writes the cited catalog entries as a CSL-YAML list for Pandoc and
reference managers. Entries are listed in the same order as the
References section.`,
	Args: cobra.ExactArgs(1),
	RunE: runCSL,
}

func init() {
	addCatalogFlag(cslCmd)
	cslCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(cslCmd)
}

func runCSL(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	text, err := readManuscript(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := pipeline.Resolve(text, cat)
	if err != nil {
		return err
	}
	cited, err := references.Collect(cat, res.Order)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := citation.WriteCSL(cited, &buf); err != nil {
		return fmt.Errorf("encoding CSL: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	return writeOutput(output, cmd.OutOrStdout(), buf.Bytes())
}
