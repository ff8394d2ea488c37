// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citeref/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check <manuscript|->",
	Short: "Validate citation markers without rendering",
	Long: `Check loads the catalog, validates bracket structure in the manuscript,
and resolves every marker. On success it prints the ids that would appear
in the References section, one per line, in rendering order.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	addCatalogFlag(checkCmd)

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	if len(res.Order) > 0 {
		fmt.Fprintln(out, strings.Join(res.Order, "\n"))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d marker(s), %d reference(s), %d catalog entries\n",
		len(res.Markers), len(res.Order), cat.Len())
	return nil
}
