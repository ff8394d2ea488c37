// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citeref/internal/catalog"
	"github.com/pdiddy/citeref/internal/metadata"
	"github.com/pdiddy/citeref/pkg/types"
)

// stdinPath names standard input as the manuscript source.
const stdinPath = "-"

// readManuscript returns the manuscript text from path, or from stdin when
// path is "-".
func readManuscript(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading manuscript from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading manuscript: %w", err)
	}
	return string(data), nil
}

// writeOutput writes data to path, or to stdout when path is empty. Files
// are written to a temporary sibling and renamed into place.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting output file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}
	return nil
}

// addCatalogFlag registers the required --catalog/-c flag.
func addCatalogFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("catalog", "c", "", "citation catalog (JSON)")
	_ = cmd.MarkFlagRequired("catalog")
}

// loadCatalog loads the catalog named by --catalog, enriching partial
// entries through the configured metadata service.
func loadCatalog(cmd *cobra.Command) (*types.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client := metadata.NewClientFromConfig(cfg.Metadata, logger)
	return catalog.LoadFile(cmd.Context(), path, client, catalog.WithLogger(logger))
}
