package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/config"
	"symptomcheck/internal/models"
)

// loadCatalog builds the catalog and the seed history from configuration.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, []models.SeedRecord, error) {
	file, err := config.LoadCatalogFile(cfg.CatalogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog file: %w", err)
	}

	cat, err := catalog.Load(file)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalog: %w", err)
	}

	seed, err := file.SeedRecords()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalog seed: %w", err)
	}

	if !cfg.SeedHistory {
		return cat, nil, nil
	}
	if seed != nil {
		return cat, seed, nil
	}
	return cat, models.DefaultSeed(), nil
}

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the keyword table",
		Long:  "Print every catalog keyword with its ailments in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cat, _, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return printCatalog(cmd, cat)
		},
	}
}

func printCatalog(cmd *cobra.Command, cat *catalog.Catalog) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEYWORD\tID\tAILMENT\tSEVERITY")
	for _, e := range cat.Entries() {
		for _, a := range e.Ailments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Keyword, a.ID, a.Name, a.Severity)
		}
	}
	fmt.Fprintf(w, "\nCommon symptoms: %s\n", strings.Join(cat.CommonSymptoms(), ", "))
	return w.Flush()
}
