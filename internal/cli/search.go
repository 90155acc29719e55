package cli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/config"
	"symptomcheck/internal/history"
	"symptomcheck/internal/matcher"
	"symptomcheck/internal/models"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Match a symptom query locally",
		Long:  "Match a symptom query against the catalog and print the possible conditions as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cat, _, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return runSearch(cmd, cat, strings.Join(args, " "))
		},
	}
	return cmd
}

func runSearch(cmd *cobra.Command, cat *catalog.Catalog, query string) error {
	m := matcher.New(cat, history.NewMemory())

	ailments, err := m.Search(context.Background(), "", query)
	if err != nil {
		return err
	}

	results := make([]models.AilmentResponse, len(ailments))
	for i, a := range ailments {
		results[i] = models.NewAilmentResponse(a)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(models.SearchResponse{Results: results, Disclaimer: models.Disclaimer})
}
