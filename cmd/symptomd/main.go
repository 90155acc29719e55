package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"symptomcheck/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "symptomd",
		Short:        "Symptom checker service and CLI",
		Long:         "Symptom checker for matching free-text symptoms to possible conditions and tracking recurring searches",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.CatalogCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
