package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fieldworks/cropchat/internal/config"
	"github.com/fieldworks/cropchat/knowledge"
)

var cropsDataPath string

var cropsCmd = &cobra.Command{
	Use:   "crops",
	Short: "List the crops in the knowledge base",
	RunE:  runCrops,
}

func init() {
	rootCmd.AddCommand(cropsCmd)

	cropsCmd.Flags().StringVar(&cropsDataPath, "data", config.Default().DataPath,
		"Path to the crop knowledge JSON file")
}

func runCrops(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kb, err := knowledge.Load(cropsDataPath, logger)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	if kb.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The knowledge base is empty.")
		return nil
	}

	for _, name := range kb.Crops() {
		rec, _ := kb.Record(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d topics)\n", name, len(rec))
	}

	return nil
}
