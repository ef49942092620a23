package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove exported decks",
	Long:  `Delete all exported presentation files from the output directory.`,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	count, err := storage.NewLocalStorage(cfg.Export.OutputDir).RemoveExports()
	if err != nil {
		return fmt.Errorf("remove exports: %w", err)
	}

	fmt.Printf("Removed %d export(s)\n", count)
	return nil
}
