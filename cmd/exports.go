package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidecraft/internal/storage"
	"slidecraft/pkg/config"
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "List exported decks",
	Long:  `List exported presentation files in the output directory and, when cloud storage is configured, in the bucket.`,
	RunE:  runExports,
}

func init() {
	rootCmd.AddCommand(exportsCmd)
}

func runExports(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	local, err := storage.NewLocalStorage(cfg.Export.OutputDir).ListExports()
	if err != nil {
		return fmt.Errorf("list local exports: %w", err)
	}
	if len(local) == 0 {
		fmt.Println("No local exports")
	}
	for _, name := range local {
		fmt.Println(name)
	}

	if !cfg.GCS.Enabled || cfg.GCSBucket == "" {
		return nil
	}

	gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.ExportDir)
	if err != nil {
		return fmt.Errorf("connect to cloud storage: %w", err)
	}
	defer func() { _ = gcs.Close() }()

	remote, err := gcs.ListExports(ctx)
	if err != nil {
		return fmt.Errorf("list cloud exports: %w", err)
	}
	for _, name := range remote {
		fmt.Printf("gs://%s/%s\n", cfg.GCSBucket, name)
	}

	return nil
}
