package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/ingest"
	"github.com/partsdir/partsdir/internal/services"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Refresh the catalog directory from a CSV export",
		Long:  "Replaces the full catalog set from a CSV file. Favorites and notes are carried over by URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ingest.LoadFile(args[0])
			if err != nil {
				return err
			}

			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			svc := services.NewCatalogService(dbCtx, operationalLogger())
			count, err := svc.Replace(ctx, result.Records)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d catalogs (%d rows skipped)\n", count, result.Skipped)
			return nil
		},
	}

	return cmd
}
