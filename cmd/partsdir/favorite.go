package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle the favorite flag on a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid catalog id: %s", args[0])
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
			favorite, err := svc.ToggleFavorite(ctx, id)
			if err != nil {
				return err
			}

			if favorite {
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog %d marked as favorite\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog %d removed from favorites\n", id)
			}
			return nil
		},
	}

	return cmd
}
