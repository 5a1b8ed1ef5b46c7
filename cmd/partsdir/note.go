package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <id> [text...]",
		Short: "Set or clear the engineer note on a catalog entry",
		Long:  "Attaches a note to a catalog entry. Without text the existing note is cleared.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid catalog id: %s", args[0])
			}
			note := strings.Join(args[1:], " ")

			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			svc := services.NewCatalogService(dbCtx, operationalLogger())
			if err := svc.SetNote(ctx, id, note); err != nil {
				return err
			}

			if strings.TrimSpace(note) == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared note on catalog %d\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated note on catalog %d\n", id)
			}
			return nil
		},
	}

	return cmd
}
