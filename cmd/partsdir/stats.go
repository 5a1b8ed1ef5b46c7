package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newStatsCmd() *cobra.Command {
	var (
		limit  int64
		format string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog, search, and click statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			svc := services.NewAnalyticsService(dbCtx, nil, operationalLogger())
			stats, err := svc.Usage(ctx, limit)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			case "table":
				outputUsageTables(cmd, stats)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 0, "Rows per aggregation")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func outputUsageTables(cmd *cobra.Command, stats services.UsageStats) {
	out := cmd.OutOrStdout()

	totals := table.NewWriter()
	totals.SetOutputMirror(out)
	totals.SetStyle(table.StyleLight)
	totals.AppendHeader(table.Row{"Catalogs", "Favorites", "Searches", "Clicks"})
	totals.AppendRow(table.Row{stats.TotalCatalogs, stats.TotalFavorites, stats.TotalSearches, stats.TotalClicks})
	totals.Render()

	renderValueCounts(cmd, "Top search groups", stats.TopGroups)
	renderValueCounts(cmd, "Top search models", stats.TopModels)
	renderValueCounts(cmd, "Top search texts", stats.TopQueries)
	renderValueCounts(cmd, "Top clicked domains", stats.TopDomains)

	if len(stats.TopCatalogs) > 0 {
		fmt.Fprintln(out, "\nTop clicked catalogs")
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Group", "Models", "Clicks"})
		for _, c := range stats.TopCatalogs {
			t.AppendRow(table.Row{c.CatalogID, c.GroupName, c.Models, c.Count})
		}
		t.Render()
	}
}

func renderValueCounts(cmd *cobra.Command, title string, counts []database.ValueCount) {
	if len(counts) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", title)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Value", "Count"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Value, c.Count})
	}
	t.Render()
}
