package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newAccessCmd() *cobra.Command {
	var (
		limit  int64
		format string
	)

	cmd := &cobra.Command{
		Use:   "access",
		Short: "Show access log statistics",
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
			stats, err := svc.Access(ctx, limit)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			case "table":
				outputAccessTables(cmd, stats)
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

func outputAccessTables(cmd *cobra.Command, stats services.AccessStats) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Total requests: %d\n", stats.TotalRequests)

	renderValueCounts(cmd, "Top paths", stats.TopPaths)
	renderValueCounts(cmd, "Top countries", stats.TopCountries)
	renderValueCounts(cmd, "Top cities", stats.TopCities)
	renderValueCounts(cmd, "Top user agents", stats.TopUserAgents)

	if len(stats.Recent) > 0 {
		fmt.Fprintln(out, "\nRecent requests")
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Path", "Method", "IP", "Country", "City", "When"})
		for _, r := range stats.Recent {
			t.AppendRow(table.Row{
				runewidth.Truncate(r.Path, 40, "..."),
				r.Method,
				r.IP,
				r.Country,
				r.City,
				r.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		t.Render()
	}
}
