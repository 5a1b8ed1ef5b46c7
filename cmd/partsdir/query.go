package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Manage saved query templates",
	}

	cmd.AddCommand(newQuerySaveCmd())
	cmd.AddCommand(newQueryListCmd())
	cmd.AddCommand(newQueryUseCmd())
	cmd.AddCommand(newQueryDeleteCmd())

	return cmd
}

func newQuerySaveCmd() *cobra.Command {
	var (
		group       string
		model       string
		catalogType string
		country     string
		query       string
	)

	cmd := &cobra.Command{
		Use:   "save <title>",
		Short: "Save the given filters as a named template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			svc := services.NewTemplateService(dbCtx)
			record, err := svc.Save(ctx, args[0], catalog.Filters{
				Group:   group,
				Model:   model,
				Type:    catalogType,
				Country: country,
				Query:   query,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %d: %s\n", record.ID, record.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Equipment group filter")
	cmd.Flags().StringVar(&model, "model", "", "Model fragment filter")
	cmd.Flags().StringVar(&catalogType, "type", "", "Catalog type filter")
	cmd.Flags().StringVar(&country, "country", "", "Country code filter")
	cmd.Flags().StringVar(&query, "text", "", "Free-text search terms")

	return cmd
}

func newQueryListCmd() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved query templates",
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
			svc := services.NewTemplateService(dbCtx)
			records, err := svc.List(ctx, limit)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Title", "Filters", "Created"})
			for _, r := range records {
				t.AppendRow(table.Row{
					r.ID,
					r.Title,
					formatFilters(r.Filters),
					r.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 0, "Maximum number of templates to show")

	return cmd
}

func newQueryUseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "use <id>",
		Short: "Run a saved query template as a search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %s", args[0])
			}

			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			filters, err := services.NewTemplateService(dbCtx).Load(ctx, id)
			if err != nil {
				return err
			}

			svc := services.NewCatalogService(dbCtx, operationalLogger())
			results, err := svc.Search(ctx, filters, services.RequestMeta{ClientID: "cli"})
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputSearchJSON(cmd, results)
			case "table":
				outputSearchTable(cmd, results)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newQueryDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved query template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %s", args[0])
			}

			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			if err := services.NewTemplateService(dbCtx).Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %d\n", id)
			return nil
		},
	}

	return cmd
}

func formatFilters(f catalog.Filters) string {
	var parts []string
	if f.Group != "" {
		parts = append(parts, "group="+f.Group)
	}
	if f.Model != "" {
		parts = append(parts, "model="+f.Model)
	}
	if f.Type != "" {
		parts = append(parts, "type="+f.Type)
	}
	if f.Country != "" {
		parts = append(parts, "country="+f.Country)
	}
	if f.Query != "" {
		parts = append(parts, "text="+f.Query)
	}
	return strings.Join(parts, " ")
}
