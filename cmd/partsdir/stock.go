package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newStockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Look up warehouse stock",
	}

	cmd.AddCommand(newStockListCmd())
	cmd.AddCommand(newStockAddCmd())

	return cmd
}

func newStockListCmd() *cobra.Command {
	var (
		partNumber string
		name       string
		group      string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search warehouse stock",
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
			svc := services.NewStockService(dbCtx)
			records, err := svc.Search(ctx, database.StockFilters{
				PartNumber: partNumber,
				Name:       name,
				Group:      group,
				Status:     status,
			})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Part", "Name", "Group", "Qty", "Min", "Location", "Status"})
			for _, r := range records {
				t.AppendRow(table.Row{
					r.ID,
					r.PartNumber,
					runewidth.Truncate(r.Name, 30, "..."),
					r.GroupName,
					r.Quantity,
					r.MinQuantity,
					r.Location,
					r.Status,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&partNumber, "part", "", "Part number fragment")
	cmd.Flags().StringVar(&name, "name", "", "Name fragment")
	cmd.Flags().StringVar(&group, "group", "", "Equipment group (exact match)")
	cmd.Flags().StringVar(&status, "status", "", "Stock status (exact match)")

	return cmd
}

func newStockAddCmd() *cobra.Command {
	var (
		name        string
		group       string
		models      string
		quantity    float64
		minQuantity float64
		location    string
		status      string
		note        string
	)

	cmd := &cobra.Command{
		Use:   "add <part-number>",
		Short: "Add a warehouse stock row",
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
			svc := services.NewStockService(dbCtx)
			id, err := svc.Add(ctx, database.StockRecord{
				PartNumber:   args[0],
				Name:         name,
				GroupName:    group,
				Models:       models,
				Quantity:     quantity,
				MinQuantity:  minQuantity,
				Location:     location,
				Status:       status,
				EngineerNote: note,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added stock row %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Part name")
	cmd.Flags().StringVar(&group, "group", "", "Equipment group")
	cmd.Flags().StringVar(&models, "models", "", "Compatible models")
	cmd.Flags().Float64Var(&quantity, "qty", 0, "Quantity on hand")
	cmd.Flags().Float64Var(&minQuantity, "min", 0, "Minimum quantity threshold")
	cmd.Flags().StringVar(&location, "location", "", "Storage location")
	cmd.Flags().StringVar(&status, "status", "", "Stock status")
	cmd.Flags().StringVar(&note, "note", "", "Engineer note")

	return cmd
}
