package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Manage part requests",
	}

	cmd.AddCommand(newRequestSubmitCmd())
	cmd.AddCommand(newRequestListCmd())
	cmd.AddCommand(newRequestStatusCmd())

	return cmd
}

func newRequestSubmitCmd() *cobra.Command {
	var (
		partNumber string
		name       string
		model      string
		group      string
		catalogID  int64
		note       string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "File a new part request",
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
			svc := services.NewRequestService(dbCtx)
			record, err := svc.Submit(ctx, services.RequestDraft{
				PartNumber: partNumber,
				Name:       name,
				Model:      model,
				GroupName:  group,
				CatalogID:  catalogID,
				Note:       note,
			}, services.RequestMeta{ClientID: "cli"})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Filed request %d with status %s\n", record.ID, record.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&partNumber, "part", "", "Part number")
	cmd.Flags().StringVar(&name, "name", "", "Part name or description")
	cmd.Flags().StringVar(&model, "model", "", "Equipment model")
	cmd.Flags().StringVar(&group, "group", "", "Equipment group")
	cmd.Flags().Int64Var(&catalogID, "catalog", 0, "Catalog entry the request originated from")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note for the purchaser")

	return cmd
}

func newRequestListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List part requests",
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
			svc := services.NewRequestService(dbCtx)
			records, err := svc.List(ctx, status)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Part", "Name", "Model", "Group", "Status", "Created"})
			for _, r := range records {
				t.AppendRow(table.Row{
					r.ID,
					r.PartNumber,
					runewidth.Truncate(r.Name, 30, "..."),
					r.Model,
					r.GroupName,
					string(r.Status),
					r.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show requests in this status")

	return cmd
}

func newRequestStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a part request to another status",
		Long:  "Valid statuses: new, in_work, ordered, received, cancelled.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id: %s", args[0])
			}

			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			svc := services.NewRequestService(dbCtx)
			record, err := svc.ChangeStatus(ctx, id, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Request %d is now %s\n", record.ID, record.Status)
			return nil
		},
	}

	return cmd
}
