package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

func newSearchCmd() *cobra.Command {
	var (
		group         string
		model         string
		catalogType   string
		country       string
		favoritesOnly bool
		format        string
	)

	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Search the catalog directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			filters := catalog.Filters{
				Group:         group,
				Model:         model,
				Type:          catalogType,
				Country:       country,
				Query:         strings.Join(args, " "),
				FavoritesOnly: favoritesOnly,
			}

			ctx := context.Background()
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

	cmd.Flags().StringVar(&group, "group", "", "Equipment group (exact match)")
	cmd.Flags().StringVar(&model, "model", "", "Model fragment (case-insensitive substring)")
	cmd.Flags().StringVar(&catalogType, "type", "", "Catalog type (exact match)")
	cmd.Flags().StringVar(&country, "country", "", "Country code derived from the catalog domain")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Only show favorite entries")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type searchOutputEntry struct {
	ID          int64  `json:"id"`
	Group       string `json:"group,omitempty"`
	Models      string `json:"models,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Country     string `json:"country,omitempty"`
	PartNumbers string `json:"part_numbers,omitempty"`
	Favorite    *bool  `json:"favorite,omitempty"`
	Note        string `json:"note,omitempty"`
}

func outputSearchJSON(cmd *cobra.Command, results []database.CatalogRecord) error {
	var output []searchOutputEntry

	for _, r := range results {
		item := searchOutputEntry{
			ID:          r.ID,
			Group:       r.GroupName,
			Models:      r.Models,
			Type:        r.CatalogType,
			Description: r.Description,
			URL:         r.URL,
			Country:     r.Country,
			PartNumbers: r.PartNumbers,
			Note:        r.EngineerNote,
		}
		if r.IsFavorite {
			favorite := true
			item.Favorite = &favorite
		}
		output = append(output, item)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func getTerminalWidth() int {
	// Try to get terminal width from stdout
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// wrapString wraps a string to fit within maxWidth, accounting for multi-byte characters
func wrapString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	s = strings.TrimSpace(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range s {
		charWidth := runewidth.RuneWidth(r)

		if currentWidth+charWidth > maxWidth {
			if currentWidth > 0 {
				result.WriteString(currentLine.String())
				result.WriteString("\n")
				currentLine.Reset()
				currentWidth = 0
			}
		}

		currentLine.WriteRune(r)
		currentWidth += charWidth
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

// searchColumnWidths holds the calculated widths for the variable columns
type searchColumnWidths struct {
	group       int
	models      int
	description int
	url         int
}

// calculateSearchWidths splits the terminal width between the text columns.
// Group and models take what their data needs (capped), description and URL
// share the rest.
func calculateSearchWidths(termWidth int, results []database.CatalogRecord) searchColumnWidths {
	// ID, type, country, and favorite marker are narrow and predictable.
	const fixedWidth = 6 + 10 + 7 + 3
	// Reserve space for table borders and padding (roughly 3 chars per column)
	borderPadding := 8 * 3
	availableWidth := termWidth - fixedWidth - borderPadding

	maxGroupWidth := 0
	maxModelsWidth := 0
	for _, r := range results {
		if w := runewidth.StringWidth(r.GroupName); w > maxGroupWidth {
			maxGroupWidth = w
		}
		if w := runewidth.StringWidth(r.Models); w > maxModelsWidth {
			maxModelsWidth = w
		}
	}

	groupWidth := maxGroupWidth
	if groupWidth < 8 {
		groupWidth = 8
	}
	if groupWidth > 20 {
		groupWidth = 20
	}

	modelsWidth := maxModelsWidth
	if modelsWidth < 8 {
		modelsWidth = 8
	}
	if modelsWidth > 24 {
		modelsWidth = 24
	}

	remaining := availableWidth - groupWidth - modelsWidth
	descWidth := remaining / 2
	urlWidth := remaining - descWidth
	if descWidth < 15 {
		descWidth = 15
	}
	if urlWidth < 15 {
		urlWidth = 15
	}

	return searchColumnWidths{
		group:       groupWidth,
		models:      modelsWidth,
		description: descWidth,
		url:         urlWidth,
	}
}

func outputSearchTable(cmd *cobra.Command, results []database.CatalogRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	termWidth := getTerminalWidth()
	widths := calculateSearchWidths(termWidth, results)

	t.AppendHeader(table.Row{"ID", "Fav", "Group", "Models", "Type", "Description", "URL", "Country"})

	for _, r := range results {
		favorite := ""
		if r.IsFavorite {
			favorite = "*"
		}

		t.AppendRow(table.Row{
			r.ID,
			favorite,
			wrapString(r.GroupName, widths.group),
			wrapString(r.Models, widths.models),
			r.CatalogType,
			runewidth.Truncate(r.Description, widths.description, "..."),
			runewidth.Truncate(r.URL, widths.url, "..."),
			r.Country,
		})
	}

	t.Render()
}
