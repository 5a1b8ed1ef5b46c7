package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partsdir/partsdir/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "partsdir",
	Short: "partsdir - a searchable directory of spare parts catalogs",
	Long:  "partsdir indexes external parts catalog links with favorites, notes, saved searches, and part request tracking.",
}

func init() {
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newFavoriteCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(newRequestCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newStockCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAccessCmd())
	rootCmd.AddCommand(newMCPCmd())
}

func openDatabase() (*database.Context, error) {
	return database.CreateDatabase("")
}

// operationalLogger reports swallowed background failures (log writes and the
// like) to stderr without touching command output on stdout.
func operationalLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
