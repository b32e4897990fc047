package cmd

import (
	"fmt"

	"daybook/core/database"
	"daybook/feature/index"
	"daybook/journal/timefmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indexCmd is the parent command for search index operations.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Maintain and query the journal search index",
}

// indexRebuildCmd repopulates the index from the journal directory.
var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the search index from the journal",
	RunE:  runIndexRebuild,
}

// indexSearchCmd queries the index.
var indexSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed entries by title, body, or tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexSearch,
}

func init() {
	indexCmd.AddCommand(indexRebuildCmd)
	indexCmd.AddCommand(indexSearchCmd)

	RootCmd.AddCommand(indexCmd)
}

func runIndexRebuild(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	st, _, err := openJournal(cfg, l)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}

	svc := index.NewService(db, l)
	if err := svc.Migrate(); err != nil {
		return err
	}
	if err := svc.Rebuild(st.Entries()); err != nil {
		return err
	}

	l.Info("Index rebuilt", zap.Int("entries", len(st.Entries())))
	return nil
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}

	rows, err := index.NewService(db, l).Search(args[0])
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, row := range rows {
		star := " "
		if row.Starred {
			star = "*"
		}
		fmt.Printf("%s %s [%s] %s\n", star, row.UUID, timefmt.Format(row.Date, cfg.Journal.TimeFormat), row.Title)
	}
	return nil
}
