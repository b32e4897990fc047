package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"daybook/core/config"
	"daybook/journal/editable"
	"daybook/journal/reconcile"
	"daybook/journal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileFile   string
	reconcileDryRun bool
	yesConfirm      bool
)

// reconcileCmd applies an edited journal document from a file.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile an edited journal document back into the store",
	Long: `Parse an edited journal document and merge it into the store:
entries are matched by identity, changed entries are rewritten, entries
missing from the document are deleted.

Examples:
  # Report what would change
  daybook reconcile --file edited.txt --dry-run

  # Apply, confirming deletions interactively
  daybook reconcile --file edited.txt

  # Apply non-interactively
  daybook reconcile --file edited.txt --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "Edited journal document to apply (required)")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Report changes without saving")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm deletions (non-interactive)")
	_ = reconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	st, _, err := openJournal(cfg, l)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(reconcileFile)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	return applyEdited(cfg, l, st, string(data), reconcileDryRun)
}

// editableCodec builds the text codec from the journal configuration.
func editableCodec(cfg *config.Config) *editable.Codec {
	return &editable.Codec{
		TimeLayout: cfg.Journal.TimeFormat,
		TagSymbols: cfg.Journal.TagSymbols,
	}
}

// applyEdited parses an edited document, merges it against the loaded
// store, and saves the result. Deletions require confirmation unless
// --yes was given.
func applyEdited(cfg *config.Config, l *zap.Logger, st *store.Store, edited string, dryRun bool) error {
	candidates := editableCodec(cfg).Parse(edited)
	result := reconcile.Merge(st.Entries(), candidates)

	l.Info("Reconciliation report",
		zap.Int("total", result.Summary.Total),
		zap.Int("unchanged", result.Summary.Unchanged),
		zap.Int("modified", result.Summary.Modified),
		zap.Int("new", result.Summary.New),
		zap.Int("deleted", result.Summary.Deleted),
	)

	if dryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if result.Summary.Deleted > 0 && !confirmDeletions(result.Summary.Deleted) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	st.Apply(result.Entries, result.Deleted)
	if err := st.Save(); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}

	l.Info("Journal saved",
		zap.Int("written", result.Summary.Modified+result.Summary.New),
		zap.Int("removed", result.Summary.Deleted),
	)
	return nil
}

// confirmDeletions prompts the user before entries are physically removed,
// or uses the --yes flag.
func confirmDeletions(count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %d entries will be deleted. Type 'yes' to confirm: ", count)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
