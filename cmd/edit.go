package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// editCmd opens the whole journal in an external editor and reconciles the
// result back into the store.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the journal as one text document",
	Long: `Render the journal as a single editable document, open it in an
external editor, and reconcile the edited text back into the store.

Removing an entry's header deletes the entry; adding a new header creates
one. The editor comes from the journal.editor config key, then $EDITOR.`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm deletions (non-interactive)")

	RootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	st, _, err := openJournal(cfg, l)
	if err != nil {
		return err
	}

	doc := editableCodec(cfg).Render(st.Entries())

	edited, err := runEditor(cfg.Journal.Editor, doc)
	if err != nil {
		return err
	}
	if edited == doc {
		fmt.Println("no changes")
		return nil
	}

	return applyEdited(cfg, l, st, edited, false)
}

// runEditor writes the document to a temp file, runs the editor on it, and
// returns the edited contents.
func runEditor(editor, doc string) (string, error) {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}

	tmp, err := os.CreateTemp("", "daybook-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	// The editor setting may carry arguments (e.g. "code --wait").
	parts := strings.Fields(editor)
	parts = append(parts, path)
	ed := exec.Command(parts[0], parts[1:]...)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	if err := ed.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited document: %w", err)
	}
	return string(data), nil
}
