package cmd

import (
	"fmt"

	"daybook/feature/integrity"

	"github.com/spf13/cobra"
)

// integrityCmd checks the journal directory for problems the forgiving
// load path hides.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the journal for duplicate identities and bad records",
	Long: `Check the journal directory for problems that loading silently
tolerates: duplicate identities, record files that fail to decode, files
whose name does not match the identity they contain, and entries without
a creation instant.`,
	RunE: runIntegrity,
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	st, codec, err := openJournal(cfg, l)
	if err != nil {
		return err
	}

	report, err := integrity.NewService(st, codec, l).Check()
	if err != nil {
		return fmt.Errorf("integrity check failed: %w", err)
	}

	fmt.Printf("entries: %d\n", report.Entries)
	if report.Clean() {
		fmt.Println("journal is clean")
		return nil
	}

	printFindings("duplicate identities", report.DuplicateIdentities)
	printFindings("malformed files", report.MalformedFiles)
	printFindings("misnamed files", report.MisnamedFiles)
	printFindings("entries without a creation instant", report.MissingInstant)
	return nil
}

func printFindings(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", label, len(items))
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
}
