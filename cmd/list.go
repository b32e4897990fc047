package cmd

import (
	"fmt"

	"daybook/journal/timefmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listTag   string
	listLimit int
)

// listCmd prints a short line per journal entry.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long: `List journal entries in ascending creation order.

Examples:
  # All entries
  daybook list

  # Entries tagged #work, at most ten
  daybook list --tag work --limit 10`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only list entries carrying this tag")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of entries to print (0 = all)")

	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	st, _, err := openJournal(cfg, l)
	if err != nil {
		return err
	}
	l.Debug("journal opened", zap.Int("entries", len(st.Entries())))

	printed := 0
	for _, e := range st.Entries() {
		if listTag != "" && !e.HasTag(listTag) {
			continue
		}
		star := " "
		if e.Starred {
			star = "*"
		}
		fmt.Printf("%s %s [%s] %s\n", star, e.ID, timefmt.Format(e.Date, cfg.Journal.TimeFormat), e.Title)
		printed++
		if listLimit > 0 && printed == listLimit {
			break
		}
	}

	if printed == 0 {
		fmt.Println("no entries")
	}
	return nil
}
